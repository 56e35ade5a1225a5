package models

import (
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на сохранение значения категории
type UpdateConfigRequest struct {
	UserID int64                  `json:"userId"`
	Slug   string                 `json:"slug"`
	Value  map[string]interface{} `json:"value"`
}

// Response модели

// ConfigDocumentResponse разрешённый документ конфигурации
type ConfigDocumentResponse struct {
	Slug      string                 `json:"slug"`
	Value     map[string]interface{} `json:"value"`
	UpdatedAt *time.Time             `json:"updatedAt,omitempty"` // nil для ещё не сохранявшихся категорий
}

// ConfigListResponse список разрешённых документов
type ConfigListResponse struct {
	Configs []ConfigDocumentResponse `json:"configs"`
}

// Методы конвертации

// FromDomainDocument конвертирует domain модель в DTO
func FromDomainDocument(doc *domain.ConfigDocument) *ConfigDocumentResponse {
	if doc == nil {
		return nil
	}

	resp := &ConfigDocumentResponse{
		Slug:  doc.Slug,
		Value: doc.Value,
	}

	if !doc.UpdatedAt.IsZero() {
		updatedAt := doc.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// FromDomainDocumentList конвертирует список domain моделей в DTO
func FromDomainDocumentList(docs []*domain.ConfigDocument) *ConfigListResponse {
	resp := &ConfigListResponse{
		Configs: make([]ConfigDocumentResponse, 0, len(docs)),
	}

	for _, doc := range docs {
		if docResp := FromDomainDocument(doc); docResp != nil {
			resp.Configs = append(resp.Configs, *docResp)
		}
	}

	return resp
}
