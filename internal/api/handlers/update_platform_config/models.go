package update_platform_config

import (
	"github.com/closer-platform/availability-service/internal/service/config/models"
)

// UpdateConfigRequest HTTP request model
type UpdateConfigRequest struct {
	Value map[string]interface{} `json:"value"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateConfigRequest) ToServiceRequest(userID int64, slug string) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		UserID: userID,
		Slug:   slug,
		Value:  r.Value,
	}
}
