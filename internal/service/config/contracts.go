package config

import (
	"context"

	"github.com/closer-platform/availability-service/internal/domain"
	"github.com/closer-platform/availability-service/internal/integrations/memberservice"
)

// ConfigRepository интерфейс репозитория документов конфигурации
type ConfigRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.ConfigDocument, error)
	GetAll(ctx context.Context) ([]*domain.ConfigDocument, error)
	Upsert(ctx context.Context, slug string, value map[string]interface{}) (*domain.ConfigDocument, error)
}

// MemberServiceClient интерфейс клиента для MemberService
type MemberServiceClient interface {
	GetMember(ctx context.Context, userID int64) (*memberservice.Member, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
