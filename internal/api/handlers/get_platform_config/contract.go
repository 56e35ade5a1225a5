package get_platform_config

import (
	"context"

	"github.com/closer-platform/availability-service/internal/service/config/models"
)

type ConfigService interface {
	GetResolved(ctx context.Context, slug string) (*models.ConfigDocumentResponse, error)
	GetAllResolved(ctx context.Context) (*models.ConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
