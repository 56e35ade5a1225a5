package get_blocked_dates

import (
	"context"
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
	"github.com/closer-platform/availability-service/internal/integrations/memberservice"
)

// ConfigProvider интерфейс для получения настроек бронирования
type ConfigProvider interface {
	// BookingSettings возвращает разрешённые против схемы лимиты бронирования
	BookingSettings(ctx context.Context) (*domain.BookingSettings, error)
}

// MemberServiceClient интерфейс клиента для MemberService
type MemberServiceClient interface {
	GetMemberWithGracefulDegradation(ctx context.Context, userID int64) (*memberservice.Member, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
