package get_blocked_dates

import (
	"context"
	"errors"
	"fmt"

	memberClient "github.com/closer-platform/availability-service/internal/integrations/memberservice"
)

// UseCase use case для получения заблокированных дат календаря бронирования
type UseCase struct {
	configProvider ConfigProvider
	memberClient   MemberServiceClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configProvider ConfigProvider,
	memberClient MemberServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		configProvider: configProvider,
		memberClient:   memberClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения заблокированных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBlockedDates: user=%d, start=%v, end=%v", req.UserID, req.Start, req.End)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBlockedDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки бронирования из конфигурации
	settings, err := uc.configProvider.BookingSettings(ctx)
	if err != nil {
		uc.logger.Error("GetBlockedDates: failed to get booking settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking settings: %v", ErrInternal, err)
	}

	// 4. Определяем статус членства с graceful degradation:
	// при недоступности MemberService применяем правила для не-участников
	isMember := false
	member, err := uc.memberClient.GetMemberWithGracefulDegradation(ctx, req.UserID)
	switch {
	case err == nil:
		isMember = member.IsMember
	case errors.Is(err, memberClient.ErrMemberNotFound):
		uc.logger.Info("GetBlockedDates: no member record for user=%d, applying non-member rules", req.UserID)
	case errors.Is(err, memberClient.ErrServiceDegraded):
		uc.logger.Warn("GetBlockedDates: member service degraded for user=%d, applying non-member rules", req.UserID)
	default:
		uc.logger.Error("GetBlockedDates: failed to get member for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}

	// 5. Вычисляем заблокированные диапазоны
	blocked := computeBlockedRanges(*settings, isMember, req.Start, req.End, now)

	uc.logger.Info("GetBlockedDates: computed %d blocked ranges for user=%d (isMember=%t)",
		len(blocked), req.UserID, isMember)

	return toResponse(blocked, isMember), nil
}
