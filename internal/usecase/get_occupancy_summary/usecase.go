package get_occupancy_summary

import (
	"context"
	"fmt"

	"github.com/closer-platform/availability-service/internal/domain"
)

// UseCase use case для получения сводки занятости для дашборда
type UseCase struct {
	bookingRepo  BookingRepository
	listingRepo  ListingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	listingRepo ListingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		listingRepo:  listingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сводки занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOccupancySummary: timeFrame=%s", req.TimeFrame)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOccupancySummary: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем символьный период в конкретный диапазон дат
	frame := domain.TimeFrame(req.TimeFrame)
	if req.TimeFrame != "" && !domain.IsKnownTimeFrame(frame) {
		uc.logger.Warn("GetOccupancySummary: unknown time frame %q, falling back to today", req.TimeFrame)
	}

	now := uc.timeProvider.Now()
	dateRange := domain.ResolveTimeFrame(frame, req.FromDate, req.ToDate, now)

	// 3. Получаем листинги
	listings, err := uc.listingRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetOccupancySummary: failed to get listings: %v", err)
		return nil, fmt.Errorf("%w: failed to get listings: %v", ErrInternal, err)
	}

	// 4. Получаем активные бронирования, пересекающиеся с периодом
	filter := domain.BookingsFilter{
		StartDate:       &dateRange.Start,
		EndDate:         &dateRange.End,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetOccupancySummary: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Агрегируем занятость по категориям
	nightly, space := aggregateOccupancy(bookings, listings, dateRange.Days())

	uc.logger.Info("GetOccupancySummary: nightly %s%% (%d/%d), space %s%% (%d/%d) over %d days",
		nightly.Percentage, nightly.Booked, nightly.TotalCapacity,
		space.Percentage, space.Booked, space.TotalCapacity, dateRange.Days())

	return toResponse(dateRange, nightly, space), nil
}
