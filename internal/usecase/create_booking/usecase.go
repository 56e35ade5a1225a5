package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/closer-platform/availability-service/internal/domain"
	listingRepo "github.com/closer-platform/availability-service/internal/infra/storage/listing"
	memberClient "github.com/closer-platform/availability-service/internal/integrations/memberservice"
	"github.com/closer-platform/availability-service/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	listingRepo    ListingRepository
	configProvider ConfigProvider
	memberClient   MemberServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	listingRepo ListingRepository,
	configProvider ConfigProvider,
	memberClient MemberServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		listingRepo:    listingRepo,
		configProvider: configProvider,
		memberClient:   memberClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
// при конкурентном бронировании одних и тех же дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, listing=%d, start=%s, end=%s, adults=%d",
		req.UserID, req.ListingID, req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat), req.Adults)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки бронирования из конфигурации
	settings, err := uc.configProvider.BookingSettings(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get booking settings: %v", err)
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
		uc.logger.Info("CreateBooking: no member record for user=%d, applying non-member rules", req.UserID)
	case errors.Is(err, memberClient.ErrServiceDegraded):
		uc.logger.Warn("CreateBooking: member service degraded for user=%d, applying non-member rules", req.UserID)
	default:
		uc.logger.Error("CreateBooking: failed to get member for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}

	// 5. Проверяем даты против лимитов бронирования
	if err := validateDates(req, *settings, isMember, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем листинг
		listing, err := uc.listingRepo.GetByID(txCtx, req.ListingID)
		if err != nil {
			if errors.Is(err, listingRepo.ErrListingNotFound) {
				uc.logger.Warn("CreateBooking: listing id=%d not found", req.ListingID)
				return ErrListingNotFound
			}
			uc.logger.Error("CreateBooking: failed to get listing id=%d: %v", req.ListingID, err)
			return fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
		}

		// 6.2. Получаем активные пересекающиеся бронирования с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			ListingID:       ptr.Ptr(req.ListingID),
			StartDate:       ptr.Ptr(req.Start),
			EndDate:         ptr.Ptr(req.End),
			IncludeInactive: false,
		}

		overlapping, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		// 6.3. Проверяем ёмкость листинга
		units := listing.NightlyUnits()
		if !listing.IsNightly() {
			units = listing.HourlyUnits()
		}

		booked := bookedUnits(listing, overlapping)
		requested := requestedUnits(listing, req.Adults)

		if booked+requested > units {
			uc.logger.Warn("CreateBooking: no capacity for listing id=%d, %d/%d units taken, %d requested",
				req.ListingID, booked, units, requested)
			return ErrNoCapacity
		}

		uc.logger.Info("CreateBooking: capacity available for listing id=%d, %d/%d units taken",
			req.ListingID, booked, units)

		// 6.4. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			UserID:        req.UserID,
			ListingID:     req.ListingID,
			Start:         req.Start,
			End:           req.End,
			Status:        domain.StatusPending,
			Adults:        req.Adults,
			Children:      req.Children,
			Infants:       req.Infants,
			EventID:       req.EventID,
			VolunteerID:   req.VolunteerID,
			IsTeamBooking: req.IsTeamBooking,
			UseTokens:     req.UseTokens,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return toResponse(result, isMember), nil
}
