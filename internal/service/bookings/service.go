package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
	bookingRepo "github.com/closer-platform/availability-service/internal/infra/storage/booking"
	memberClient "github.com/closer-platform/availability-service/internal/integrations/memberservice"
	"github.com/closer-platform/availability-service/internal/service/bookings/models"
)

const roleAdmin = "admin"

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	memberClient MemberServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	memberClient MemberServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		memberClient: memberClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Доступно владельцу бронирования и администраторам
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		if err := s.checkAdminAccess(ctx, userID); err != nil {
			s.logger.Warn("GetByID: user=%d has no access to booking id=%d", userID, id)
			return nil, err
		}
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования за период
// Символьный период разрешается в конкретный диапазон дат; бронирование
// попадает в выборку, если пересекается с диапазоном
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for user=%d, timeFrame=%s", req.UserID, req.TimeFrame)

	frame := domain.TimeFrame(req.TimeFrame)
	if req.TimeFrame != "" && !domain.IsKnownTimeFrame(frame) {
		s.logger.Warn("List: unknown time frame %q, falling back to today", req.TimeFrame)
	}

	dateRange := domain.ResolveTimeFrame(frame, req.FromDate, req.ToDate, s.timeProvider.Now())

	filter := domain.BookingsFilter{
		StartDate:       &dateRange.Start,
		EndDate:         &dateRange.End,
		IncludeInactive: req.IncludeInactive,
	}

	if req.OwnOnly {
		filter.UserID = &req.UserID
	} else if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		// Без прав администратора доступны только собственные бронирования
		return nil, err
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status filter %q", *req.Status)
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Confirm подтверждает бронирование
// Доступно только администраторам; допустимо из статусов open и pending
func (s *Service) Confirm(ctx context.Context, id, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d by user=%d", id, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return nil, err
	}

	booking, err := s.getBooking(ctx, "Confirm", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%d in status %s cannot be confirmed", id, booking.Status)
		return nil, fmt.Errorf("%w: current status is %s", ErrCannotConfirm, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		s.logger.Error("Confirm: failed to update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - failed to update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed

	s.logger.Info("Confirm: successfully confirmed booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Reject отклоняет бронирование
// Доступно только администраторам; допустимо из статусов open и pending
func (s *Service) Reject(ctx context.Context, id, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("Reject: rejecting booking id=%d by user=%d", id, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return nil, err
	}

	booking, err := s.getBooking(ctx, "Reject", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeRejected() {
		s.logger.Warn("Reject: booking id=%d in status %s cannot be rejected", id, booking.Status)
		return nil, fmt.Errorf("%w: current status is %s", ErrCannotReject, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusRejected); err != nil {
		s.logger.Error("Reject: failed to update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Reject - failed to update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusRejected

	s.logger.Info("Reject: successfully rejected booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование с указанием причины
// Доступно владельцу бронирования и администраторам
func (s *Service) Cancel(ctx context.Context, id, userID int64, reason string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", id, userID)

	if reason == "" {
		s.logger.Warn("Cancel: empty cancellation reason for booking id=%d", id)
		return nil, fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID {
		if err := s.checkAdminAccess(ctx, userID); err != nil {
			s.logger.Warn("Cancel: user=%d has no access to booking id=%d", userID, id)
			return nil, err
		}
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d in status %s cannot be cancelled", id, booking.Status)
		return nil, fmt.Errorf("%w: current status is %s", ErrCannotCancel, booking.Status)
	}

	if err := s.bookingRepo.Cancel(ctx, id, reason); err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - failed to cancel: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	booking.Status = domain.StatusCancelled
	booking.CancellationReason = &reason
	booking.CancelledAt = &now

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkAdminAccess проверяет, что пользователь является администратором платформы
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	member, err := s.memberClient.GetMember(ctx, userID)
	if err != nil {
		if errors.Is(err, memberClient.ErrMemberNotFound) {
			s.logger.Warn("checkAdminAccess: user=%d not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkAdminAccess: failed to get member user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get member: %v", ErrInternal, err)
	}

	if !member.HasRole(roleAdmin) {
		s.logger.Warn("checkAdminAccess: user=%d has no admin role", userID)
		return ErrAccessDenied
	}

	return nil
}
