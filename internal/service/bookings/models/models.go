package models

import (
	"errors"
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение бронирований за период
// TimeFrame разрешается в конкретный диапазон через domain.ResolveTimeFrame;
// наличие обоих явных значений FromDate/ToDate принудительно даёт custom
type ListBookingsRequest struct {
	UserID          int64      `json:"userId"`
	TimeFrame       string     `json:"timeFrame"`
	FromDate        *time.Time `json:"fromDate,omitempty"`
	ToDate          *time.Time `json:"toDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
	OwnOnly         bool       `json:"ownOnly,omitempty"` // Только бронирования самого пользователя
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"` // Причина, обязательна для cancelled
}

// Response модели

// MoneyResponse денежная сумма
type MoneyResponse struct {
	Val float64 `json:"val"`
	Cur string  `json:"cur"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	ListingID int64  `json:"listing"`
	Start     string `json:"start"` // ISO 8601
	End       string `json:"end"`   // ISO 8601
	Status    string `json:"status"`

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`

	EventID       *int64 `json:"eventId,omitempty"`
	VolunteerID   *int64 `json:"volunteerId,omitempty"`
	IsTeamBooking bool   `json:"isTeamBooking,omitempty"`

	UseTokens   bool          `json:"useTokens"`
	Total       MoneyResponse `json:"total"`
	RentalFiat  MoneyResponse `json:"rentalFiat"`
	RentalToken MoneyResponse `json:"rentalToken"`
	UtilityFiat MoneyResponse `json:"utilityFiat"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		ListingID:          b.ListingID,
		Start:              b.Start.Format(time.RFC3339),
		End:                b.End.Format(time.RFC3339),
		Status:             string(b.Status),
		Adults:             b.Adults,
		Children:           b.Children,
		Infants:            b.Infants,
		EventID:            b.EventID,
		VolunteerID:        b.VolunteerID,
		IsTeamBooking:      b.IsTeamBooking,
		UseTokens:          b.UseTokens,
		Total:              MoneyResponse(b.Total),
		RentalFiat:         MoneyResponse(b.RentalFiat),
		RentalToken:        MoneyResponse(b.RentalToken),
		UtilityFiat:        MoneyResponse(b.UtilityFiat),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusOpen,
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusPaid,
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelled,
		domain.StatusRejected,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
