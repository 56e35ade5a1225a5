package create_booking

import (
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return ErrInvalidUserID
	}

	if req.ListingID <= 0 {
		return ErrInvalidListingID
	}

	if req.Start.IsZero() || req.End.IsZero() || !req.Start.Before(req.End) {
		return ErrInvalidDateRange
	}

	if req.Adults < 1 || req.Children < 0 || req.Infants < 0 {
		return ErrInvalidGuestCount
	}

	return nil
}

// validateDates проверяет даты против лимитов бронирования:
// начало не в прошлом, в пределах горизонта, длительность в пределах
// максимума для статуса членства
func validateDates(req *Request, settings domain.BookingSettings, isMember bool, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if req.Start.Before(today) {
		return ErrDateInPast
	}

	horizonEnd := today.AddDate(0, 0, settings.HorizonFor(isMember))
	if req.Start.After(horizonEnd) {
		return ErrBeyondHorizon
	}

	nights := int(req.End.Sub(req.Start).Hours() / 24)
	if nights > settings.DurationFor(isMember) {
		return ErrDurationExceeded
	}

	return nil
}

// requestedUnits возвращает число юнитов, которые займёт новое бронирование
func requestedUnits(listing *domain.Listing, adults int) int {
	if listing.Private {
		return 1
	}
	return adults
}

// bookedUnits считает юниты, занятые пересекающимися бронированиями
func bookedUnits(listing *domain.Listing, bookings []*domain.Booking) int {
	booked := 0
	for _, b := range bookings {
		if listing.Private {
			booked++
		} else {
			booked += b.Adults
		}
	}
	return booked
}
