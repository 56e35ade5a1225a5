package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusOpen       BookingStatus = "open"
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusPaid       BookingStatus = "paid"
	StatusCheckedIn  BookingStatus = "checked-in"
	StatusCheckedOut BookingStatus = "checked-out"
	StatusCancelled  BookingStatus = "cancelled"
	StatusRejected   BookingStatus = "rejected"
)

// Money represents an amount in a specific currency
type Money struct {
	Val float64
	Cur string
}

// Booking represents a stay or space booking in the system
type Booking struct {
	ID        int64
	UserID    int64
	ListingID int64
	Start     time.Time
	End       time.Time
	Status    BookingStatus

	Adults   int
	Children int
	Infants  int

	// Discriminators: event attendance, volunteering, team stays
	EventID       *int64
	VolunteerID   *int64
	IsTeamBooking bool

	UseTokens   bool
	Total       Money
	RentalFiat  Money
	RentalToken Money
	UtilityFiat Money

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusRejected
}

// CanBeConfirmed returns true if the booking can transition to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusOpen || b.Status == StatusPending
}

// CanBeRejected returns true if the booking can transition to rejected
func (b *Booking) CanBeRejected() bool {
	return b.Status == StatusOpen || b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	switch b.Status {
	case StatusOpen, StatusPending, StatusConfirmed, StatusPaid:
		return true
	default:
		return false
	}
}

// Nights returns the number of whole days between start and end
func (b *Booking) Nights() int {
	nights := int(b.End.Sub(b.Start).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// Overlaps returns true if the booking intersects the [start, end) interval
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	UserID          *int64         // Фильтр по пользователю (опционально)
	ListingID       *int64         // Фильтр по листингу (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и отклонённые бронирования
}
