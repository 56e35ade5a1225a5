package create_booking

import (
	"time"

	createBooking "github.com/closer-platform/availability-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ListingID int64     `json:"listing"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`

	EventID       *int64 `json:"eventId,omitempty"`
	VolunteerID   *int64 `json:"volunteerId,omitempty"`
	IsTeamBooking bool   `json:"isTeamBooking,omitempty"`

	UseTokens bool `json:"useTokens,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:        userID,
		ListingID:     r.ListingID,
		Start:         r.Start,
		End:           r.End,
		Adults:        r.Adults,
		Children:      r.Children,
		Infants:       r.Infants,
		EventID:       r.EventID,
		VolunteerID:   r.VolunteerID,
		IsTeamBooking: r.IsTeamBooking,
		UseTokens:     r.UseTokens,
	}
}
