package create_booking

import (
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
)

// Request запрос на создание бронирования
type Request struct {
	UserID    int64     `json:"userId"`
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

// Response созданное бронирование
type Response struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	ListingID int64  `json:"listing"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`

	IsMember bool `json:"isMember"`

	CreatedAt time.Time `json:"createdAt"`
}

// Методы конвертации

func toResponse(b *domain.Booking, isMember bool) *Response {
	return &Response{
		ID:        b.ID,
		UserID:    b.UserID,
		ListingID: b.ListingID,
		Start:     b.Start.Format(time.RFC3339),
		End:       b.End.Format(time.RFC3339),
		Status:    string(b.Status),
		Adults:    b.Adults,
		Children:  b.Children,
		Infants:   b.Infants,
		IsMember:  isMember,
		CreatedAt: b.CreatedAt,
	}
}
