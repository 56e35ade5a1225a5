package update_booking_status

import (
	"context"

	"github.com/closer-platform/availability-service/internal/service/bookings/models"
)

type BookingService interface {
	Confirm(ctx context.Context, id, userID int64) (*models.BookingResponse, error)
	Reject(ctx context.Context, id, userID int64) (*models.BookingResponse, error)
	Cancel(ctx context.Context, id, userID int64, reason string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
