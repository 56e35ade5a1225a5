package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/closer-platform/availability-service/internal/api/handlers"
	"github.com/closer-platform/availability-service/internal/api/middleware"
	"github.com/closer-platform/availability-service/internal/domain"
	"github.com/closer-platform/availability-service/internal/service/bookings"
	"github.com/closer-platform/availability-service/internal/service/bookings/models"
)

const (
	msgMissingUserID      = "не удалось определить пользователя"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимый целевой статус"
	msgMissingReason      = "причина отмены обязательна"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgCannotTransition   = "недопустимый переход статуса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
// Body: {"status": "confirmed|rejected|cancelled", "reason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var result *models.BookingResponse

	// Целевой статус определяет действие над бронированием
	switch domain.BookingStatus(req.Status) {
	case domain.StatusConfirmed:
		result, err = h.service.Confirm(r.Context(), bookingID, userID)
	case domain.StatusRejected:
		result, err = h.service.Reject(r.Context(), bookingID, userID)
	case domain.StatusCancelled:
		if req.Reason == "" {
			h.logger.Warn("PATCH /bookings/{id}/status - Missing cancellation reason: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgMissingReason)
			return
		}
		result, err = h.service.Cancel(r.Context(), bookingID, userID, req.Reason)
	default:
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid target status %q: booking_id=%d", req.Status, bookingID)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotConfirm),
			errors.Is(err, bookings.ErrCannotReject),
			errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid transition: booking_id=%d, target=%s", bookingID, req.Status)
			handlers.RespondJSON(w, http.StatusConflict, handlers.ErrorResponse{Error: msgCannotTransition})

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid input: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgMissingReason)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status updated: booking_id=%d, status=%s, user_id=%d",
		bookingID, result.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
