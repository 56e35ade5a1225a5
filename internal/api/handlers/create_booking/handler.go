package create_booking

import (
	"errors"
	"net/http"

	"github.com/closer-platform/availability-service/internal/api/handlers"
	"github.com/closer-platform/availability-service/internal/api/middleware"
	createBooking "github.com/closer-platform/availability-service/internal/usecase/create_booking"
)

const (
	msgMissingUserID      = "не удалось определить пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidListing     = "некорректный ID листинга"
	msgInvalidDates       = "некорректный интервал дат"
	msgInvalidGuests      = "требуется хотя бы один взрослый гость"
	msgListingNotFound    = "листинг не найден"
	msgDateInPast         = "дата начала в прошлом"
	msgBeyondHorizon      = "дата начала за пределами горизонта бронирования"
	msgDurationExceeded   = "превышена максимальная длительность бронирования"
	msgNoCapacity         = "нет свободных мест на выбранные даты"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidListingID):
			h.logger.Warn("POST /bookings - Invalid listing ID: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidListing)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createBooking.ErrInvalidGuestCount):
			h.logger.Warn("POST /bookings - Invalid guest count: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidGuests)

		case errors.Is(err, createBooking.ErrListingNotFound):
			h.logger.Warn("POST /bookings - Listing not found: user_id=%d, listing_id=%d", userID, req.ListingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrBeyondHorizon):
			h.logger.Warn("POST /bookings - Beyond booking horizon: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgBeyondHorizon)

		case errors.Is(err, createBooking.ErrDurationExceeded):
			h.logger.Warn("POST /bookings - Duration exceeded: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgDurationExceeded)

		case errors.Is(err, createBooking.ErrNoCapacity):
			h.logger.Warn("POST /bookings - No capacity: user_id=%d, listing_id=%d", userID, req.ListingID)
			handlers.RespondJSON(w, http.StatusConflict, handlers.ErrorResponse{Error: msgNoCapacity})

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
