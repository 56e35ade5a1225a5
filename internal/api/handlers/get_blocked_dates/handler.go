package get_blocked_dates

import (
	"errors"
	"net/http"

	"github.com/closer-platform/availability-service/internal/api/handlers"
	"github.com/closer-platform/availability-service/internal/api/middleware"
	getBlockedDates "github.com/closer-platform/availability-service/internal/usecase/get_blocked_dates"
)

const (
	msgMissingUserID    = "не удалось определить пользователя"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "дата начала не может быть позже даты окончания"
)

type Handler struct {
	useCase GetBlockedDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetBlockedDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/blocked-dates
// Query params: start, end (optional, YYYY-MM-DD) - предварительный выбор в календаре
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("GET /blocked-dates - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(userID, r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		h.logger.Warn("GET /blocked-dates - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getBlockedDates.ErrInvalidDateRange):
			h.logger.Warn("GET /blocked-dates - Invalid date range: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /blocked-dates - Failed to compute blocked dates: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /blocked-dates - Blocked dates computed: user_id=%d, ranges=%d", userID, len(result.Blocked))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
