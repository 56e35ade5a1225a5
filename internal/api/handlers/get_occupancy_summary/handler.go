package get_occupancy_summary

import (
	"errors"
	"net/http"

	"github.com/closer-platform/availability-service/internal/api/handlers"
	getOccupancySummary "github.com/closer-platform/availability-service/internal/usecase/get_occupancy_summary"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "дата начала не может быть позже даты окончания"
)

type Handler struct {
	useCase GetOccupancySummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancySummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/occupancy
// Query params: timeFrame (today|week|month|year|custom), fromDate, toDate (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(query.Get("timeFrame"), query.Get("fromDate"), query.Get("toDate"))
	if err != nil {
		h.logger.Warn("GET /dashboard/occupancy - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getOccupancySummary.ErrInvalidDateRange):
			h.logger.Warn("GET /dashboard/occupancy - Invalid date range")
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /dashboard/occupancy - Failed to aggregate occupancy: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dashboard/occupancy - Occupancy aggregated: %s - %s (%d days)",
		result.Start, result.End, result.DurationDays)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
