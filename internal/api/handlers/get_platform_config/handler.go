package get_platform_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/closer-platform/availability-service/internal/api/handlers"
	configService "github.com/closer-platform/availability-service/internal/service/config"
)

const (
	msgUnknownCategory = "категория конфигурации не найдена"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/config/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	result, err := h.service.GetResolved(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrUnknownCategory):
			h.logger.Warn("GET /config/{slug} - Unknown category: slug=%s", slug)
			handlers.RespondNotFound(w, msgUnknownCategory)

		default:
			h.logger.Error("GET /config/{slug} - Failed to get config: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /config/{slug} - Config retrieved: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/config
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAllResolved(r.Context())
	if err != nil {
		h.logger.Error("GET /config - Failed to get configs: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /config - Configs retrieved: count=%d", len(result.Configs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
