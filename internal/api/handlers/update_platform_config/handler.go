package update_platform_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/closer-platform/availability-service/internal/api/handlers"
	"github.com/closer-platform/availability-service/internal/api/middleware"
	configService "github.com/closer-platform/availability-service/internal/service/config"
)

const (
	msgMissingUserID      = "не удалось определить пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownCategory    = "категория конфигурации не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidValue       = "значение конфигурации обязательно"
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

// Handle PUT /api/v1/config/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /config/{slug} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	slug := vars["slug"]

	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config/{slug} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(userID, slug))
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrUnknownCategory):
			h.logger.Warn("PUT /config/{slug} - Unknown category: slug=%s", slug)
			handlers.RespondNotFound(w, msgUnknownCategory)

		case errors.Is(err, configService.ErrAccessDenied), errors.Is(err, configService.ErrMemberNotFound):
			h.logger.Warn("PUT /config/{slug} - Access denied: slug=%s, user_id=%d", slug, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, configService.ErrInvalidInput):
			h.logger.Warn("PUT /config/{slug} - Invalid value: slug=%s", slug)
			handlers.RespondBadRequest(w, msgInvalidValue)

		default:
			h.logger.Error("PUT /config/{slug} - Failed to update config: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config/{slug} - Config updated: slug=%s, user_id=%d", slug, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
