package upsert_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/REM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/REM-AvailabilityService/internal/api/middleware"
	availabilityService "github.com/m04kA/REM-AvailabilityService/internal/service/availability"
	"github.com/m04kA/REM-AvailabilityService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUnitID      = "некорректный ID юнита"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus      = "недопустимый статус доступности"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgStorageUnavailable = "хранилище временно недоступно, повторите запрос позже"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/units/{unitId}/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	unitID, err := strconv.ParseInt(vars["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /units/{id}/availability/{date} - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	date := vars["date"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /units/{id}/availability/{date} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpsertAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /units/{id}/availability/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertCell(r.Context(), &models.UpsertCellRequest{
		UnitID:    unitID,
		Date:      date,
		Status:    req.Status,
		Notes:     req.Notes,
		UpdatedBy: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidDate):
			h.logger.Warn("PUT /units/{id}/availability/{date} - Invalid date: unit_id=%d, date=%s", unitID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availabilityService.ErrInvalidStatus):
			h.logger.Warn("PUT /units/{id}/availability/{date} - Invalid status: unit_id=%d, status=%s", unitID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("PUT /units/{id}/availability/{date} - Invalid input: unit_id=%d: %v", unitID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, availabilityService.ErrStorageUnavailable):
			h.logger.Error("PUT /units/{id}/availability/{date} - Storage unavailable: unit_id=%d, date=%s: %v", unitID, date, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("PUT /units/{id}/availability/{date} - Failed to upsert: unit_id=%d, date=%s, error=%v", unitID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /units/{id}/availability/{date} - Cell updated: unit_id=%d, date=%s, status=%s, user_id=%d",
		unitID, date, req.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
