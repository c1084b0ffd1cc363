package clear_availability

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
	msgInvalidUnitID      = "некорректный ID юнита"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound           = "запись доступности не найдена"
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

// Handle DELETE /api/v1/units/{unitId}/availability/{date}
// Возвращает ячейку к дефолтному available, удаляя запись-исключение
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	unitID, err := strconv.ParseInt(vars["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /units/{id}/availability/{date} - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	date := vars["date"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /units/{id}/availability/{date} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.ClearCell(r.Context(), &models.ClearCellRequest{
		UnitID:    unitID,
		Date:      date,
		UpdatedBy: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrRecordNotFound):
			h.logger.Warn("DELETE /units/{id}/availability/{date} - Record not found: unit_id=%d, date=%s", unitID, date)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availabilityService.ErrInvalidDate):
			h.logger.Warn("DELETE /units/{id}/availability/{date} - Invalid date: unit_id=%d, date=%s", unitID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("DELETE /units/{id}/availability/{date} - Invalid input: unit_id=%d: %v", unitID, err)
			handlers.RespondBadRequest(w, msgInvalidUnitID)

		case errors.Is(err, availabilityService.ErrStorageUnavailable):
			h.logger.Error("DELETE /units/{id}/availability/{date} - Storage unavailable: unit_id=%d, date=%s: %v", unitID, date, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("DELETE /units/{id}/availability/{date} - Failed to clear: unit_id=%d, date=%s, error=%v", unitID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /units/{id}/availability/{date} - Cell cleared: unit_id=%d, date=%s, user_id=%d",
		unitID, date, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
