package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/REM-AvailabilityService/internal/api/handlers"
	getCalendar "github.com/m04kA/REM-AvailabilityService/internal/usecase/get_calendar"
)

const (
	msgInvalidPropertyID  = "некорректный ID объекта"
	msgInvalidParams      = "некорректные параметры запроса"
	msgInvalidDateRange   = "некорректный диапазон дат, ожидается from=YYYY-MM-DD&to=YYYY-MM-DD"
	msgWindowTooLarge     = "запрошенное окно календаря слишком велико"
	msgPropertyNotFound   = "объект не найден"
	msgNoUnits            = "у объекта нет юнитов"
	msgStorageUnavailable = "хранилище временно недоступно, повторите запрос позже"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/calendar
// Query params: from, to (обязательные), unitIds (опционально, comma-separated)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/calendar - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	query := r.URL.Query()
	req, err := ToUseCaseRequest(propertyID, query.Get("from"), query.Get("to"), query.Get("unitIds"))
	if err != nil {
		h.logger.Warn("GET /properties/{id}/calendar - Invalid parameters: property_id=%d: %v", propertyID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidDateRange):
			h.logger.Warn("GET /properties/{id}/calendar - Invalid date range: property_id=%d: %v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getCalendar.ErrWindowTooLarge):
			h.logger.Warn("GET /properties/{id}/calendar - Window too large: property_id=%d: %v", propertyID, err)
			handlers.RespondBadRequest(w, msgWindowTooLarge)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/calendar - Invalid input: property_id=%d: %v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getCalendar.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/calendar - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, getCalendar.ErrNoUnits):
			h.logger.Warn("GET /properties/{id}/calendar - No units: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgNoUnits)

		case errors.Is(err, getCalendar.ErrStorageUnavailable):
			h.logger.Error("GET /properties/{id}/calendar - Storage unavailable: property_id=%d: %v", propertyID, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("GET /properties/{id}/calendar - Failed: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/calendar - Grid built: property_id=%d, units=%d",
		propertyID, len(result.Units))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
