package get_summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/REM-AvailabilityService/internal/api/handlers"
	getSummary "github.com/m04kA/REM-AvailabilityService/internal/usecase/get_summary"
)

const (
	msgInvalidPropertyID  = "некорректный ID объекта"
	msgInvalidParams      = "некорректные параметры запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается date=YYYY-MM-DD"
	msgPropertyNotFound   = "объект не найден"
	msgNoUnits            = "у объекта нет юнитов"
	msgStorageUnavailable = "хранилище временно недоступно, повторите запрос позже"
)

type Handler struct {
	useCase GetSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/availability/summary
// Query params: date (обязательный), unitIds (опционально, comma-separated)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability/summary - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	query := r.URL.Query()
	req, err := ToUseCaseRequest(propertyID, query.Get("date"), query.Get("unitIds"))
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability/summary - Invalid parameters: property_id=%d: %v", propertyID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSummary.ErrInvalidDate):
			h.logger.Warn("GET /properties/{id}/availability/summary - Invalid date: property_id=%d: %v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getSummary.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/availability/summary - Invalid input: property_id=%d: %v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getSummary.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/availability/summary - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, getSummary.ErrNoUnits):
			h.logger.Warn("GET /properties/{id}/availability/summary - No units: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgNoUnits)

		case errors.Is(err, getSummary.ErrStorageUnavailable):
			h.logger.Error("GET /properties/{id}/availability/summary - Storage unavailable: property_id=%d: %v", propertyID, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("GET /properties/{id}/availability/summary - Failed: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/availability/summary - Summary built: property_id=%d, date=%s, available=%d/%d",
		propertyID, result.Date, result.AvailableCount, result.TotalUnits)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
