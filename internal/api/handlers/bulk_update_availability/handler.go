package bulk_update_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/REM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/REM-AvailabilityService/internal/api/middleware"
	bulkUpdate "github.com/m04kA/REM-AvailabilityService/internal/usecase/bulk_update"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyUnits         = "набор юнитов пуст"
	msgEmptyDates         = "набор дат пуст"
	msgInvalidStatus      = "недопустимый статус доступности"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTooManyCells       = "запрос затрагивает слишком много ячеек"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgStorageUnavailable = "хранилище временно недоступно, изменения не применены"
	msgBulkWriteFailed    = "массовое изменение не применено, повторите запрос целиком"
)

type Handler struct {
	useCase BulkUpdateUseCase
	logger  Logger
}

func NewHandler(useCase BulkUpdateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/bulk
// Ошибка любой ячейки означает, что не применена ни одна: ответ о
// частичном успехе ("обновлено 47 из 60") для атомарной операции
// был бы некорректен.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability/bulk - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BulkUpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, bulkUpdate.ErrNoUnits):
			h.logger.Warn("POST /availability/bulk - Empty unit set: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgEmptyUnits)

		case errors.Is(err, bulkUpdate.ErrNoDates):
			h.logger.Warn("POST /availability/bulk - Empty date set: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgEmptyDates)

		case errors.Is(err, bulkUpdate.ErrInvalidStatus):
			h.logger.Warn("POST /availability/bulk - Invalid status %q: user_id=%d", req.Status, userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bulkUpdate.ErrInvalidDate):
			h.logger.Warn("POST /availability/bulk - Invalid date in set: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bulkUpdate.ErrTooManyCells):
			h.logger.Warn("POST /availability/bulk - Too many cells: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgTooManyCells)

		case errors.Is(err, bulkUpdate.ErrInvalidInput):
			h.logger.Warn("POST /availability/bulk - Invalid input: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, bulkUpdate.ErrStorageUnavailable):
			h.logger.Error("POST /availability/bulk - Storage unavailable: user_id=%d: %v", userID, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		case errors.Is(err, bulkUpdate.ErrBulkWrite):
			h.logger.Error("POST /availability/bulk - Batch write failed: user_id=%d: %v", userID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgBulkWriteFailed)

		default:
			h.logger.Error("POST /availability/bulk - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/bulk - Applied %d cells (units=%d, dates=%d, status=%s, user_id=%d)",
		len(result.Records), result.Units, result.Dates, req.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
