package get_calendar

import (
	"fmt"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает
// список дат окна [From, To] включительно
func validateRequest(req *Request) ([]types.DateString, error) {
	if req.PropertyID == nil && len(req.UnitIDs) == 0 {
		return nil, fmt.Errorf("%w: either propertyID or unitIDs is required", ErrInvalidInput)
	}

	if req.PropertyID != nil && *req.PropertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	for _, unitID := range req.UnitIDs {
		if unitID <= 0 {
			return nil, fmt.Errorf("%w: unitID must be positive, got %d", ErrInvalidInput, unitID)
		}
	}

	if err := req.From.Validate(); err != nil {
		return nil, fmt.Errorf("%w: from=%q", ErrInvalidDateRange, req.From)
	}
	if err := req.To.Validate(); err != nil {
		return nil, fmt.Errorf("%w: to=%q", ErrInvalidDateRange, req.To)
	}
	if req.From.After(req.To) {
		return nil, fmt.Errorf("%w: from=%s is after to=%s", ErrInvalidDateRange, req.From, req.To)
	}

	dates := types.DatesBetween(req.From, req.To)
	if len(dates) > domain.MaxCalendarWindowDays {
		return nil, fmt.Errorf("%w: %d days, limit is %d", ErrWindowTooLarge, len(dates), domain.MaxCalendarWindowDays)
	}

	return dates, nil
}

// dedupeUnits удаляет дубликаты, сохраняя порядок первого вхождения
func dedupeUnits(unitIDs []int64) []int64 {
	seen := make(map[int64]struct{}, len(unitIDs))
	out := make([]int64, 0, len(unitIDs))
	for _, unitID := range unitIDs {
		if _, ok := seen[unitID]; ok {
			continue
		}
		seen[unitID] = struct{}{}
		out = append(out, unitID)
	}
	return out
}
