package get_summary

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID == nil && len(req.UnitIDs) == 0 {
		return fmt.Errorf("%w: either propertyID or unitIDs is required", ErrInvalidInput)
	}

	if req.PropertyID != nil && *req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	for _, unitID := range req.UnitIDs {
		if unitID <= 0 {
			return fmt.Errorf("%w: unitID must be positive, got %d", ErrInvalidInput, unitID)
		}
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	return nil
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
