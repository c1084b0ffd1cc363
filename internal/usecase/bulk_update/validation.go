package bulk_update

import (
	"fmt"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает
// дедуплицированные наборы юнитов и дат в порядке первого вхождения
func validateRequest(req *Request) ([]int64, []types.DateString, error) {
	if len(req.UnitIDs) == 0 {
		return nil, nil, ErrNoUnits
	}

	if len(req.Dates) == 0 {
		return nil, nil, ErrNoDates
	}

	if !req.Status.IsValid() {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	units := make([]int64, 0, len(req.UnitIDs))
	seenUnits := make(map[int64]struct{}, len(req.UnitIDs))
	for _, unitID := range req.UnitIDs {
		if unitID <= 0 {
			return nil, nil, fmt.Errorf("%w: unitID must be positive, got %d", ErrInvalidInput, unitID)
		}
		if _, ok := seenUnits[unitID]; ok {
			continue
		}
		seenUnits[unitID] = struct{}{}
		units = append(units, unitID)
	}

	dates := make([]types.DateString, 0, len(req.Dates))
	seenDates := make(map[types.DateString]struct{}, len(req.Dates))
	for _, date := range req.Dates {
		if err := date.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
		if _, ok := seenDates[date]; ok {
			continue
		}
		seenDates[date] = struct{}{}
		dates = append(dates, date)
	}

	if len(units)*len(dates) > domain.MaxBulkCells {
		return nil, nil, fmt.Errorf("%w: %d cells, limit is %d", ErrTooManyCells, len(units)*len(dates), domain.MaxBulkCells)
	}

	return units, dates, nil
}
