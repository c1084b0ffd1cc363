package get_calendar

import (
	"strconv"
	"strings"

	getCalendar "github.com/m04kA/REM-AvailabilityService/internal/usecase/get_calendar"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// DayCellResponse одна ячейка сетки в ответе API
type DayCellResponse struct {
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	Notes    *string `json:"notes,omitempty"`
	Explicit bool    `json:"explicit"`
}

// UnitCalendarResponse строка сетки для одного юнита
type UnitCalendarResponse struct {
	UnitID int64             `json:"unitId"`
	Days   []DayCellResponse `json:"days"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	From  string                 `json:"from"`
	To    string                 `json:"to"`
	Units []UnitCalendarResponse `json:"units"`
}

// ToUseCaseRequest собирает модель use case из параметров запроса.
// unitIds — comma-separated список; непустой список имеет приоритет
// над propertyId при выборе universe.
func ToUseCaseRequest(propertyID int64, from, to, unitIDsParam string) (*getCalendar.Request, error) {
	unitIDs, err := parseUnitIDs(unitIDsParam)
	if err != nil {
		return nil, err
	}

	return &getCalendar.Request{
		PropertyID: &propertyID,
		UnitIDs:    unitIDs,
		From:       types.DateString(from),
		To:         types.DateString(to),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	units := make([]UnitCalendarResponse, 0, len(resp.Units))
	for _, unit := range resp.Units {
		days := make([]DayCellResponse, 0, len(unit.Days))
		for _, day := range unit.Days {
			days = append(days, DayCellResponse{
				Date:     day.Date.String(),
				Status:   day.Status,
				Notes:    day.Notes,
				Explicit: day.Explicit,
			})
		}
		units = append(units, UnitCalendarResponse{UnitID: unit.UnitID, Days: days})
	}

	return &CalendarResponse{
		From:  resp.From.String(),
		To:    resp.To.String(),
		Units: units,
	}
}

func parseUnitIDs(param string) ([]int64, error) {
	if param == "" {
		return nil, nil
	}

	parts := strings.Split(param, ",")
	unitIDs := make([]int64, 0, len(parts))
	for _, part := range parts {
		unitID, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		unitIDs = append(unitIDs, unitID)
	}
	return unitIDs, nil
}
