package get_summary

import (
	"strconv"
	"strings"

	getSummary "github.com/m04kA/REM-AvailabilityService/internal/usecase/get_summary"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// SummaryResponse HTTP response model
type SummaryResponse struct {
	Date           string         `json:"date"`
	TotalUnits     int            `json:"totalUnits"`
	AvailableCount int            `json:"availableCount"`
	CountByStatus  map[string]int `json:"countByStatus"`
}

// ToUseCaseRequest собирает модель use case из параметров запроса
func ToUseCaseRequest(propertyID int64, date, unitIDsParam string) (*getSummary.Request, error) {
	unitIDs, err := parseUnitIDs(unitIDsParam)
	if err != nil {
		return nil, err
	}

	return &getSummary.Request{
		PropertyID: &propertyID,
		UnitIDs:    unitIDs,
		Date:       types.DateString(date),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSummary.Response) *SummaryResponse {
	return &SummaryResponse{
		Date:           resp.Date.String(),
		TotalUnits:     resp.TotalUnits,
		AvailableCount: resp.AvailableCount,
		CountByStatus:  resp.CountByStatus,
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
