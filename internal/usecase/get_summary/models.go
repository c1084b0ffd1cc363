package get_summary

import (
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// Request модель запроса сводки доступности на дату.
// Universe юнитов задаётся либо явным списком UnitIDs, либо объектом
// недвижимости PropertyID, чьи юниты резолвятся через каталог.
type Request struct {
	PropertyID *int64
	UnitIDs    []int64
	Date       types.DateString
}

// Response модель ответа со сводкой на дату
type Response struct {
	Date           types.DateString
	TotalUnits     int            // |universe|
	AvailableCount int            // Число доступных юнитов с учётом default-available
	CountByStatus  map[string]int // Число юнитов по каждому статусу
}
