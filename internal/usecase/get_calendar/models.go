package get_calendar

import (
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// Request модель запроса календарной сетки.
// Universe юнитов задаётся либо явным списком UnitIDs, либо объектом
// недвижимости PropertyID, чьи юниты резолвятся через каталог.
type Request struct {
	PropertyID *int64
	UnitIDs    []int64
	From       types.DateString
	To         types.DateString
}

// DayCell одна ячейка сетки: статус юнита на дату.
// Для ячеек без явной записи отдаётся дефолтный available.
type DayCell struct {
	Date     types.DateString
	Status   string
	Notes    *string
	Explicit bool // true, если для ячейки существует запись-исключение
}

// UnitCalendar строка сетки: все дни окна для одного юнита
type UnitCalendar struct {
	UnitID int64
	Days   []DayCell
}

// Response модель ответа с календарной сеткой
type Response struct {
	From  types.DateString
	To    types.DateString
	Units []UnitCalendar
}
