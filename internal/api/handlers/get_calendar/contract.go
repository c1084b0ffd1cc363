package get_calendar

import (
	"context"

	getCalendar "github.com/m04kA/REM-AvailabilityService/internal/usecase/get_calendar"
)

// GetCalendarUseCase интерфейс use case календарной сетки
type GetCalendarUseCase interface {
	Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
