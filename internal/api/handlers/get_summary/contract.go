package get_summary

import (
	"context"

	getSummary "github.com/m04kA/REM-AvailabilityService/internal/usecase/get_summary"
)

// GetSummaryUseCase интерфейс use case сводки доступности
type GetSummaryUseCase interface {
	Execute(ctx context.Context, req *getSummary.Request) (*getSummary.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
