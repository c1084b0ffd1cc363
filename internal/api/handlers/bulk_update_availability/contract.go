package bulk_update_availability

import (
	"context"

	bulkUpdate "github.com/m04kA/REM-AvailabilityService/internal/usecase/bulk_update"
)

// BulkUpdateUseCase интерфейс use case массового изменения статуса
type BulkUpdateUseCase interface {
	Execute(ctx context.Context, req *bulkUpdate.Request) (*bulkUpdate.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
