package upsert_availability

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/service/availability/models"
)

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	UpsertCell(ctx context.Context, req *models.UpsertCellRequest) (*models.RecordResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
