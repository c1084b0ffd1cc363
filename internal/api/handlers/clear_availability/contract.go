package clear_availability

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/service/availability/models"
)

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	ClearCell(ctx context.Context, req *models.ClearCellRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
