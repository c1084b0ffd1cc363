package get_summary

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория записей доступности
type AvailabilityRepository interface {
	QueryRange(ctx context.Context, filter domain.AvailabilityRangeFilter) ([]*domain.AvailabilityRecord, error)
}

// CatalogServiceClient интерфейс клиента каталога объектов
type CatalogServiceClient interface {
	ListUnits(ctx context.Context, propertyID *int64) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
