package get_calendar

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// AvailabilityRepository интерфейс репозитория записей доступности
type AvailabilityRepository interface {
	QueryRange(ctx context.Context, filter domain.AvailabilityRangeFilter) ([]*domain.AvailabilityRecord, error)
}

// CatalogServiceClient интерфейс клиента каталога объектов
type CatalogServiceClient interface {
	ListUnits(ctx context.Context, propertyID *int64) ([]int64, error)
}

// RangeIndex интерфейс кэша записей доступности
type RangeIndex interface {
	Load(unitIDs []int64, records []*domain.AvailabilityRecord)
	Get(unitID int64, date types.DateString) domain.AvailabilityStatus
	Record(unitID int64, date types.DateString) (*domain.AvailabilityRecord, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
