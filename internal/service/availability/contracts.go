package availability

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// AvailabilityRepository интерфейс репозитория записей доступности
type AvailabilityRepository interface {
	Upsert(ctx context.Context, record *domain.AvailabilityRecord) (*domain.AvailabilityRecord, error)
	Delete(ctx context.Context, unitID int64, date string) error
}

// RangeIndex интерфейс кэша записей доступности
type RangeIndex interface {
	Apply(record *domain.AvailabilityRecord)
	Invalidate(unitID int64, date types.DateString)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
