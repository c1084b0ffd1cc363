package bulk_update

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория записей доступности
type AvailabilityRepository interface {
	UpsertBatch(ctx context.Context, records []*domain.AvailabilityRecord) ([]*domain.AvailabilityRecord, error)
}

// RangeIndex интерфейс кэша записей доступности
type RangeIndex interface {
	Apply(record *domain.AvailabilityRecord)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
