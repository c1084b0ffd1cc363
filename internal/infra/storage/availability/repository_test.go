package availability

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

func makeRecords(n int) []*domain.AvailabilityRecord {
	records := make([]*domain.AvailabilityRecord, n)
	for i := range records {
		records[i] = &domain.AvailabilityRecord{UnitID: int64(i + 1)}
	}
	return records
}

func TestChunkRecords(t *testing.T) {
	chunks := chunkRecords(makeRecords(7), 3)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 3)
	assert.Len(t, chunks[1], 3)
	assert.Len(t, chunks[2], 1)

	// порядок записей сохраняется между чанками
	assert.Equal(t, int64(1), chunks[0][0].UnitID)
	assert.Equal(t, int64(4), chunks[1][0].UnitID)
	assert.Equal(t, int64(7), chunks[2][0].UnitID)
}

func TestChunkRecordsExactMultiple(t *testing.T) {
	chunks := chunkRecords(makeRecords(6), 3)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], 3)
	assert.Len(t, chunks[1], 3)
}

func TestChunkRecordsSmallBatch(t *testing.T) {
	chunks := chunkRecords(makeRecords(2), domain.BulkChunkSize)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0], 2)
}

func TestChunkRecordsEdgeCases(t *testing.T) {
	assert.Nil(t, chunkRecords(nil, 3))
	assert.Nil(t, chunkRecords(makeRecords(3), 0))
	assert.Nil(t, chunkRecords(makeRecords(3), -1))
}

func TestUpsertBatchRequiresTransaction(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.UpsertBatch(context.Background(), makeRecords(3))
	assert.ErrorIs(t, err, ErrTransaction)
}

func TestClassifyErrorContext(t *testing.T) {
	err := classifyError("op", context.Canceled)
	assert.ErrorIs(t, err, ErrExecQuery)

	err = classifyError("op", context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestClassifyErrorBadConn(t *testing.T) {
	err := classifyError("op", driver.ErrBadConn)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestClassifyErrorConnectionException(t *testing.T) {
	// класс 08 — connection exception
	err := classifyError("op", &pq.Error{Code: "08006"})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestClassifyErrorConstraintViolation(t *testing.T) {
	// класс 23 — integrity constraint violation
	err := classifyError("op", &pq.Error{Code: "23505"})
	assert.ErrorIs(t, err, ErrConstraint)

	err = classifyError("op", &pq.Error{Code: "23514"})
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestClassifyErrorOther(t *testing.T) {
	err := classifyError("op", errors.New("syntax error"))
	assert.ErrorIs(t, err, ErrExecQuery)

	// прочие классы pq не считаются ни недоступностью, ни конфликтом
	err = classifyError("op", &pq.Error{Code: "42601"})
	assert.ErrorIs(t, err, ErrExecQuery)
}
