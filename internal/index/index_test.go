package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

func rec(unitID int64, date types.DateString, status domain.AvailabilityStatus) *domain.AvailabilityRecord {
	return &domain.AvailabilityRecord{
		UnitID: unitID,
		Date:   date,
		Status: status,
	}
}

func TestGetEmptyIndexReturnsAvailable(t *testing.T) {
	idx := New()

	assert.Equal(t, domain.StatusAvailable, idx.Get(1, "2026-03-15"))

	_, ok := idx.Record(1, "2026-03-15")
	assert.False(t, ok)
}

func TestLoadAndGet(t *testing.T) {
	idx := New()
	idx.Load([]int64{1, 2}, []*domain.AvailabilityRecord{
		rec(1, "2026-03-16", domain.StatusBooked),
		rec(1, "2026-03-15", domain.StatusMaintenance),
		rec(2, "2026-03-15", domain.StatusReserved),
	})

	assert.Equal(t, domain.StatusMaintenance, idx.Get(1, "2026-03-15"))
	assert.Equal(t, domain.StatusBooked, idx.Get(1, "2026-03-16"))
	assert.Equal(t, domain.StatusReserved, idx.Get(2, "2026-03-15"))

	// ячейки без записи и юниты без загруженных записей — available
	assert.Equal(t, domain.StatusAvailable, idx.Get(1, "2026-03-17"))
	assert.Equal(t, domain.StatusAvailable, idx.Get(2, "2026-03-16"))
}

func TestLoadSortsRecordsByDate(t *testing.T) {
	idx := New()
	idx.Load([]int64{1}, []*domain.AvailabilityRecord{
		rec(1, "2026-03-20", domain.StatusBooked),
		rec(1, "2026-03-10", domain.StatusBooked),
		rec(1, "2026-03-15", domain.StatusBooked),
	})

	records := idx.RecordsFor(1)
	require.Len(t, records, 3)
	assert.Equal(t, types.DateString("2026-03-10"), records[0].Date)
	assert.Equal(t, types.DateString("2026-03-15"), records[1].Date)
	assert.Equal(t, types.DateString("2026-03-20"), records[2].Date)
}

func TestLoadReplacesPreviousState(t *testing.T) {
	idx := New()
	idx.Load([]int64{1}, []*domain.AvailabilityRecord{
		rec(1, "2026-03-15", domain.StatusBooked),
	})

	// повторный Load без записей сбрасывает группу юнита
	idx.Load([]int64{1}, nil)

	assert.Equal(t, domain.StatusAvailable, idx.Get(1, "2026-03-15"))
	assert.Empty(t, idx.RecordsFor(1))
}

func TestLoadDoesNotTouchOtherUnits(t *testing.T) {
	idx := New()
	idx.Load([]int64{1}, []*domain.AvailabilityRecord{
		rec(1, "2026-03-15", domain.StatusBooked),
	})
	idx.Load([]int64{2}, []*domain.AvailabilityRecord{
		rec(2, "2026-03-15", domain.StatusMaintenance),
	})

	assert.Equal(t, domain.StatusBooked, idx.Get(1, "2026-03-15"))
	assert.Equal(t, domain.StatusMaintenance, idx.Get(2, "2026-03-15"))
}

func TestApplyInsertsKeepingOrder(t *testing.T) {
	idx := New()
	idx.Apply(rec(1, "2026-03-20", domain.StatusBooked))
	idx.Apply(rec(1, "2026-03-10", domain.StatusBooked))
	idx.Apply(rec(1, "2026-03-15", domain.StatusMaintenance))

	records := idx.RecordsFor(1)
	require.Len(t, records, 3)
	assert.Equal(t, types.DateString("2026-03-10"), records[0].Date)
	assert.Equal(t, types.DateString("2026-03-15"), records[1].Date)
	assert.Equal(t, types.DateString("2026-03-20"), records[2].Date)
}

func TestApplyReplacesExistingCell(t *testing.T) {
	idx := New()
	idx.Apply(rec(1, "2026-03-15", domain.StatusBooked))
	idx.Apply(rec(1, "2026-03-15", domain.StatusMaintenance))

	records := idx.RecordsFor(1)
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusMaintenance, records[0].Status)
}

func TestApplyStoresCopy(t *testing.T) {
	idx := New()
	record := rec(1, "2026-03-15", domain.StatusBooked)
	idx.Apply(record)

	// мутация исходной записи не должна просачиваться в кэш
	record.Status = domain.StatusOutOfService

	assert.Equal(t, domain.StatusBooked, idx.Get(1, "2026-03-15"))
}

func TestInvalidate(t *testing.T) {
	idx := New()
	idx.Apply(rec(1, "2026-03-15", domain.StatusBooked))
	idx.Apply(rec(1, "2026-03-16", domain.StatusBooked))

	idx.Invalidate(1, "2026-03-15")

	assert.Equal(t, domain.StatusAvailable, idx.Get(1, "2026-03-15"))
	assert.Equal(t, domain.StatusBooked, idx.Get(1, "2026-03-16"))

	// удаление отсутствующей ячейки — no-op
	idx.Invalidate(1, "2026-03-17")
	idx.Invalidate(99, "2026-03-15")
}

func TestRecordReturnsCopy(t *testing.T) {
	idx := New()
	notes := "плановый ремонт"
	idx.Apply(&domain.AvailabilityRecord{
		UnitID: 1,
		Date:   "2026-03-15",
		Status: domain.StatusMaintenance,
		Notes:  &notes,
	})

	got, ok := idx.Record(1, "2026-03-15")
	require.True(t, ok)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "плановый ремонт", *got.Notes)

	got.Status = domain.StatusAvailable
	assert.Equal(t, domain.StatusMaintenance, idx.Get(1, "2026-03-15"))
}
