package get_calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/availability"
	"github.com/m04kA/REM-AvailabilityService/internal/index"
	catalogClient "github.com/m04kA/REM-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/REM-AvailabilityService/pkg/ptr"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

type fakeRepo struct {
	records []*domain.AvailabilityRecord
	err     error

	lastFilter domain.AvailabilityRangeFilter
}

func (f *fakeRepo) QueryRange(_ context.Context, filter domain.AvailabilityRangeFilter) ([]*domain.AvailabilityRecord, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type fakeCatalog struct {
	units []int64
	err   error
}

func (f *fakeCatalog) ListUnits(context.Context, *int64) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.units, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func rec(unitID int64, date types.DateString, status domain.AvailabilityStatus, notes *string) *domain.AvailabilityRecord {
	return &domain.AvailabilityRecord{
		UnitID: unitID,
		Date:   date,
		Status: status,
		Notes:  notes,
	}
}

func newTestUseCase(repo *fakeRepo, catalog *fakeCatalog) *UseCase {
	return NewUseCase(repo, catalog, index.New(), noopLogger{})
}

func TestExecuteBuildsGridWithDefaultFill(t *testing.T) {
	notes := "мойка окон"
	repo := &fakeRepo{records: []*domain.AvailabilityRecord{
		rec(1, "2026-03-16", domain.StatusBooked, nil),
		rec(2, "2026-03-15", domain.StatusMaintenance, &notes),
	}}
	uc := newTestUseCase(repo, &fakeCatalog{})

	resp, err := uc.Execute(context.Background(), &Request{
		UnitIDs: []int64{1, 2},
		From:    "2026-03-15",
		To:      "2026-03-17",
	})
	require.NoError(t, err)

	require.Len(t, resp.Units, 2)
	require.Len(t, resp.Units[0].Days, 3)
	require.Len(t, resp.Units[1].Days, 3)

	// порядок юнитов совпадает с порядком запроса
	assert.Equal(t, int64(1), resp.Units[0].UnitID)
	assert.Equal(t, int64(2), resp.Units[1].UnitID)

	unit1 := resp.Units[0].Days
	assert.Equal(t, "available", unit1[0].Status)
	assert.False(t, unit1[0].Explicit)
	assert.Equal(t, "booked", unit1[1].Status)
	assert.True(t, unit1[1].Explicit)
	assert.Equal(t, "available", unit1[2].Status)

	unit2 := resp.Units[1].Days
	assert.Equal(t, "maintenance", unit2[0].Status)
	assert.True(t, unit2[0].Explicit)
	require.NotNil(t, unit2[0].Notes)
	assert.Equal(t, "мойка окон", *unit2[0].Notes)
	assert.Equal(t, "available", unit2[1].Status)
	assert.Equal(t, "available", unit2[2].Status)
}

func TestExecuteSingleRangeQuery(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), &Request{
		UnitIDs: []int64{3, 1, 3, 2},
		From:    "2026-03-15",
		To:      "2026-03-20",
	})
	require.NoError(t, err)

	// юниты дедуплицированы в порядке первого вхождения, окно передано как есть
	assert.Equal(t, []int64{3, 1, 2}, repo.lastFilter.UnitIDs)
	assert.Equal(t, types.DateString("2026-03-15"), repo.lastFilter.From)
	assert.Equal(t, types.DateString("2026-03-20"), repo.lastFilter.To)
}

func TestExecuteResolvesUnitsFromCatalog(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{units: []int64{10, 11}})

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: ptr.Ptr(int64(7)),
		From:       "2026-03-15",
		To:         "2026-03-15",
	})
	require.NoError(t, err)

	require.Len(t, resp.Units, 2)
	assert.Equal(t, int64(10), resp.Units[0].UnitID)
	assert.Equal(t, int64(11), resp.Units[1].UnitID)
}

func TestExecutePropertyNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{err: catalogClient.ErrPropertyNotFound})

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID: ptr.Ptr(int64(404)),
		From:       "2026-03-15",
		To:         "2026-03-15",
	})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestExecuteEmptyUniverse(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{units: []int64{}})

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID: ptr.Ptr(int64(7)),
		From:       "2026-03-15",
		To:         "2026-03-15",
	})
	assert.ErrorIs(t, err, ErrNoUnits)
}

func TestExecuteReversedRange(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), &Request{
		UnitIDs: []int64{1},
		From:    "2026-03-16",
		To:      "2026-03-15",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecuteWindowTooLarge(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), &Request{
		UnitIDs: []int64{1},
		From:    "2026-01-01",
		To:      "2026-06-01",
	})
	assert.ErrorIs(t, err, ErrWindowTooLarge)
}

func TestExecuteInvalidDates(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), &Request{
		UnitIDs: []int64{1},
		From:    "garbage",
		To:      "2026-03-15",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecuteStorageUnavailable(t *testing.T) {
	repo := &fakeRepo{err: availabilityRepo.ErrStorageUnavailable}
	uc := newTestUseCase(repo, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), &Request{
		UnitIDs: []int64{1},
		From:    "2026-03-15",
		To:      "2026-03-15",
	})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
