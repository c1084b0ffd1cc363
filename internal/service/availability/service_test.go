package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/availability"
	"github.com/m04kA/REM-AvailabilityService/internal/service/availability/models"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

type fakeRepo struct {
	upsertErr error
	deleteErr error

	upserted []*domain.AvailabilityRecord
	deleted  [][2]interface{}
}

func (f *fakeRepo) Upsert(_ context.Context, record *domain.AvailabilityRecord) (*domain.AvailabilityRecord, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	created := *record
	created.ID = 101
	created.CreatedAt = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.upserted = append(f.upserted, &created)
	return &created, nil
}

func (f *fakeRepo) Delete(_ context.Context, unitID int64, date string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, [2]interface{}{unitID, date})
	return nil
}

type fakeIndex struct {
	applied     []*domain.AvailabilityRecord
	invalidated []types.DateString
}

func (f *fakeIndex) Apply(record *domain.AvailabilityRecord) {
	f.applied = append(f.applied, record)
}

func (f *fakeIndex) Invalidate(_ int64, date types.DateString) {
	f.invalidated = append(f.invalidated, date)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestUpsertCell(t *testing.T) {
	repo := &fakeRepo{}
	idx := &fakeIndex{}
	svc := NewService(repo, idx, noopLogger{})

	resp, err := svc.UpsertCell(context.Background(), &models.UpsertCellRequest{
		UnitID:    1,
		Date:      "2026-03-15",
		Status:    "booked",
		UpdatedBy: 42,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "2026-03-15", resp.Date)
	assert.Equal(t, "booked", resp.Status)
	assert.Equal(t, int64(42), resp.UpdatedBy)

	// кэш обновлён именно записью из репозитория
	require.Len(t, idx.applied, 1)
	assert.Equal(t, int64(101), idx.applied[0].ID)
}

func TestUpsertCellExplicitAvailablePersists(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeIndex{}, noopLogger{})

	// явный available проходит тем же путём записи, строка сохраняется
	resp, err := svc.UpsertCell(context.Background(), &models.UpsertCellRequest{
		UnitID:    1,
		Date:      "2026-03-15",
		Status:    "available",
		UpdatedBy: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, "available", resp.Status)
	assert.Len(t, repo.upserted, 1)
}

func TestUpsertCellValidation(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeIndex{}, noopLogger{})

	_, err := svc.UpsertCell(context.Background(), &models.UpsertCellRequest{
		UnitID: 0, Date: "2026-03-15", Status: "booked",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpsertCell(context.Background(), &models.UpsertCellRequest{
		UnitID: 1, Date: "15/03/2026", Status: "booked",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.UpsertCell(context.Background(), &models.UpsertCellRequest{
		UnitID: 1, Date: "2026-03-15", Status: "busy",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpsertCellStorageUnavailableLeavesIndexUntouched(t *testing.T) {
	repo := &fakeRepo{upsertErr: availabilityRepo.ErrStorageUnavailable}
	idx := &fakeIndex{}
	svc := NewService(repo, idx, noopLogger{})

	_, err := svc.UpsertCell(context.Background(), &models.UpsertCellRequest{
		UnitID: 1, Date: "2026-03-15", Status: "booked",
	})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Empty(t, idx.applied)
}

func TestClearCell(t *testing.T) {
	repo := &fakeRepo{}
	idx := &fakeIndex{}
	svc := NewService(repo, idx, noopLogger{})

	err := svc.ClearCell(context.Background(), &models.ClearCellRequest{
		UnitID: 1, Date: "2026-03-15", UpdatedBy: 42,
	})
	require.NoError(t, err)

	require.Len(t, repo.deleted, 1)
	assert.Equal(t, [2]interface{}{int64(1), "2026-03-15"}, repo.deleted[0])

	require.Len(t, idx.invalidated, 1)
	assert.Equal(t, types.DateString("2026-03-15"), idx.invalidated[0])
}

func TestClearCellNotFound(t *testing.T) {
	repo := &fakeRepo{deleteErr: availabilityRepo.ErrRecordNotFound}
	idx := &fakeIndex{}
	svc := NewService(repo, idx, noopLogger{})

	err := svc.ClearCell(context.Background(), &models.ClearCellRequest{
		UnitID: 1, Date: "2026-03-15",
	})
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Empty(t, idx.invalidated)
}

func TestClearCellInvalidDate(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeIndex{}, noopLogger{})

	err := svc.ClearCell(context.Background(), &models.ClearCellRequest{
		UnitID: 1, Date: "tomorrow",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
