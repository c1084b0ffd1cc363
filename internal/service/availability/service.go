package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/availability"
	"github.com/m04kA/REM-AvailabilityService/internal/service/availability/models"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// Service сервис точечных операций над ячейками доступности.
// Пакетные операции выполняет usecase bulk_update, операции чтения —
// usecases get_calendar и get_summary.
type Service struct {
	availabilityRepo AvailabilityRepository
	rangeIndex       RangeIndex
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	rangeIndex RangeIndex,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		rangeIndex:       rangeIndex,
		logger:           logger,
	}
}

// UpsertCell устанавливает статус одной ячейки (unit, date).
// Запись в существующую пару замещает её (last-write-wins). Явная запись
// статуса available сохраняет строку — остаётся след аудита о том, что
// ячейку явно очистили; возврат к sparse-состоянию делает ClearCell.
// После успешной записи кэш обновляется точечно, без полного Load.
func (s *Service) UpsertCell(ctx context.Context, req *models.UpsertCellRequest) (*models.RecordResponse, error) {
	s.logger.Info("UpsertCell: unit=%d, date=%s, status=%s, user=%d", req.UnitID, req.Date, req.Status, req.UpdatedBy)

	record, err := s.toDomainRecord(req)
	if err != nil {
		s.logger.Warn("UpsertCell: validation failed for unit=%d, date=%s: %v", req.UnitID, req.Date, err)
		return nil, err
	}

	created, err := s.availabilityRepo.Upsert(ctx, record)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrStorageUnavailable) {
			s.logger.Error("UpsertCell: storage unavailable for unit=%d, date=%s: %v", req.UnitID, req.Date, err)
			return nil, fmt.Errorf("%w: UpsertCell: %v", ErrStorageUnavailable, err)
		}
		s.logger.Error("UpsertCell: repository error for unit=%d, date=%s: %v", req.UnitID, req.Date, err)
		return nil, fmt.Errorf("%w: UpsertCell - repository error: %v", ErrInternal, err)
	}

	s.rangeIndex.Apply(created)

	s.logger.Info("UpsertCell: successfully set unit=%d, date=%s to status=%s", req.UnitID, req.Date, req.Status)
	return models.FromDomainRecord(created), nil
}

// ClearCell удаляет запись-исключение, возвращая ячейку к дефолтному
// available и к true sparse-состоянию хранилища
func (s *Service) ClearCell(ctx context.Context, req *models.ClearCellRequest) error {
	s.logger.Info("ClearCell: unit=%d, date=%s, user=%d", req.UnitID, req.Date, req.UpdatedBy)

	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		s.logger.Warn("ClearCell: invalid date %q for unit=%d", req.Date, req.UnitID)
		return fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	if req.UnitID <= 0 {
		s.logger.Warn("ClearCell: invalid unit id %d", req.UnitID)
		return fmt.Errorf("%w: unitID must be positive", ErrInvalidInput)
	}

	if err := s.availabilityRepo.Delete(ctx, req.UnitID, date.String()); err != nil {
		if errors.Is(err, availabilityRepo.ErrRecordNotFound) {
			s.logger.Warn("ClearCell: no record for unit=%d, date=%s", req.UnitID, req.Date)
			return ErrRecordNotFound
		}
		if errors.Is(err, availabilityRepo.ErrStorageUnavailable) {
			s.logger.Error("ClearCell: storage unavailable for unit=%d, date=%s: %v", req.UnitID, req.Date, err)
			return fmt.Errorf("%w: ClearCell: %v", ErrStorageUnavailable, err)
		}
		s.logger.Error("ClearCell: repository error for unit=%d, date=%s: %v", req.UnitID, req.Date, err)
		return fmt.Errorf("%w: ClearCell - repository error: %v", ErrInternal, err)
	}

	s.rangeIndex.Invalidate(req.UnitID, date)

	s.logger.Info("ClearCell: successfully cleared unit=%d, date=%s", req.UnitID, req.Date)
	return nil
}

// toDomainRecord валидирует запрос и собирает доменную запись
func (s *Service) toDomainRecord(req *models.UpsertCellRequest) (*domain.AvailabilityRecord, error) {
	if req.UnitID <= 0 {
		return nil, fmt.Errorf("%w: unitID must be positive", ErrInvalidInput)
	}

	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return &domain.AvailabilityRecord{
		UnitID:    req.UnitID,
		Date:      date,
		Status:    status,
		Notes:     req.Notes,
		UpdatedBy: req.UpdatedBy,
	}, nil
}
