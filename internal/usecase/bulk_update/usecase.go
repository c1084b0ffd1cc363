package bulk_update

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/availability"
)

// UseCase use case массового изменения статуса доступности.
// Разворачивает запрос "статус S для юнитов U1..Un на датах D1..Dm"
// в декартово произведение n×m точечных upsert-ов и применяет его
// как одну атомарную операцию.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	rangeIndex       RangeIndex
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	rangeIndex RangeIndex,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		rangeIndex:       rangeIndex,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет массовое изменение статуса.
// Пакет применяется в сериализуемой транзакции: конкурентный читатель
// никогда не увидит подмножество записей пакета. Частичный успех наружу
// не отдаётся — любая ошибка откатывает операцию целиком, и кэш при этом
// не мутируется. При успехе все применённые записи точечно вносятся в кэш,
// так что следующий Get отражает изменение без повторного Load.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BulkUpdate: units=%d, dates=%d, status=%s, user=%d",
		len(req.UnitIDs), len(req.Dates), req.Status, req.UpdatedBy)

	// 1. Валидация и дедупликация входных наборов
	units, dates, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("BulkUpdate: validation failed: %v", err)
		return nil, err
	}

	// 2. Разворачиваем декартово произведение units × dates
	batch := make([]*domain.AvailabilityRecord, 0, len(units)*len(dates))
	for _, unitID := range units {
		for _, date := range dates {
			batch = append(batch, &domain.AvailabilityRecord{
				UnitID:    unitID,
				Date:      date,
				Status:    req.Status,
				Notes:     req.Notes,
				UpdatedBy: req.UpdatedBy,
			})
		}
	}

	// 3. Применяем пакет в сериализуемой транзакции
	var applied []*domain.AvailabilityRecord
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		records, err := uc.availabilityRepo.UpsertBatch(txCtx, batch)
		if err != nil {
			return err
		}
		applied = records
		return nil
	})

	if err != nil {
		if errors.Is(err, availabilityRepo.ErrStorageUnavailable) {
			uc.logger.Error("BulkUpdate: storage unavailable, %d cells not applied: %v", len(batch), err)
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		uc.logger.Error("BulkUpdate: batch write failed, %d cells not applied: %v", len(batch), err)
		return nil, fmt.Errorf("%w: %v", ErrBulkWrite, err)
	}

	// 4. Обновляем кэш применёнными записями
	for _, record := range applied {
		uc.rangeIndex.Apply(record)
	}

	uc.logger.Info("BulkUpdate: successfully applied %d cells (units=%d, dates=%d, status=%s)",
		len(applied), len(units), len(dates), req.Status)

	return &Response{
		Records: applied,
		Units:   len(units),
		Dates:   len(dates),
	}, nil
}
