package get_summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/availability"
	catalogClient "github.com/m04kA/REM-AvailabilityService/internal/integrations/catalogservice"
)

// UseCase use case сводки доступности на дату: сколько юнитов universe
// доступно и как юниты распределены по статусам. Юниты без явной записи
// учитываются как доступные (default-available).
type UseCase struct {
	availabilityRepo AvailabilityRepository
	catalogClient    CatalogServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		catalogClient:    catalogClient,
		logger:           logger,
	}
}

// Execute выполняет use case получения сводки на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSummary: property=%v, units=%d, date=%s", req.PropertyID, len(req.UnitIDs), req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSummary: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим universe юнитов
	universe, err := uc.resolveUniverse(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Читаем явные записи на дату (диапазон из одного дня, границы включительно)
	records, err := uc.availabilityRepo.QueryRange(ctx, domain.AvailabilityRangeFilter{
		UnitIDs: universe,
		From:    req.Date,
		To:      req.Date,
	})
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrStorageUnavailable) {
			uc.logger.Error("GetSummary: storage unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		uc.logger.Error("GetSummary: failed to query records: %v", err)
		return nil, fmt.Errorf("%w: failed to query records: %v", ErrInternal, err)
	}

	// 4. Сводим явные записи с правилом default-available
	counts := reconcileCounts(universe, records)

	countByStatus := make(map[string]int, len(counts))
	for status, count := range counts {
		countByStatus[string(status)] = count
	}

	uc.logger.Info("GetSummary: date=%s, universe=%d, available=%d (%d explicit records)",
		req.Date, len(universe), counts[domain.StatusAvailable], len(records))

	return &Response{
		Date:           req.Date,
		TotalUnits:     len(universe),
		AvailableCount: counts[domain.StatusAvailable],
		CountByStatus:  countByStatus,
	}, nil
}

// resolveUniverse возвращает дедуплицированный universe юнитов
func (uc *UseCase) resolveUniverse(ctx context.Context, req *Request) ([]int64, error) {
	if len(req.UnitIDs) > 0 {
		return dedupeUnits(req.UnitIDs), nil
	}

	units, err := uc.catalogClient.ListUnits(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrPropertyNotFound) {
			uc.logger.Warn("GetSummary: property id=%v not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetSummary: failed to list units for property=%v: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to list units: %v", ErrInternal, err)
	}

	if len(units) == 0 {
		uc.logger.Warn("GetSummary: property id=%v has no units", req.PropertyID)
		return nil, ErrNoUnits
	}

	return dedupeUnits(units), nil
}
