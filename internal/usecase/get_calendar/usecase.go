package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/availability"
	catalogClient "github.com/m04kA/REM-AvailabilityService/internal/integrations/catalogservice"
)

// UseCase use case получения календарной сетки доступности.
// Одним range-запросом к репозиторию наполняет кэш и отвечает сеткой
// "юнит × дата" — без запроса к БД на каждую ячейку.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	catalogClient    CatalogServiceClient
	rangeIndex       RangeIndex
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	catalogClient CatalogServiceClient,
	rangeIndex RangeIndex,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		catalogClient:    catalogClient,
		rangeIndex:       rangeIndex,
		logger:           logger,
	}
}

// Execute выполняет use case получения календарной сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: property=%v, units=%d, from=%s, to=%s",
		req.PropertyID, len(req.UnitIDs), req.From, req.To)

	// 1. Валидация входных данных
	dates, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим universe юнитов: явный список или каталог по объекту
	units, err := uc.resolveUnits(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Один range-запрос на всю сетку
	records, err := uc.availabilityRepo.QueryRange(ctx, domain.AvailabilityRangeFilter{
		UnitIDs: units,
		From:    req.From,
		To:      req.To,
	})
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrStorageUnavailable) {
			uc.logger.Error("GetCalendar: storage unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		uc.logger.Error("GetCalendar: failed to query range: %v", err)
		return nil, fmt.Errorf("%w: failed to query range: %v", ErrInternal, err)
	}

	// 4. Перестраиваем кэш загруженного окна
	uc.rangeIndex.Load(units, records)

	// 5. Собираем сетку из кэша; отсутствующие ячейки заполняет
	// правило default-available внутри Index.Get
	unitCalendars := make([]UnitCalendar, 0, len(units))
	for _, unitID := range units {
		days := make([]DayCell, 0, len(dates))
		for _, date := range dates {
			cell := DayCell{
				Date:   date,
				Status: string(domain.StatusAvailable),
			}
			if record, ok := uc.rangeIndex.Record(unitID, date); ok {
				cell.Status = string(record.Status)
				cell.Notes = record.Notes
				cell.Explicit = true
			}
			days = append(days, cell)
		}
		unitCalendars = append(unitCalendars, UnitCalendar{UnitID: unitID, Days: days})
	}

	uc.logger.Info("GetCalendar: built grid of %d units × %d dates (%d explicit records)",
		len(units), len(dates), len(records))

	return &Response{
		From:  req.From,
		To:    req.To,
		Units: unitCalendars,
	}, nil
}

// resolveUnits возвращает дедуплицированный universe юнитов
func (uc *UseCase) resolveUnits(ctx context.Context, req *Request) ([]int64, error) {
	if len(req.UnitIDs) > 0 {
		return dedupeUnits(req.UnitIDs), nil
	}

	units, err := uc.catalogClient.ListUnits(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrPropertyNotFound) {
			uc.logger.Warn("GetCalendar: property id=%v not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetCalendar: failed to list units for property=%v: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to list units: %v", ErrInternal, err)
	}

	if len(units) == 0 {
		uc.logger.Warn("GetCalendar: property id=%v has no units", req.PropertyID)
		return nil, ErrNoUnits
	}

	return dedupeUnits(units), nil
}
