package get_summary

import (
	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

// reconcileCounts сводит явные записи на дату с правилом default-available.
//
// Пусть withException — число юнитов universe, имеющих явную запись на дату
// (статус любой). Тогда счётчик available сеется значением
// |universe| − withException и дополняется явными записями со статусом
// available: юниты без записи считаются доступными, юниты с блокирующей
// записью — нет, а юнит с явной записью available учитывается ровно один
// раз, без двойного счёта с веткой "нет записи".
//
// На входе ожидается не более одной записи на юнит (инвариант пары
// (unit_id, date)); записи юнитов вне universe игнорируются.
func reconcileCounts(universe []int64, records []*domain.AvailabilityRecord) map[domain.AvailabilityStatus]int {
	inUniverse := make(map[int64]struct{}, len(universe))
	for _, unitID := range universe {
		inUniverse[unitID] = struct{}{}
	}

	counts := make(map[domain.AvailabilityStatus]int, len(domain.AllStatuses))
	withException := 0

	for _, record := range records {
		if _, ok := inUniverse[record.UnitID]; !ok {
			continue
		}
		withException++
		counts[record.Status]++
	}

	counts[domain.StatusAvailable] += len(universe) - withException

	return counts
}
