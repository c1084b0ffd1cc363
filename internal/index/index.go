package index

import (
	"sort"
	"sync"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// Index in-memory кэш записей доступности, сгруппированных по юниту,
// для отрисовки календарной сетки без запроса к БД на каждую ячейку.
//
// Кэш является производным состоянием и никогда не служит источником
// истины: он полностью перестраивается из результатов QueryRange (Load)
// и точечно дополняется после успешных записей (Apply). Хранит копии
// записей, поэтому мутации доменных объектов вызывающей стороной на кэш
// не влияют. Безопасен для конкурентного использования.
type Index struct {
	mu sync.RWMutex

	// byUnit хранит записи каждого юнита в порядке возрастания даты
	byUnit map[int64][]domain.AvailabilityRecord
}

// New создает пустой индекс
func New() *Index {
	return &Index{
		byUnit: make(map[int64][]domain.AvailabilityRecord),
	}
}

// Load полностью перестраивает кэш для перечисленных юнитов из результатов
// range-запроса. Прежние записи этих юнитов отбрасываются целиком, включая
// юниты, для которых записей не пришло — их пустая группа и означает
// "всё по умолчанию available". Записи других юнитов не затрагиваются.
func (i *Index) Load(unitIDs []int64, records []*domain.AvailabilityRecord) {
	grouped := make(map[int64][]domain.AvailabilityRecord, len(unitIDs))
	for _, unitID := range unitIDs {
		grouped[unitID] = nil
	}
	for _, record := range records {
		grouped[record.UnitID] = append(grouped[record.UnitID], *record)
	}
	for _, unitRecords := range grouped {
		sortByDate(unitRecords)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	for unitID, unitRecords := range grouped {
		i.byUnit[unitID] = unitRecords
	}
}

// Get возвращает статус ячейки (unit, date). Для отсутствующей записи
// возвращает StatusAvailable — правило default-available применяется
// здесь, на границе чтения, чтобы верхним слоям не приходилось
// обрабатывать "нет записи" отдельно.
func (i *Index) Get(unitID int64, date types.DateString) domain.AvailabilityStatus {
	i.mu.RLock()
	defer i.mu.RUnlock()

	records := i.byUnit[unitID]
	pos := searchDate(records, date)
	if pos < len(records) && records[pos].Date == date {
		return records[pos].Status
	}
	return domain.StatusAvailable
}

// Record возвращает копию закэшированной записи ячейки, если она есть.
// Нужен читателям, которым помимо статуса требуются notes и поля аудита.
func (i *Index) Record(unitID int64, date types.DateString) (*domain.AvailabilityRecord, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	records := i.byUnit[unitID]
	pos := searchDate(records, date)
	if pos < len(records) && records[pos].Date == date {
		record := records[pos]
		return &record, true
	}
	return nil, false
}

// Apply вставляет или замещает одну запись, сохраняя порядок дат внутри
// группы юнита. Вызывается после успешной записи в репозиторий, чтобы
// следующий Get отражал изменение без повторного Load.
func (i *Index) Apply(record *domain.AvailabilityRecord) {
	i.mu.Lock()
	defer i.mu.Unlock()

	records := i.byUnit[record.UnitID]
	pos := searchDate(records, record.Date)

	if pos < len(records) && records[pos].Date == record.Date {
		records[pos] = *record
		return
	}

	records = append(records, domain.AvailabilityRecord{})
	copy(records[pos+1:], records[pos:])
	records[pos] = *record
	i.byUnit[record.UnitID] = records
}

// Invalidate удаляет одну закэшированную ячейку. Используется после
// удаления записи-исключения: отсутствие ячейки означает available.
func (i *Index) Invalidate(unitID int64, date types.DateString) {
	i.mu.Lock()
	defer i.mu.Unlock()

	records := i.byUnit[unitID]
	pos := searchDate(records, date)
	if pos < len(records) && records[pos].Date == date {
		i.byUnit[unitID] = append(records[:pos], records[pos+1:]...)
	}
}

// RecordsFor возвращает копии всех закэшированных записей юнита
// в порядке возрастания даты
func (i *Index) RecordsFor(unitID int64) []domain.AvailabilityRecord {
	i.mu.RLock()
	defer i.mu.RUnlock()

	records := i.byUnit[unitID]
	out := make([]domain.AvailabilityRecord, len(records))
	copy(out, records)
	return out
}

// searchDate возвращает позицию первой записи с датой >= date
func searchDate(records []domain.AvailabilityRecord, date types.DateString) int {
	return sort.Search(len(records), func(n int) bool {
		return !records[n].Date.Before(date)
	})
}

func sortByDate(records []domain.AvailabilityRecord) {
	sort.Slice(records, func(a, b int) bool {
		return records[a].Date.Before(records[b].Date)
	})
}
