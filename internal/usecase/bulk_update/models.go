package bulk_update

import (
	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// Request модель запроса на массовое изменение статуса.
// Описывает доминирующий сценарий массового редактирования: один статус
// для юнитов U1..Un на датах D1..Dm.
type Request struct {
	UnitIDs   []int64            // Набор юнитов (дубликаты схлопываются)
	Dates     []types.DateString // Набор дат (дубликаты схлопываются)
	Status    domain.AvailabilityStatus
	Notes     *string // Заметки, применяются ко всем ячейкам (опционально)
	UpdatedBy int64   // ID пользователя, выполняющего редактирование
}

// Response модель ответа с применёнными записями
type Response struct {
	Records []*domain.AvailabilityRecord // Ровно units × dates записей
	Units   int                          // Число юнитов после дедупликации
	Dates   int                          // Число дат после дедупликации
}
