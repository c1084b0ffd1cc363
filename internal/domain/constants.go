package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength = 500

	// MaxCalendarWindowDays ограничение окна календаря одним кварталом
	MaxCalendarWindowDays = 92

	// MaxBulkCells предельный размер декартова произведения units × dates
	// в одном bulk-запросе
	MaxBulkCells = 20000

	// BulkChunkSize размер физического чанка при пакетной записи.
	// Чанки выполняются внутри одной транзакции, логическая атомарность
	// операции от чанкования не зависит.
	BulkChunkSize = 500
)

// AllStatuses перечень всех допустимых статусов доступности
var AllStatuses = []AvailabilityStatus{
	StatusAvailable,
	StatusBooked,
	StatusMaintenance,
	StatusOutOfService,
	StatusReserved,
}
