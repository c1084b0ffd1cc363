package availability

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись доступности не найдена
	ErrRecordNotFound = errors.New("availability.repository: record not found")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("availability.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrConstraint возвращается, когда БД отклонила запись из-за нарушения ограничения
	ErrConstraint = errors.New("availability.repository: constraint violation")

	// ErrStorageUnavailable возвращается при недоступности БД (ошибки соединения).
	// В отличие от ошибок валидации, такой запрос безопасно повторить с backoff.
	ErrStorageUnavailable = errors.New("availability.repository: storage unavailable")
)
