package bulk_update

import "errors"

var (
	// ErrNoUnits возвращается при пустом наборе юнитов.
	// Пустой bulk-запрос отклоняется до обращения к хранилищу: молчаливый
	// no-op при массовом редактировании в админке опасен для корректности.
	ErrNoUnits = errors.New("bulk_update: unit set is empty")

	// ErrNoDates возвращается при пустом наборе дат
	ErrNoDates = errors.New("bulk_update: date set is empty")

	// ErrInvalidStatus возвращается при статусе вне допустимого перечня
	ErrInvalidStatus = errors.New("bulk_update: invalid availability status")

	// ErrInvalidDate возвращается при некорректной дате в наборе
	ErrInvalidDate = errors.New("bulk_update: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bulk_update: invalid input data")

	// ErrTooManyCells возвращается, когда произведение units × dates превышает лимит
	ErrTooManyCells = errors.New("bulk_update: cartesian product exceeds limit")

	// ErrBulkWrite возвращается при ошибке пакетной записи.
	// Операция целиком не применена, пакет безопасно повторить.
	ErrBulkWrite = errors.New("bulk_update: batch write failed, nothing applied")

	// ErrStorageUnavailable возвращается при недоступности хранилища;
	// пакет безопасно повторить с backoff
	ErrStorageUnavailable = errors.New("bulk_update: storage unavailable, nothing applied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("bulk_update: internal error")
)
