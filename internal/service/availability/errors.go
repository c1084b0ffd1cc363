package availability

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись-исключение не найдена
	ErrRecordNotFound = errors.New("availability record not found")

	// ErrInvalidStatus возвращается при статусе вне допустимого перечня
	ErrInvalidStatus = errors.New("invalid availability status")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStorageUnavailable возвращается при недоступности хранилища;
	// запрос безопасно повторить с backoff
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
