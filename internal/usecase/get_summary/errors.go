package get_summary

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_summary: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_summary: invalid date")

	// ErrPropertyNotFound возвращается, когда объект не найден в каталоге
	ErrPropertyNotFound = errors.New("get_summary: property not found")

	// ErrNoUnits возвращается, когда universe юнитов пуст.
	// Пустой universe — ошибка входных данных, а не нулевой результат.
	ErrNoUnits = errors.New("get_summary: unit universe is empty")

	// ErrStorageUnavailable возвращается при недоступности хранилища
	ErrStorageUnavailable = errors.New("get_summary: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_summary: internal error")
)
