package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInvalidDateRange возвращается, когда from позже to или даты некорректны
	ErrInvalidDateRange = errors.New("get_calendar: invalid date range")

	// ErrWindowTooLarge возвращается, когда запрошенное окно превышает лимит
	ErrWindowTooLarge = errors.New("get_calendar: date window exceeds limit")

	// ErrPropertyNotFound возвращается, когда объект не найден в каталоге
	ErrPropertyNotFound = errors.New("get_calendar: property not found")

	// ErrNoUnits возвращается, когда universe юнитов пуст
	ErrNoUnits = errors.New("get_calendar: no units to render")

	// ErrStorageUnavailable возвращается при недоступности хранилища
	ErrStorageUnavailable = errors.New("get_calendar: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
