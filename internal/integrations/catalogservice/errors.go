package catalogservice

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект недвижимости не найден в каталоге
	ErrPropertyNotFound = errors.New("property not found in catalog")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
