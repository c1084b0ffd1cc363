package catalogservice

// Unit модель юнита из каталога объектов
type Unit struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"property_id"`
	Name       string `json:"name"`
	IsActive   bool   `json:"is_active"`
}

// listUnitsResponse модель ответа каталога на запрос списка юнитов
type listUnitsResponse struct {
	Units []Unit `json:"units"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
