package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с каталогом объектов недвижимости.
// Каталог владеет составом юнитов; движок доступности использует его
// только для определения universe (фильтрация по объекту), без проверки
// ссылочной целостности при записи.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListUnits получает идентификаторы юнитов, опционально отфильтрованные
// по объекту недвижимости. Для propertyID == nil возвращает все юниты.
func (c *Client) ListUnits(ctx context.Context, propertyID *int64) ([]int64, error) {
	url := fmt.Sprintf("%s/internal/units", c.baseURL)
	if propertyID != nil {
		url = fmt.Sprintf("%s/internal/units?propertyId=%d", c.baseURL, *propertyID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid property ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrPropertyNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var payload listUnitsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	unitIDs := make([]int64, 0, len(payload.Units))
	for _, unit := range payload.Units {
		unitIDs = append(unitIDs, unit.ID)
	}

	c.log.Info("ListUnits: fetched %d units (property=%v)", len(unitIDs), propertyID)
	return unitIDs, nil
}
