package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var (
	// ErrInvalidDateString возвращается при некорректном формате даты
	ErrInvalidDateString = errors.New("types: invalid date string format, expected YYYY-MM-DD")
)

// DateString календарная дата в формате "YYYY-MM-DD" без компонента времени.
// Хранится и сравнивается как дата, независимо от часового пояса.
type DateString string

// NewDateStringFromString парсит строку "YYYY-MM-DD" в DateString
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	return DateString(t.Format(dateLayout)), nil
}

// NewDateStringFromTime отбрасывает компонент времени и возвращает DateString
func NewDateStringFromTime(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// String возвращает дату в формате "YYYY-MM-DD"
func (d DateString) String() string {
	return string(d)
}

// Time возвращает дату как time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return t, nil
}

// Validate проверяет, что значение является корректной календарной датой
func (d DateString) Validate() error {
	_, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// Before лексикографическое сравнение корректно для формата "YYYY-MM-DD"
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After возвращает true, если d позже other
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}

// Next возвращает следующий календарный день.
// Для некорректной даты возвращает пустое значение (вызывающий обязан
// провалидировать дату до итерации по диапазону).
func (d DateString) Next() DateString {
	t, err := d.Time()
	if err != nil {
		return ""
	}
	return NewDateStringFromTime(t.AddDate(0, 0, 1))
}

// Value реализует driver.Valuer для записи в БД
func (d DateString) Value() (driver.Value, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Поддерживает time.Time (колонка DATE) и строковые представления.
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDateStringFromTime(v)
		return nil
	case string:
		parsed, err := NewDateStringFromString(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := NewDateStringFromString(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidDateString, src)
	}
}

// DatesBetween возвращает все даты диапазона [from, to] включительно.
// Для from > to возвращает пустой слайс.
func DatesBetween(from, to DateString) []DateString {
	if from.After(to) {
		return []DateString{}
	}
	dates := make([]DateString, 0)
	for d := from; !d.After(to); d = d.Next() {
		if d == "" {
			break
		}
		dates = append(dates, d)
	}
	return dates
}
