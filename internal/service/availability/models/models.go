package models

import (
	"errors"
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid availability status")
)

// Request модели

// UpsertCellRequest запрос на установку статуса одной ячейки (unit, date)
type UpsertCellRequest struct {
	UnitID    int64   `json:"unitId"`
	Date      string  `json:"date"` // "2026-03-15"
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	UpdatedBy int64   `json:"updatedBy"`
}

// ClearCellRequest запрос на возврат ячейки к дефолтному available
type ClearCellRequest struct {
	UnitID    int64  `json:"unitId"`
	Date      string `json:"date"`
	UpdatedBy int64  `json:"updatedBy"`
}

// Response модели

// RecordResponse запись доступности в ответе API
type RecordResponse struct {
	ID        int64   `json:"id"`
	UnitID    int64   `json:"unitId"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	UpdatedBy int64   `json:"updatedBy"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToDomainStatus конвертирует строку статуса в domain.AvailabilityStatus
func ToDomainStatus(s string) (domain.AvailabilityStatus, error) {
	status := domain.AvailabilityStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainRecord конвертирует доменную запись в ответ API
func FromDomainRecord(record *domain.AvailabilityRecord) *RecordResponse {
	return &RecordResponse{
		ID:        record.ID,
		UnitID:    record.UnitID,
		Date:      record.Date.String(),
		Status:    string(record.Status),
		Notes:     record.Notes,
		UpdatedBy: record.UpdatedBy,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
		UpdatedAt: record.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainRecordList конвертирует список доменных записей в ответ API
func FromDomainRecordList(records []*domain.AvailabilityRecord) []*RecordResponse {
	out := make([]*RecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, FromDomainRecord(record))
	}
	return out
}
