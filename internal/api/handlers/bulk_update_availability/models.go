package bulk_update_availability

import (
	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/internal/service/availability/models"
	bulkUpdate "github.com/m04kA/REM-AvailabilityService/internal/usecase/bulk_update"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// BulkUpdateRequest HTTP request model
type BulkUpdateRequest struct {
	UnitIDs []int64  `json:"unitIds"`
	Dates   []string `json:"dates"` // ["2026-03-15", ...]
	Status  string   `json:"status"`
	Notes   *string  `json:"notes,omitempty"`
}

// BulkUpdateResponse HTTP response model.
// UpdatedCells всегда равно произведению units × dates: частичный успех
// у атомарной операции невозможен.
type BulkUpdateResponse struct {
	UpdatedCells int                      `json:"updatedCells"`
	Units        int                      `json:"units"`
	Dates        int                      `json:"dates"`
	Records      []*models.RecordResponse `json:"records"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Даты прокидываются как есть — их валидирует use case.
func (r *BulkUpdateRequest) ToUseCaseRequest(userID int64) *bulkUpdate.Request {
	dates := make([]types.DateString, 0, len(r.Dates))
	for _, date := range r.Dates {
		dates = append(dates, types.DateString(date))
	}

	return &bulkUpdate.Request{
		UnitIDs:   r.UnitIDs,
		Dates:     dates,
		Status:    domain.AvailabilityStatus(r.Status),
		Notes:     r.Notes,
		UpdatedBy: userID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bulkUpdate.Response) *BulkUpdateResponse {
	return &BulkUpdateResponse{
		UpdatedCells: len(resp.Records),
		Units:        resp.Units,
		Dates:        resp.Dates,
		Records:      models.FromDomainRecordList(resp.Records),
	}
}
