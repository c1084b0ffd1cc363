package upsert_availability

// UpsertAvailabilityRequest HTTP request model
type UpsertAvailabilityRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}
