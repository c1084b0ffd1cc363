package domain

import (
	"time"

	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// AvailabilityStatus represents the bookable state of a unit on a given date
type AvailabilityStatus string

const (
	StatusAvailable    AvailabilityStatus = "available"
	StatusBooked       AvailabilityStatus = "booked"
	StatusMaintenance  AvailabilityStatus = "maintenance"
	StatusOutOfService AvailabilityStatus = "out_of_service"
	StatusReserved     AvailabilityStatus = "reserved"
)

// AvailabilityRecord represents an explicit availability exception for a
// (unit, date) pair. The absence of a record for a pair is equivalent to
// StatusAvailable: only exceptions are persisted.
type AvailabilityRecord struct {
	ID        int64
	UnitID    int64
	Date      types.DateString
	Status    AvailabilityStatus
	Notes     *string
	UpdatedBy int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDefault returns true if the record carries the default status.
// Such records are observably equivalent to no record at all, but are kept
// as an audit trail of an explicit clear.
func (r *AvailabilityRecord) IsDefault() bool {
	return r.Status == StatusAvailable
}

// IsBlocking returns true if the record makes the unit non-bookable
func (r *AvailabilityRecord) IsBlocking() bool {
	return r.Status != StatusAvailable
}

// IsValid returns true if the status belongs to the closed enumeration
func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusMaintenance, StatusOutOfService, StatusReserved:
		return true
	}
	return false
}

// AvailabilityRangeFilter describes a repository range read: a set of units
// and an inclusive date window [From, To]
type AvailabilityRangeFilter struct {
	UnitIDs []int64
	From    types.DateString
	To      types.DateString
}
