package models

import (
	"github.com/google/uuid"
	"github.com/staffable/backend/internal/types"
)

// DailyCapacityEntry is the accounting grain of the capacity ledger:
// the running total of allocated percentage for one user on one day.
//
// The value always equals the sum of AllocationPercentage over all active
// allocations covering the day. It is derived data, but it is authoritative
// storage, range reads never recompute it from the allocations table.
//
// Entries are decremented back to zero when allocations are deleted, never
// removed, so historical range scans stay contiguous.
type DailyCapacityEntry struct {
	Timestamps
	OrganizationID      uuid.UUID  `gorm:"primaryKey"`
	UserID              uuid.UUID  `gorm:"primaryKey"`
	CapacityDate        types.Date `gorm:"primaryKey"`
	AllocatedPercentage int
}

// Overallocated reports whether the day is over the user's full capacity.
// The ledger stores such values without complaint, refusing to create them
// is the coordinator's job.
func (e DailyCapacityEntry) Overallocated() bool {
	return e.AllocatedPercentage > 100
}
