package capacity

import (
	"context"

	"github.com/google/uuid"
	"github.com/staffable/backend/internal/models"
	"github.com/staffable/backend/internal/types"
)

// ConflictDay is one day on which a proposed allocation would exceed the
// user's capacity.
type ConflictDay struct {
	Date              types.Date `json:"date" example:"2025-01-03"`       // The conflicting day
	CurrentAllocation int        `json:"currentAllocation" example:"60"`  // What is already allocated on that day
	WouldBeAllocation int        `json:"wouldBeAllocation" example:"110"` // What the day would be at with the proposed allocation
}

// ConflictDetector checks a proposed allocation against the ledger.
// It never mutates anything.
type ConflictDetector struct {
	ledger *Ledger
}

// NewConflictDetector returns a detector reading from the given ledger.
func NewConflictDetector(ledger *Ledger) *ConflictDetector {
	return &ConflictDetector{ledger: ledger}
}

// CheckConflicts returns every day in the inclusive range [from, until] on
// which the user's allocation plus proposedPercentage would exceed 100, in
// calendar order. An empty result means the allocation is safe to create.
//
// Input validation happens before any ledger read.
func (d *ConflictDetector) CheckConflicts(ctx context.Context, organizationID, userID uuid.UUID, from, until types.Date, proposedPercentage uint) ([]ConflictDay, error) {
	if err := validateRange(from, until); err != nil {
		return nil, err
	}

	if err := validatePercentage(proposedPercentage); err != nil {
		return nil, err
	}

	entries, err := d.ledger.GetRange(ctx, organizationID, userID, from, until)
	if err != nil {
		return nil, err
	}

	return conflictDays(entries, from, until, proposedPercentage), nil
}

// conflictDays compares a ledger snapshot against a proposed percentage.
// Days absent from the snapshot count as 0.
func conflictDays(entries []models.DailyCapacityEntry, from, until types.Date, proposedPercentage uint) []ConflictDay {
	allocated := make(map[string]int, len(entries))
	for _, entry := range entries {
		allocated[entry.CapacityDate.String()] = entry.AllocatedPercentage
	}

	var conflicts []ConflictDay
	for _, day := range types.DaysBetween(from, until) {
		current := allocated[day.String()]
		wouldBe := current + int(proposedPercentage)

		if wouldBe > 100 {
			conflicts = append(conflicts, ConflictDay{
				Date:              day,
				CurrentAllocation: current,
				WouldBeAllocation: wouldBe,
			})
		}
	}

	return conflicts
}

func validateRange(from, until types.Date) error {
	if from.After(until) {
		return ErrInvalidRange
	}

	return nil
}

func validatePercentage(percentage uint) error {
	if percentage < 1 || percentage > 100 {
		return ErrInvalidPercentage
	}

	return nil
}
