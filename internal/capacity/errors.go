package capacity

import (
	"errors"
	"fmt"

	"github.com/staffable/backend/internal/models"
)

var (
	// ErrInvalidRange is returned when a date range ends before it starts.
	ErrInvalidRange = errors.New("startDate must be before or equal to endDate")

	// ErrInvalidPercentage is returned for percentages outside of [1, 100].
	ErrInvalidPercentage = errors.New("the percentage must be between 1 and 100")

	// ErrStorage wraps database failures. When it is returned from a write
	// path, the transaction has been rolled back and no partial state
	// survives.
	ErrStorage = errors.New("the storage backend failed")
)

// OverallocationError reports that an allocation would push the user over
// 100% on at least one day. It carries everything a caller needs to render
// the problem and remediation options: the conflicting days and ranked
// alternative users.
//
// It is a domain result, not a system failure. No storage mutation has
// happened when it is returned.
type OverallocationError struct {
	Conflicts   []ConflictDay `json:"conflicts"`
	Suggestions []Suggestion  `json:"suggestions"`
}

func (e *OverallocationError) Error() string {
	return fmt.Sprintf("the user is over their capacity on %d day(s) in the requested range", len(e.Conflicts))
}

// wrapStorage tags database failures with ErrStorage. Errors that the
// model layer already rewrote into user-facing ones pass through unchanged
// so that callers can keep mapping them to "not found" responses.
func wrapStorage(err error) error {
	if err == nil || errors.Is(err, ErrStorage) || errors.Is(err, models.ErrResourceNotFound) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrStorage, err)
}
