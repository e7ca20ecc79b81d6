package capacity

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffable/backend/internal/types"
)

// DefaultSuggestionLimit is the number of alternative users returned with
// a conflict when the caller does not ask for a specific amount.
const DefaultSuggestionLimit = 3

// Suggestion is an alternative user with spare capacity in the requested
// window. The average is over every day of the window, days without ledger
// entries count as 0.
type Suggestion struct {
	UserID           uuid.UUID       `json:"userId" example:"d27a46e9-5b54-42a9-bd49-8b9cab27bafb"` // The suggested user
	AverageAllocated decimal.Decimal `json:"averageAllocatedPercentage" example:"12.5"`             // Their average allocation over the window
}

// SuggestionRanker recommends alternative users when an allocation
// conflicts. It is purely advisory and never blocks or permits anything.
type SuggestionRanker struct {
	ledger *Ledger
}

// NewSuggestionRanker returns a ranker reading from the given ledger.
func NewSuggestionRanker(ledger *Ledger) *SuggestionRanker {
	return &SuggestionRanker{ledger: ledger}
}

// Suggest returns up to limit users of the organization with enough spare
// capacity for requiredPercentage over the inclusive range [from, until],
// most free first. A limit below 1 means DefaultSuggestionLimit.
func (r *SuggestionRanker) Suggest(ctx context.Context, organizationID uuid.UUID, from, until types.Date, requiredPercentage uint, limit int) ([]Suggestion, error) {
	if err := validateRange(from, until); err != nil {
		return nil, err
	}

	if err := validatePercentage(requiredPercentage); err != nil {
		return nil, err
	}

	if limit < 1 {
		limit = DefaultSuggestionLimit
	}

	suggestions, err := r.ledger.UsersWithSpareCapacity(ctx, organizationID, from, until, requiredPercentage)
	if err != nil {
		return nil, err
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions, nil
}
