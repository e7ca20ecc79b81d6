// Package capacity implements the resource capacity allocation engine.
//
// An allocation commits a user to a project for an inclusive date range at
// a percentage of their time. The engine keeps a per-day ledger of
// allocated percentage per user, refuses allocations that would push any
// day over 100% and suggests alternative users instead, and guarantees
// that the allocation record and its ledger entries change together or not
// at all.
package capacity

import (
	"context"

	"github.com/google/uuid"
	"github.com/staffable/backend/internal/metrics"
	"github.com/staffable/backend/internal/models"
	"github.com/staffable/backend/internal/types"
	"gorm.io/gorm"
)

// Engine coordinates allocation requests. It is the only component with a
// write path to the allocations table and the capacity ledger.
type Engine struct {
	db       *gorm.DB
	ledger   *Ledger
	detector *ConflictDetector
	ranker   *SuggestionRanker
	locks    userLocks
}

// NewEngine wires an engine on top of the given database handle.
func NewEngine(db *gorm.DB) *Engine {
	ledger := NewLedger(db)

	return &Engine{
		db:       db,
		ledger:   ledger,
		detector: NewConflictDetector(ledger),
		ranker:   NewSuggestionRanker(ledger),
	}
}

// AllocationCreate is a request to allocate a user to a project.
type AllocationCreate struct {
	OrganizationID       uuid.UUID
	UserID               uuid.UUID
	ProjectID            uuid.UUID
	StartDate            types.Date
	EndDate              types.Date
	AllocationPercentage uint
}

// CreateAllocation validates the request, checks it against the ledger and,
// if no day would go over capacity, persists the allocation together with
// its ledger increments in one transaction.
//
// On conflict it returns an *OverallocationError carrying the conflicting
// days and ranked alternative users; nothing is written in that case.
// Cancelling the context aborts the write and rolls the transaction back.
func (e *Engine) CreateAllocation(ctx context.Context, create AllocationCreate) (models.Allocation, error) {
	// Validating: fail fast, before any storage access
	if err := validateRange(create.StartDate, create.EndDate); err != nil {
		return models.Allocation{}, err
	}

	if err := validatePercentage(create.AllocationPercentage); err != nil {
		return models.Allocation{}, err
	}

	// CheckingConflicts: cheap unguarded read. Requests that are already
	// conflicted are turned away without ever taking the lock.
	conflicts, err := e.detector.CheckConflicts(ctx, create.OrganizationID, create.UserID, create.StartDate, create.EndDate, create.AllocationPercentage)
	if err != nil {
		return models.Allocation{}, err
	}

	if len(conflicts) > 0 {
		return models.Allocation{}, e.conflicted(ctx, create, conflicts)
	}

	// Writing: serialize per (organization, user), then re-check inside
	// the transaction. A concurrent request may have committed between the
	// check above and this point.
	unlock := e.locks.lock(create.OrganizationID, create.UserID)
	defer unlock()

	tx := e.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return models.Allocation{}, wrapStorage(tx.Error)
	}

	entries, err := e.ledger.rangeIn(tx, create.OrganizationID, create.UserID, create.StartDate, create.EndDate)
	if err != nil {
		return models.Allocation{}, e.rollback(tx, err)
	}

	if conflicts := conflictDays(entries, create.StartDate, create.EndDate, create.AllocationPercentage); len(conflicts) > 0 {
		tx.Rollback()
		return models.Allocation{}, e.conflicted(ctx, create, conflicts)
	}

	allocation := models.Allocation{
		OrganizationID:       create.OrganizationID,
		UserID:               create.UserID,
		ProjectID:            create.ProjectID,
		StartDate:            create.StartDate,
		EndDate:              create.EndDate,
		AllocationPercentage: create.AllocationPercentage,
	}

	if err := tx.Create(&allocation).Error; err != nil {
		return models.Allocation{}, e.rollback(tx, err)
	}

	if err := e.ledger.IncrementRange(tx, create.OrganizationID, create.UserID, create.StartDate, create.EndDate, int(create.AllocationPercentage)); err != nil {
		return models.Allocation{}, e.rollback(tx, err)
	}

	if err := tx.Commit().Error; err != nil {
		return models.Allocation{}, e.rollback(tx, err)
	}

	metrics.AllocationsCreated.Inc()
	return allocation, nil
}

// DeleteAllocation removes an allocation and reverses its ledger entries
// in one transaction. Ledger entries are decremented back towards zero,
// never removed.
func (e *Engine) DeleteAllocation(ctx context.Context, id uuid.UUID) error {
	var allocation models.Allocation
	err := e.db.WithContext(ctx).First(&allocation, id).Error
	if err != nil {
		return wrapStorage(err)
	}

	unlock := e.locks.lock(allocation.OrganizationID, allocation.UserID)
	defer unlock()

	tx := e.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return wrapStorage(tx.Error)
	}

	if err := tx.Delete(&allocation).Error; err != nil {
		return e.rollback(tx, err)
	}

	if err := e.ledger.IncrementRange(tx, allocation.OrganizationID, allocation.UserID, allocation.StartDate, allocation.EndDate, -int(allocation.AllocationPercentage)); err != nil {
		return e.rollback(tx, err)
	}

	if err := tx.Commit().Error; err != nil {
		return e.rollback(tx, err)
	}

	metrics.AllocationsDeleted.Inc()
	return nil
}

// CheckConflicts is the read-only conflict probe, usable to preview a
// request before submitting it.
func (e *Engine) CheckConflicts(ctx context.Context, organizationID, userID uuid.UUID, from, until types.Date, proposedPercentage uint) ([]ConflictDay, error) {
	return e.detector.CheckConflicts(ctx, organizationID, userID, from, until, proposedPercentage)
}

// Suggest returns alternative users with spare capacity in the window.
func (e *Engine) Suggest(ctx context.Context, organizationID uuid.UUID, from, until types.Date, requiredPercentage uint, limit int) ([]Suggestion, error) {
	return e.ranker.Suggest(ctx, organizationID, from, until, requiredPercentage, limit)
}

// GetLedgerRange exports the raw ledger for reporting, e.g. heatmaps.
func (e *Engine) GetLedgerRange(ctx context.Context, organizationID, userID uuid.UUID, from, until types.Date) ([]models.DailyCapacityEntry, error) {
	if err := validateRange(from, until); err != nil {
		return nil, err
	}

	return e.ledger.GetRange(ctx, organizationID, userID, from, until)
}

// conflicted packages a refused request: rank alternatives, count the
// refusal, hand everything back as one domain error.
func (e *Engine) conflicted(ctx context.Context, create AllocationCreate, conflicts []ConflictDay) error {
	suggestions, err := e.ranker.Suggest(ctx, create.OrganizationID, create.StartDate, create.EndDate, create.AllocationPercentage, DefaultSuggestionLimit)
	if err != nil {
		return err
	}

	metrics.AllocationConflicts.Inc()
	return &OverallocationError{Conflicts: conflicts, Suggestions: suggestions}
}

// rollback aborts the transaction and tags the causing error.
func (e *Engine) rollback(tx *gorm.DB, err error) error {
	tx.Rollback()
	metrics.AllocationRollbacks.Inc()
	return wrapStorage(err)
}
