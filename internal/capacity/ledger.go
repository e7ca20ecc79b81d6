package capacity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/staffable/backend/internal/models"
	"github.com/staffable/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger is the durable per-day capacity store. It is keyed by
// (organization, user, date) and holds the running total of allocated
// percentage for that day.
//
// The ledger has no commit authority of its own: every write goes through
// a transaction handle supplied by the coordinator.
type Ledger struct {
	db *gorm.DB
}

// NewLedger returns a Ledger reading from the given database handle.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// GetRange returns the ledger entries for the user in the inclusive range
// [from, until], ordered by date ascending. Days without an entry are
// absent from the result and imply an allocation of 0.
func (l *Ledger) GetRange(ctx context.Context, organizationID, userID uuid.UUID, from, until types.Date) ([]models.DailyCapacityEntry, error) {
	return l.rangeIn(l.db.WithContext(ctx), organizationID, userID, from, until)
}

// rangeIn reads the range through an arbitrary handle so that the
// coordinator can re-read inside its transaction.
func (l *Ledger) rangeIn(db *gorm.DB, organizationID, userID uuid.UUID, from, until types.Date) ([]models.DailyCapacityEntry, error) {
	var entries []models.DailyCapacityEntry

	err := db.
		Where(&models.DailyCapacityEntry{OrganizationID: organizationID, UserID: userID}).
		Where("capacity_date >= date(?)", from).
		// Exclusive upper bound: the stored value carries a time of day, a
		// string comparison against date()'s short form would drop the
		// last day of the range
		Where("capacity_date < date(?)", until.AddDays(1)).
		Order("capacity_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, wrapStorage(err)
	}

	return entries, nil
}

// IncrementRange adds delta to every day in the inclusive range [from, until],
// creating entries that do not exist yet. The delta may be negative, the
// deletion path uses it to reverse an allocation.
//
// It must run inside the caller's transaction; the ledger never commits.
func (l *Ledger) IncrementRange(tx *gorm.DB, organizationID, userID uuid.UUID, from, until types.Date, delta int) error {
	for _, day := range types.DaysBetween(from, until) {
		entry := models.DailyCapacityEntry{
			OrganizationID:      organizationID,
			UserID:              userID,
			CapacityDate:        day,
			AllocatedPercentage: delta,
		}

		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "organization_id"}, {Name: "user_id"}, {Name: "capacity_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"allocated_percentage": gorm.Expr("allocated_percentage + ?", delta),
				"updated_at":           time.Now().In(time.UTC),
			}),
		}).Create(&entry).Error
		if err != nil {
			return wrapStorage(err)
		}
	}

	return nil
}

// UsersWithSpareCapacity returns the users of the organization whose average
// allocation over the inclusive range [from, until] leaves room for
// requiredPercentage, ordered most free first.
//
// The user directory is LEFT JOINed against the ledger so that users
// without any entries rank at an average of 0. Ties order by user ID so
// results are deterministic for a fixed ledger snapshot.
func (l *Ledger) UsersWithSpareCapacity(ctx context.Context, organizationID uuid.UUID, from, until types.Date, requiredPercentage uint) ([]Suggestion, error) {
	days := types.DaysIn(from, until)

	var suggestions []Suggestion
	err := l.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("LEFT JOIN daily_capacity_entries ON daily_capacity_entries.organization_id = users.organization_id AND daily_capacity_entries.user_id = users.id AND daily_capacity_entries.capacity_date >= date(?) AND daily_capacity_entries.capacity_date < date(?)", from, until.AddDays(1)).
		Select("users.id AS user_id, COALESCE(SUM(daily_capacity_entries.allocated_percentage), 0) * 1.0 / ? AS average_allocated", days).
		Where("users.organization_id = ?", organizationID).
		Where("users.deleted_at IS NULL").
		Group("users.id").
		Having("average_allocated <= ?", 100-int(requiredPercentage)).
		Order("average_allocated ASC").
		Order("users.id ASC").
		Find(&suggestions).Error
	if err != nil {
		return nil, wrapStorage(err)
	}

	return suggestions, nil
}
