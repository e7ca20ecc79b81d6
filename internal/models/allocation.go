package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/staffable/backend/internal/types"
	"gorm.io/gorm"
)

// Allocation commits a user to a project for an inclusive date range at a
// percentage of their time.
//
// Allocations are immutable once created. Changes are modeled as
// delete + recreate so that the capacity ledger is always adjusted through
// the same two code paths.
type Allocation struct {
	DefaultModel
	Organization         Organization `json:"-"`
	OrganizationID       uuid.UUID    `gorm:"index:allocation_organization_user"`
	User                 User         `json:"-"`
	UserID               uuid.UUID    `gorm:"index:allocation_organization_user"`
	Project              Project      `json:"-"`
	ProjectID            uuid.UUID
	StartDate            types.Date
	EndDate              types.Date
	AllocationPercentage uint
}

var (
	ErrAllocationRangeInverted        = errors.New("endDate must not be before startDate")
	ErrAllocationPercentageOutOfRange = errors.New("allocationPercentage must be between 1 and 100")
)

func (a *Allocation) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Allocation)
	return a.checkIntegrity(tx, *toSave)
}

// BeforeSave rejects allocations the coordinator should never have
// produced. The real validation happens before any database access, this
// is the last line of defence for direct writes.
func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	if a.EndDate.Before(a.StartDate) {
		return ErrAllocationRangeInverted
	}

	if a.AllocationPercentage < 1 || a.AllocationPercentage > 100 {
		return ErrAllocationPercentageOutOfRange
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *Allocation) checkIntegrity(tx *gorm.DB, toSave Allocation) error {
	err := tx.First(&User{}, toSave.UserID).Error
	if err != nil {
		return err
	}

	return tx.First(&Project{}, toSave.ProjectID).Error
}

// Days returns every calendar day the allocation covers.
func (a Allocation) Days() []types.Date {
	return types.DaysBetween(a.StartDate, a.EndDate)
}
