package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a person whose time can be allocated to projects.
//
// The user directory is what allows capacity queries to rank people who do
// not have any ledger entries yet, they count as fully free.
type User struct {
	DefaultModel
	Organization   Organization `json:"-"`
	OrganizationID uuid.UUID    `gorm:"uniqueIndex:user_name_organization_id"`
	Name           string       `gorm:"uniqueIndex:user_name_organization_id"`
	Note           string
}

var ErrUserNameNotUnique = errors.New("the user name must be unique for the organization")

// BeforeSave trims whitespace from all strings.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Note = strings.TrimSpace(u.Note)

	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	_ = u.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*User)
	return u.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (u *User) checkIntegrity(tx *gorm.DB, toSave User) error {
	return tx.First(&Organization{}, toSave.OrganizationID).Error
}
