package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is something users can be allocated to.
type Project struct {
	DefaultModel
	Organization   Organization `json:"-"`
	OrganizationID uuid.UUID    `gorm:"uniqueIndex:project_name_organization_id"`
	Name           string       `gorm:"uniqueIndex:project_name_organization_id"`
	Note           string
	Archived       bool
}

var ErrProjectNameNotUnique = errors.New("the project name must be unique for the organization")

// BeforeSave trims whitespace from all strings.
func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	return nil
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Project)
	return p.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (p *Project) checkIntegrity(tx *gorm.DB, toSave Project) error {
	return tx.First(&Organization{}, toSave.OrganizationID).Error
}
