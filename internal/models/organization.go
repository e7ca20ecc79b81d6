package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Organization is the tenant boundary. Users, projects, allocations and
// ledger entries always belong to exactly one organization.
type Organization struct {
	DefaultModel
	Name string `gorm:"uniqueIndex:organization_name"`
	Note string
}

var ErrOrganizationNameNotUnique = errors.New("the organization name must be unique")

func (o *Organization) BeforeSave(_ *gorm.DB) error {
	o.Name = strings.TrimSpace(o.Name)
	o.Note = strings.TrimSpace(o.Note)

	return nil
}
