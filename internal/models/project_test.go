package models_test

import (
	"errors"

	"github.com/google/uuid"
	"github.com/staffable/backend/internal/models"
)

func (suite *TestSuiteStandard) TestProjectRequiresOrganization() {
	err := models.DB.Create(&models.Project{OrganizationID: uuid.New(), Name: "Orphan"}).Error
	suite.Assert().True(errors.Is(err, models.ErrResourceNotFound), "wrong error: %v", err)
}

func (suite *TestSuiteStandard) TestProjectNameUniquePerOrganization() {
	organization := suite.createTestOrganization(models.Organization{})
	_ = suite.createTestProject(models.Project{OrganizationID: organization.ID, Name: "Relaunch"})

	err := models.DB.Create(&models.Project{OrganizationID: organization.ID, Name: "Relaunch"}).Error
	suite.Assert().True(errors.Is(err, models.ErrProjectNameNotUnique), "wrong error: %v", err)

	other := suite.createTestOrganization(models.Organization{Name: "Other organization"})
	err = models.DB.Create(&models.Project{OrganizationID: other.ID, Name: "Relaunch"}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestProjectArchived() {
	organization := suite.createTestOrganization(models.Organization{})
	project := suite.createTestProject(models.Project{OrganizationID: organization.ID, Archived: true})

	var reread models.Project
	suite.Require().Nil(models.DB.First(&reread, project.ID).Error)
	suite.Assert().True(reread.Archived)
}
