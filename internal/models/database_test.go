package models_test

import (
	"github.com/staffable/backend/internal/models"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	// TearDownTest closes the suite connection, keep a working one around
	defer func() {
		suite.SetupTest()
	}()

	err := models.Connect("/this/path/does/not/exist/database.db")
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestMigration() {
	for _, model := range []string{"organizations", "users", "projects", "allocations", "daily_capacity_entries"} {
		suite.Assert().True(models.DB.Migrator().HasTable(model), "table %s does not exist", model)
	}
}
