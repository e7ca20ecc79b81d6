package capacity_test

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/staffable/backend/internal/capacity"
	"github.com/staffable/backend/internal/models"
	"github.com/staffable/backend/internal/types"
)

// fixtures returns an organization with one user and one project, ready
// for allocations.
func (suite *TestSuiteStandard) fixtures() (models.Organization, models.User, models.Project) {
	organization := suite.createTestOrganization(models.Organization{})
	user := suite.createTestUser(models.User{OrganizationID: organization.ID})
	project := suite.createTestProject(models.Project{OrganizationID: organization.ID})

	return organization, user, project
}

func (suite *TestSuiteStandard) TestEngineCreateAllocation() {
	organization, user, project := suite.fixtures()
	engine := capacity.NewEngine(models.DB)

	allocation, err := engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 1, 1),
		EndDate:              types.NewDate(2025, 1, 5),
		AllocationPercentage: 60,
	})
	suite.Require().Nil(err)
	suite.Assert().NotEqual("00000000-0000-0000-0000-000000000000", allocation.ID.String())

	// Every day of the inclusive range has a ledger entry now
	entries, err := engine.GetLedgerRange(context.Background(), organization.ID, user.ID, types.NewDate(2025, 1, 1), types.NewDate(2025, 1, 5))
	suite.Require().Nil(err)
	suite.Require().Len(entries, 5)

	for i, entry := range entries {
		suite.Assert().True(entry.CapacityDate.Equal(types.NewDate(2025, 1, 1).AddDays(i)), "Entry %d has date %s", i, entry.CapacityDate)
		suite.Assert().Equal(60, entry.AllocatedPercentage)
	}
}

func (suite *TestSuiteStandard) TestEngineCreateAllocationSingleDay() {
	organization, user, project := suite.fixtures()
	engine := capacity.NewEngine(models.DB)

	_, err := engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 3, 10),
		EndDate:              types.NewDate(2025, 3, 10),
		AllocationPercentage: 100,
	})
	suite.Require().Nil(err)

	entries, err := engine.GetLedgerRange(context.Background(), organization.ID, user.ID, types.NewDate(2025, 3, 10), types.NewDate(2025, 3, 10))
	suite.Require().Nil(err)
	suite.Require().Len(entries, 1)
	suite.Assert().Equal(100, entries[0].AllocatedPercentage)
}

func (suite *TestSuiteStandard) TestEngineCreateAllocationValidation() {
	organization, user, project := suite.fixtures()
	engine := capacity.NewEngine(models.DB)

	tests := []struct {
		name       string
		start, end types.Date
		percentage uint
		expected   error
	}{
		{"inverted range", types.NewDate(2025, 1, 10), types.NewDate(2025, 1, 1), 50, capacity.ErrInvalidRange},
		{"zero percentage", types.NewDate(2025, 1, 1), types.NewDate(2025, 1, 10), 0, capacity.ErrInvalidPercentage},
		{"percentage above 100", types.NewDate(2025, 1, 1), types.NewDate(2025, 1, 10), 101, capacity.ErrInvalidPercentage},
	}

	for _, tt := range tests {
		_, err := engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
			OrganizationID:       organization.ID,
			UserID:               user.ID,
			ProjectID:            project.ID,
			StartDate:            tt.start,
			EndDate:              tt.end,
			AllocationPercentage: tt.percentage,
		})
		suite.Assert().True(errors.Is(err, tt.expected), "Test %q: expected %v, got %v", tt.name, tt.expected, err)

		// Nothing may have been written
		var count int64
		models.DB.Model(&models.Allocation{}).Count(&count)
		suite.Assert().Equal(int64(0), count, "Test %q wrote an allocation", tt.name)
	}
}

// TestEngineCreateAllocationConflict verifies that a second allocation
// pushing days over 100% is refused with the overlapping days and that
// nothing is persisted for the refused request.
func (suite *TestSuiteStandard) TestEngineCreateAllocationConflict() {
	organization, user, project := suite.fixtures()
	engine := capacity.NewEngine(models.DB)

	_, err := engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 1, 1),
		EndDate:              types.NewDate(2025, 1, 10),
		AllocationPercentage: 50,
	})
	suite.Require().Nil(err)

	_, err = engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 1, 5),
		EndDate:              types.NewDate(2025, 1, 15),
		AllocationPercentage: 60,
	})
	suite.Require().NotNil(err)

	var overallocation *capacity.OverallocationError
	suite.Require().True(errors.As(err, &overallocation), "expected OverallocationError, got %v", err)

	// Jan 5 through Jan 10 overlap, Jan 11 through 15 are free
	suite.Require().Len(overallocation.Conflicts, 6)
	for i, conflict := range overallocation.Conflicts {
		suite.Assert().True(conflict.Date.Equal(types.NewDate(2025, 1, 5).AddDays(i)))
		suite.Assert().Equal(50, conflict.CurrentAllocation)
		suite.Assert().Equal(110, conflict.WouldBeAllocation)
	}

	// The refused request left no trace
	var count int64
	models.DB.Model(&models.Allocation{}).Count(&count)
	suite.Assert().Equal(int64(1), count)

	entries, err := engine.GetLedgerRange(context.Background(), organization.ID, user.ID, types.NewDate(2025, 1, 1), types.NewDate(2025, 1, 15))
	suite.Require().Nil(err)
	suite.Require().Len(entries, 10)
	for _, entry := range entries {
		suite.Assert().Equal(50, entry.AllocatedPercentage)
	}
}

// TestEngineConflictOnLastDay verifies that an overlap on the final day of
// the requested range is detected. The ledger read uses an exclusive upper
// bound internally, an off-by-one there would let this allocation commit
// a day at 120%.
func (suite *TestSuiteStandard) TestEngineConflictOnLastDay() {
	organization, user, project := suite.fixtures()
	engine := capacity.NewEngine(models.DB)

	_, err := engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 1, 5),
		EndDate:              types.NewDate(2025, 1, 5),
		AllocationPercentage: 60,
	})
	suite.Require().Nil(err)

	_, err = engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 1, 3),
		EndDate:              types.NewDate(2025, 1, 5),
		AllocationPercentage: 60,
	})
	suite.Require().NotNil(err)

	var overallocation *capacity.OverallocationError
	suite.Require().True(errors.As(err, &overallocation), "expected OverallocationError, got %v", err)
	suite.Require().Len(overallocation.Conflicts, 1)
	suite.Assert().True(overallocation.Conflicts[0].Date.Equal(types.NewDate(2025, 1, 5)))
	suite.Assert().Equal(60, overallocation.Conflicts[0].CurrentAllocation)
	suite.Assert().Equal(120, overallocation.Conflicts[0].WouldBeAllocation)

	// Jan 5 stays at 60
	entries, err := engine.GetLedgerRange(context.Background(), organization.ID, user.ID, types.NewDate(2025, 1, 5), types.NewDate(2025, 1, 5))
	suite.Require().Nil(err)
	suite.Require().Len(entries, 1)
	suite.Assert().Equal(60, entries[0].AllocatedPercentage)
}

// TestEngineAdjacentAllocations verifies that an allocation ending the day
// before another starts does not conflict.
func (suite *TestSuiteStandard) TestEngineAdjacentAllocations() {
	organization, user, project := suite.fixtures()
	engine := capacity.NewEngine(models.DB)

	_, err := engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 2, 1),
		EndDate:              types.NewDate(2025, 2, 10),
		AllocationPercentage: 100,
	})
	suite.Require().Nil(err)

	_, err = engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 2, 11),
		EndDate:              types.NewDate(2025, 2, 20),
		AllocationPercentage: 100,
	})
	suite.Assert().Nil(err, "adjacent ranges must not conflict")
}

func (suite *TestSuiteStandard) TestEngineDeleteAllocation() {
	organization, user, project := suite.fixtures()
	engine := capacity.NewEngine(models.DB)

	allocation, err := engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 1, 1),
		EndDate:              types.NewDate(2025, 1, 5),
		AllocationPercentage: 80,
	})
	suite.Require().Nil(err)

	err = engine.DeleteAllocation(context.Background(), allocation.ID)
	suite.Require().Nil(err)

	// The ledger is reversed back to zero, entries stay around
	entries, err := engine.GetLedgerRange(context.Background(), organization.ID, user.ID, types.NewDate(2025, 1, 1), types.NewDate(2025, 1, 5))
	suite.Require().Nil(err)
	suite.Require().Len(entries, 5)
	for _, entry := range entries {
		suite.Assert().Equal(0, entry.AllocatedPercentage)
	}

	// The full capacity is available again
	_, err = engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 1, 1),
		EndDate:              types.NewDate(2025, 1, 5),
		AllocationPercentage: 100,
	})
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestEngineDeleteAllocationNotFound() {
	_, _, _ = suite.fixtures()
	engine := capacity.NewEngine(models.DB)

	err := engine.DeleteAllocation(context.Background(), uuid.New())
	suite.Assert().True(errors.Is(err, models.ErrResourceNotFound), "expected not found, got %v", err)
}

// TestEngineConcurrentCreate runs two conflicting requests at the same
// time. Exactly one of them may succeed.
func (suite *TestSuiteStandard) TestEngineConcurrentCreate() {
	organization, user, project := suite.fixtures()
	engine := capacity.NewEngine(models.DB)

	create := capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 6, 2),
		EndDate:              types.NewDate(2025, 6, 6),
		AllocationPercentage: 60,
	}

	var wg sync.WaitGroup
	results := make([]error, 2)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = engine.CreateAllocation(context.Background(), create)
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}

		var overallocation *capacity.OverallocationError
		if errors.As(err, &overallocation) {
			conflicted++
		}
	}

	suite.Assert().Equal(1, succeeded, "exactly one concurrent request must succeed: %v", results)
	suite.Assert().Equal(1, conflicted, "the other request must be refused as a conflict: %v", results)

	// The ledger never went over 100
	entries, err := engine.GetLedgerRange(context.Background(), organization.ID, user.ID, create.StartDate, create.EndDate)
	suite.Require().Nil(err)
	suite.Require().Len(entries, 5)
	for _, entry := range entries {
		suite.Assert().Equal(60, entry.AllocatedPercentage)
	}
}

func (suite *TestSuiteStandard) TestEngineContextCancelled() {
	organization, user, project := suite.fixtures()
	engine := capacity.NewEngine(models.DB)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.CreateAllocation(ctx, capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 1, 1),
		EndDate:              types.NewDate(2025, 1, 5),
		AllocationPercentage: 60,
	})
	suite.Assert().NotNil(err)

	// Nothing was committed
	var count int64
	models.DB.Model(&models.Allocation{}).Count(&count)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestEngineStorageError() {
	organization, user, project := suite.fixtures()
	engine := capacity.NewEngine(models.DB)
	suite.CloseDB()

	_, err := engine.CreateAllocation(context.Background(), capacity.AllocationCreate{
		OrganizationID:       organization.ID,
		UserID:               user.ID,
		ProjectID:            project.ID,
		StartDate:            types.NewDate(2025, 1, 1),
		EndDate:              types.NewDate(2025, 1, 5),
		AllocationPercentage: 60,
	})
	suite.Assert().True(errors.Is(err, capacity.ErrStorage), "expected a storage error, got %v", err)
}
