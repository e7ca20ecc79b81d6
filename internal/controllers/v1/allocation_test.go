package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/staffable/backend/internal/controllers/v1"
	"github.com/staffable/backend/internal/types"
	"github.com/staffable/backend/test"
	"github.com/stretchr/testify/assert"
)

// allocationFixtures creates an organization with a user and a project and
// returns an editable preset to their IDs.
func allocationFixtures(t *testing.T) v1.AllocationEditable {
	organization := createTestOrganization(t, v1.OrganizationEditable{})
	user := createTestUser(t, v1.UserEditable{OrganizationID: organization.Data.ID})
	project := createTestProject(t, v1.ProjectEditable{OrganizationID: organization.Data.ID})

	return v1.AllocationEditable{
		OrganizationID:       organization.Data.ID,
		UserID:               user.Data.ID,
		ProjectID:            project.Data.ID,
		StartDate:            types.NewDate(2025, 1, 1),
		EndDate:              types.NewDate(2025, 1, 10),
		AllocationPercentage: 60,
	}
}

func (suite *TestSuiteStandard) TestAllocationsCreate() {
	editable := allocationFixtures(suite.T())
	allocation := createTestAllocation(suite.T(), editable)

	suite.Require().NotNil(allocation.Data)
	suite.Assert().Equal(editable.UserID, allocation.Data.UserID)
	suite.Assert().Equal(uint(60), allocation.Data.AllocationPercentage)
	suite.Assert().True(allocation.Data.StartDate.Equal(editable.StartDate))
	suite.Assert().True(allocation.Data.EndDate.Equal(editable.EndDate))
	suite.Assert().Empty(allocation.Conflicts)
}

func (suite *TestSuiteStandard) TestAllocationsCreateConflict() {
	editable := allocationFixtures(suite.T())
	_ = createTestAllocation(suite.T(), editable)

	// A second user gives the ranker something to suggest
	free := createTestUser(suite.T(), v1.UserEditable{OrganizationID: editable.OrganizationID, Name: "Free user"})

	conflicting := editable
	conflicting.AllocationPercentage = 50

	response := createTestAllocation(suite.T(), conflicting, http.StatusConflict)

	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "over their capacity")
	suite.Assert().Nil(response.Data)

	// Every day of the range conflicts at 60 + 50
	suite.Require().Len(response.Conflicts, 10)
	suite.Assert().Equal(60, response.Conflicts[0].CurrentAllocation)
	suite.Assert().Equal(110, response.Conflicts[0].WouldBeAllocation)

	// The free user leads the suggestions
	suite.Require().NotEmpty(response.Suggestions)
	suite.Assert().Equal(free.Data.ID, response.Suggestions[0].UserID)
}

func (suite *TestSuiteStandard) TestAllocationsCreateErrors() {
	editable := allocationFixtures(suite.T())

	inverted := editable
	inverted.StartDate = types.NewDate(2025, 1, 10)
	inverted.EndDate = types.NewDate(2025, 1, 1)

	zeroPercent := editable
	zeroPercent.AllocationPercentage = 0

	over100 := editable
	over100.AllocationPercentage = 101

	unknownUser := editable
	unknownUser.UserID = uuid.New()

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Inverted range", inverted, http.StatusBadRequest},
		{"Zero percentage", zeroPercent, http.StatusBadRequest},
		{"Percentage above 100", over100, http.StatusBadRequest},
		{"Unknown user", unknownUser, http.StatusNotFound},
		{"Broken body", `{"userId": `, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/allocations", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetList() {
	editable := allocationFixtures(suite.T())
	_ = createTestAllocation(suite.T(), editable)

	second := editable
	second.StartDate = types.NewDate(2025, 2, 1)
	second.EndDate = types.NewDate(2025, 2, 10)
	_ = createTestAllocation(suite.T(), second)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Sorted by start date
	suite.Require().Len(response.Data, 2)
	suite.Assert().True(response.Data[0].StartDate.Equal(editable.StartDate))
	suite.Assert().True(response.Data[1].StartDate.Equal(second.StartDate))

	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestAllocationsGetListPagination() {
	editable := allocationFixtures(suite.T())

	for month := 1; month <= 3; month++ {
		a := editable
		a.StartDate = types.NewDate(2025, time.Month(month), 1)
		a.EndDate = types.NewDate(2025, time.Month(month), 5)
		_ = createTestAllocation(suite.T(), a)
	}

	tests := []struct {
		name  string
		query string
		count int
		total int64
	}{
		{"Limit", "limit=2", 2, 3},
		{"Offset", "offset=2", 1, 3},
		{"Offset and limit", "offset=1&limit=1", 1, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AllocationListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetFiltered() {
	editable := allocationFixtures(suite.T())
	_ = createTestAllocation(suite.T(), editable)

	otherUser := createTestUser(suite.T(), v1.UserEditable{OrganizationID: editable.OrganizationID})
	other := editable
	other.UserID = otherUser.Data.ID
	_ = createTestAllocation(suite.T(), other)

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"By user", fmt.Sprintf("user=%s", editable.UserID), 1},
		{"By project", fmt.Sprintf("project=%s", editable.ProjectID), 2},
		{"By organization", fmt.Sprintf("organization=%s", editable.OrganizationID), 2},
		{"Unknown user", fmt.Sprintf("user=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AllocationListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetSingle() {
	allocation := createTestAllocation(suite.T(), allocationFixtures(suite.T()))

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Allocation", allocation.Data.ID.String(), http.StatusOK},
		{"ID not found", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsDelete() {
	editable := allocationFixtures(suite.T())
	allocation := createTestAllocation(suite.T(), editable)

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/allocations/%s", allocation.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleting again fails, the allocation is gone
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/allocations/%s", allocation.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The capacity is available again
	_ = createTestAllocation(suite.T(), editable)
}

func (suite *TestSuiteStandard) TestAllocationsDeleteErrors() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"ID not found", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/allocations/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
