package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/staffable/backend/internal/controllers/v1"
	"github.com/staffable/backend/test"
)

func (suite *TestSuiteStandard) TestUsersCreate() {
	organization := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	user := createTestUser(suite.T(), v1.UserEditable{OrganizationID: organization.Data.ID, Name: "Jamie"})

	suite.Assert().Equal("Jamie", user.Data.Name)
	suite.Assert().Equal(organization.Data.ID, user.Data.OrganizationID)
	suite.Assert().Contains(user.Data.Links.Capacity, user.Data.ID.String())
}

func (suite *TestSuiteStandard) TestUsersCreateErrors() {
	organization := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	_ = createTestUser(suite.T(), v1.UserEditable{OrganizationID: organization.Data.ID, Name: "Jamie"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Duplicate name in organization", v1.UserEditable{OrganizationID: organization.Data.ID, Name: "Jamie"}, http.StatusBadRequest},
		{"Organization does not exist", v1.UserEditable{OrganizationID: uuid.New(), Name: "Nobody"}, http.StatusNotFound},
		{"Broken body", `{"name": `, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/users", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestUsersGetFiltered() {
	organization := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	other := createTestOrganization(suite.T(), v1.OrganizationEditable{})

	_ = createTestUser(suite.T(), v1.UserEditable{OrganizationID: organization.Data.ID})
	_ = createTestUser(suite.T(), v1.UserEditable{OrganizationID: organization.Data.ID})
	_ = createTestUser(suite.T(), v1.UserEditable{OrganizationID: other.Data.ID})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 3},
		{"By organization", fmt.Sprintf("organization=%s", organization.Data.ID), 2},
		{"Empty organization", fmt.Sprintf("organization=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/users?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.UserListResponse
			test.DecodeResponse(t, &r, &response)
			if len(response.Data) != tt.count {
				t.Errorf("expected %d users, got %d", tt.count, len(response.Data))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestUsersGetSingle() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing User", user.Data.ID.String(), http.StatusOK},
		{"ID not found", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/users/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
