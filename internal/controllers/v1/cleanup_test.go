package v1_test

import (
	"net/http"
	"testing"

	"github.com/staffable/backend/internal/models"
	"github.com/staffable/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	editable := allocationFixtures(suite.T())
	_ = createTestAllocation(suite.T(), editable)

	tests := []string{
		"organizations",
		"users",
		"projects",
		"allocations",
	}

	// The mandatory confirmation
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	for _, model := range tests {
		suite.T().Run(model, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/"+model, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}
			test.DecodeResponse(t, &recorder, &response)
			assert.Empty(t, response.Data, "Not all %s were deleted", model)
		})
	}

	// The capacity ledger is wiped as well
	var count int64
	models.DB.Model(&models.DailyCapacityEntry{}).Count(&count)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"No confirmation", "http://example.com/v1"},
		{"Wrong confirmation", "http://example.com/v1?confirm=on-second-thought-no"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestV1Root() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		Links map[string]string `json:"links"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	for _, key := range []string{"organizations", "users", "projects", "allocations", "capacity"} {
		suite.Assert().Contains(response.Links, key)
	}
}
