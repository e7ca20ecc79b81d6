package v1

import (
	"errors"
	"net/http"

	"github.com/staffable/backend/internal/capacity"
	"github.com/staffable/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an engine or database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, capacity.ErrStorage) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	var overallocation *capacity.OverallocationError
	if errors.As(err, &overallocation) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errOrganizationIDParameter = errors.New("the organization parameter must be set to a valid UUID")
	errUserIDParameter         = errors.New("the user parameter must be set to a valid UUID")
	errDateParameter           = errors.New("the from and until parameters must be set to valid dates in YYYY-MM-DD format")
	errPercentageParameter     = errors.New("the percentage parameter must be set to a number between 1 and 100")
)

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
