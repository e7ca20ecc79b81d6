package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/staffable/backend/internal/capacity"
	"github.com/staffable/backend/internal/httputil"
	"github.com/staffable/backend/internal/models"
	"github.com/staffable/backend/internal/types"
	sb_uuid "github.com/staffable/backend/internal/uuid"
)

type AllocationEditable struct {
	OrganizationID       uuid.UUID  `json:"organizationId" example:"d3087b29-cfc0-4b26-a237-c7cda4cbdd6e"` // ID of the organization
	UserID               uuid.UUID  `json:"userId" example:"7e02ef90-c645-4343-b2a1-cd8b581953f9"`         // ID of the user being allocated
	ProjectID            uuid.UUID  `json:"projectId" example:"059a2e17-fb7d-4a41-b2f8-cfe8cc1cc822"`      // ID of the project
	StartDate            types.Date `json:"startDate" example:"2025-01-01"`                                // First day of the allocation
	EndDate              types.Date `json:"endDate" example:"2025-01-05"`                                  // Last day of the allocation, inclusive
	AllocationPercentage uint       `json:"allocationPercentage" example:"60" minimum:"1" maximum:"100"`   // Percentage of the user's time
}

// create returns the engine request for the API representation of the editable fields
func (editable AllocationEditable) create() capacity.AllocationCreate {
	return capacity.AllocationCreate{
		OrganizationID:       editable.OrganizationID,
		UserID:               editable.UserID,
		ProjectID:            editable.ProjectID,
		StartDate:            editable.StartDate,
		EndDate:              editable.EndDate,
		AllocationPercentage: editable.AllocationPercentage,
	}
}

type AllocationLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/allocations/cae9f839-96a8-4c27-a7b6-a6064e7f1b4e"` // The allocation itself
	User    string `json:"user" example:"https://example.com/api/v1/users/7e02ef90-c645-4343-b2a1-cd8b581953f9"`       // The allocated user
	Project string `json:"project" example:"https://example.com/api/v1/projects/059a2e17-fb7d-4a41-b2f8-cfe8cc1cc822"` // The project
}

// Allocation is the API representation of an Allocation.
type Allocation struct {
	models.DefaultModel
	AllocationEditable
	Links AllocationLinks `json:"links"`
}

// newAllocation returns the API representation of the resource
func newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := httputil.RequestHost(c)

	return Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			OrganizationID:       model.OrganizationID,
			UserID:               model.UserID,
			ProjectID:            model.ProjectID,
			StartDate:            model.StartDate,
			EndDate:              model.EndDate,
			AllocationPercentage: model.AllocationPercentage,
		},
		Links: AllocationLinks{
			Self:    fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			User:    fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
			Project: fmt.Sprintf("%s/v1/projects/%s", url, model.ProjectID),
		},
	}
}

type AllocationQueryFilter struct {
	OrganizationID sb_uuid.UUID `form:"organization"`               // By organization
	UserID         sb_uuid.UUID `form:"user"`                       // By user
	ProjectID      sb_uuid.UUID `form:"project"`                    // By project
	Offset         uint         `form:"offset" filterField:"false"` // The offset of the first Allocation
	Limit          int          `form:"limit" filterField:"false"`  // Maximum number of Allocations to return
}

func (f AllocationQueryFilter) model() models.Allocation {
	return models.Allocation{
		OrganizationID: f.OrganizationID.UUID,
		UserID:         f.UserID.UUID,
		ProjectID:      f.ProjectID.UUID,
	}
}

type AllocationResponse struct {
	Error       *string                `json:"error" example:"the user is over their capacity on 3 day(s) in the requested range"` // The error, if any occurred
	Data        *Allocation            `json:"data"`                                                                               // The Allocation data, if creation was successful
	Conflicts   []capacity.ConflictDay `json:"conflicts,omitempty"`                                                                // Days that would go over capacity, set on conflict
	Suggestions []capacity.Suggestion  `json:"suggestions,omitempty"`                                                              // Alternative users, set on conflict
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of allocations
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}
