package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/staffable/backend/internal/httputil"
	"github.com/staffable/backend/internal/models"
	sb_uuid "github.com/staffable/backend/internal/uuid"
)

type ProjectEditable struct {
	OrganizationID uuid.UUID `json:"organizationId" example:"d3087b29-cfc0-4b26-a237-c7cda4cbdd6e"` // ID of the organization
	Name           string    `json:"name" example:"Website relaunch" default:""`                    // Name of the project
	Note           string    `json:"note" example:"Q3 focus project" default:""`
	Archived       bool      `json:"archived" example:"false" default:"false"` // Is the project archived?
}

// model returns the database resource for the API representation of the editable fields
func (editable ProjectEditable) model() models.Project {
	return models.Project{
		OrganizationID: editable.OrganizationID,
		Name:           editable.Name,
		Note:           editable.Note,
		Archived:       editable.Archived,
	}
}

type ProjectLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/projects/059a2e17-fb7d-4a41-b2f8-cfe8cc1cc822"`                   // The project itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?project=059a2e17-fb7d-4a41-b2f8-cfe8cc1cc822"` // Allocations for this project
}

// Project is the API representation of a Project.
type Project struct {
	models.DefaultModel
	ProjectEditable
	Links ProjectLinks `json:"links"`
}

func newProject(c *gin.Context, model models.Project) Project {
	url := httputil.RequestHost(c)

	return Project{
		DefaultModel: model.DefaultModel,
		ProjectEditable: ProjectEditable{
			OrganizationID: model.OrganizationID,
			Name:           model.Name,
			Note:           model.Note,
			Archived:       model.Archived,
		},
		Links: ProjectLinks{
			Self:        fmt.Sprintf("%s/v1/projects/%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/allocations?project=%s", url, model.ID),
		},
	}
}

type ProjectQueryFilter struct {
	OrganizationID sb_uuid.UUID `form:"organization"` // By organization
	Archived       bool         `form:"archived"`     // Is the project archived?
}

func (f ProjectQueryFilter) model() models.Project {
	return models.Project{
		OrganizationID: f.OrganizationID.UUID,
		Archived:       f.Archived,
	}
}

type ProjectResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Project `json:"data"`                                                          // The Project data
}

type ProjectListResponse struct {
	Data  []Project `json:"data"`                                                          // List of projects
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
