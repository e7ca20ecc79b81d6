package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/staffable/backend/internal/httputil"
	"github.com/staffable/backend/internal/models"
)

type OrganizationEditable struct {
	Name string `json:"name" example:"ACME Inc." default:""` // Name of the organization
	Note string `json:"note" example:"Main tenant" default:""`
}

// model returns the database resource for the API representation of the editable fields
func (editable OrganizationEditable) model() models.Organization {
	return models.Organization{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type OrganizationLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/organizations/d3087b29-cfc0-4b26-a237-c7cda4cbdd6e"`       // The organization itself
	Users string `json:"users" example:"https://example.com/api/v1/users?organization=d3087b29-cfc0-4b26-a237-c7cda4cbdd6e"` // Users of the organization
}

// Organization is the API representation of an Organization.
type Organization struct {
	models.DefaultModel
	OrganizationEditable
	Links OrganizationLinks `json:"links"`
}

func newOrganization(c *gin.Context, model models.Organization) Organization {
	url := httputil.RequestHost(c)

	return Organization{
		DefaultModel: model.DefaultModel,
		OrganizationEditable: OrganizationEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: OrganizationLinks{
			Self:  fmt.Sprintf("%s/v1/organizations/%s", url, model.ID),
			Users: fmt.Sprintf("%s/v1/users?organization=%s", url, model.ID),
		},
	}
}

type OrganizationResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Organization `json:"data"`                                                          // The Organization data
}

type OrganizationListResponse struct {
	Data  []Organization `json:"data"`                                                          // List of organizations
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
