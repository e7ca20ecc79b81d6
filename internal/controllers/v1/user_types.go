package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/staffable/backend/internal/httputil"
	"github.com/staffable/backend/internal/models"
	sb_uuid "github.com/staffable/backend/internal/uuid"
)

type UserEditable struct {
	OrganizationID uuid.UUID `json:"organizationId" example:"d3087b29-cfc0-4b26-a237-c7cda4cbdd6e"` // ID of the organization
	Name           string    `json:"name" example:"Jamie López" default:""`                         // Name of the user
	Note           string    `json:"note" example:"Backend chapter" default:""`
}

// model returns the database resource for the API representation of the editable fields
func (editable UserEditable) model() models.User {
	return models.User{
		OrganizationID: editable.OrganizationID,
		Name:           editable.Name,
		Note:           editable.Note,
	}
}

type UserLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/users/7e02ef90-c645-4343-b2a1-cd8b581953f9"`               // The user itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?user=7e02ef90-c645-4343-b2a1-cd8b581953f9"` // Allocations of this user
	Capacity    string `json:"capacity" example:"https://example.com/api/v1/capacity?user=7e02ef90-c645-4343-b2a1-cd8b581953f9"`   // Capacity ledger of this user
}

// User is the API representation of a User.
type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := httputil.RequestHost(c)

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			OrganizationID: model.OrganizationID,
			Name:           model.Name,
			Note:           model.Note,
		},
		Links: UserLinks{
			Self:        fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/allocations?user=%s", url, model.ID),
			Capacity:    fmt.Sprintf("%s/v1/capacity?organization=%s&user=%s", url, model.OrganizationID, model.ID),
		},
	}
}

type UserQueryFilter struct {
	OrganizationID sb_uuid.UUID `form:"organization"` // By organization
}

func (f UserQueryFilter) model() models.User {
	return models.User{
		OrganizationID: f.OrganizationID.UUID,
	}
}

type UserResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *User   `json:"data"`                                                          // The User data
}

type UserListResponse struct {
	Data  []User  `json:"data"`                                                          // List of users
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
