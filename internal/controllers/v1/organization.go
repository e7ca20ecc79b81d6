package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffable/backend/internal/httputil"
	"github.com/staffable/backend/internal/models"
)

// RegisterOrganizationRoutes registers the routes for organizations with
// the RouterGroup that is passed.
func RegisterOrganizationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsOrganizationList)
		r.GET("", GetOrganizations)
		r.POST("", CreateOrganization)
	}

	{
		r.OPTIONS("/:id", OptionsOrganizationDetail)
		r.GET("/:id", GetOrganization)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Organizations
// @Success		204
// @Router			/v1/organizations [options]
func OptionsOrganizationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Organizations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [options]
func OptionsOrganizationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	err = models.DB.First(&models.Organization{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create organization
// @Description	Creates a new organization
// @Tags			Organizations
// @Accept			json
// @Produce		json
// @Success		201				{object}	OrganizationResponse
// @Failure		400				{object}	OrganizationResponse
// @Failure		500				{object}	OrganizationResponse
// @Param			organization	body		OrganizationEditable	true	"Organization"
// @Router			/v1/organizations [post]
func CreateOrganization(c *gin.Context) {
	var editable OrganizationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrganizationResponse{Error: &e})
		return
	}

	organization := editable.model()
	err = models.DB.Create(&organization).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationResponse{Error: &e})
		return
	}

	data := newOrganization(c, organization)
	c.JSON(http.StatusCreated, OrganizationResponse{Data: &data})
}

// @Summary		List organizations
// @Description	Returns a list of organizations
// @Tags			Organizations
// @Produce		json
// @Success		200	{object}	OrganizationListResponse
// @Failure		500	{object}	OrganizationListResponse
// @Router			/v1/organizations [get]
func GetOrganizations(c *gin.Context) {
	var organizations []models.Organization

	err := models.DB.Order("name ASC").Find(&organizations).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationListResponse{Error: &e})
		return
	}

	apiResources := make([]Organization, 0)
	for _, organization := range organizations {
		apiResources = append(apiResources, newOrganization(c, organization))
	}

	c.JSON(http.StatusOK, OrganizationListResponse{Data: apiResources})
}

// @Summary		Get organization
// @Description	Returns a specific organization
// @Tags			Organizations
// @Produce		json
// @Success		200	{object}	OrganizationResponse
// @Failure		400	{object}	OrganizationResponse
// @Failure		404	{object}	OrganizationResponse
// @Failure		500	{object}	OrganizationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [get]
func GetOrganization(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, OrganizationResponse{Error: &e})
		return
	}

	var organization models.Organization
	err = models.DB.First(&organization, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationResponse{Error: &e})
		return
	}

	data := newOrganization(c, organization)
	c.JSON(http.StatusOK, OrganizationResponse{Data: &data})
}
