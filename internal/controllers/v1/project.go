package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffable/backend/internal/httputil"
	"github.com/staffable/backend/internal/models"
)

// RegisterProjectRoutes registers the routes for projects with
// the RouterGroup that is passed.
func RegisterProjectRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsProjectList)
		r.GET("", GetProjects)
		r.POST("", CreateProject)
	}

	{
		r.OPTIONS("/:id", OptionsProjectDetail)
		r.GET("/:id", GetProject)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v1/projects [options]
func OptionsProjectList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id} [options]
func OptionsProjectDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	err = models.DB.First(&models.Project{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create project
// @Description	Creates a new project in an organization
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		201		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		404		{object}	ProjectResponse
// @Failure		500		{object}	ProjectResponse
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects [post]
func CreateProject(c *gin.Context) {
	var editable ProjectEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProjectResponse{Error: &e})
		return
	}

	project := editable.model()
	err = models.DB.Create(&project).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &e})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusCreated, ProjectResponse{Data: &data})
}

// @Summary		List projects
// @Description	Returns a list of projects
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectListResponse
// @Failure		500	{object}	ProjectListResponse
// @Router			/v1/projects [get]
// @Param			organization	query	string	false	"Filter by organization ID"
// @Param			archived		query	bool	false	"Is the project archived?"
func GetProjects(c *gin.Context) {
	var filter ProjectQueryFilter

	if err := c.ShouldBind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProjectListResponse{Error: &e})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	var projects []models.Project
	err := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...).
		Find(&projects).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectListResponse{Error: &e})
		return
	}

	apiResources := make([]Project, 0)
	for _, project := range projects {
		apiResources = append(apiResources, newProject(c, project))
	}

	c.JSON(http.StatusOK, ProjectListResponse{Data: apiResources})
}

// @Summary		Get project
// @Description	Returns a specific project
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		400	{object}	ProjectResponse
// @Failure		404	{object}	ProjectResponse
// @Failure		500	{object}	ProjectResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id} [get]
func GetProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ProjectResponse{Error: &e})
		return
	}

	var project models.Project
	err = models.DB.First(&project, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &e})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}
