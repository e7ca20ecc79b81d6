package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffable/backend/internal/capacity"
	"github.com/staffable/backend/internal/httputil"
	"github.com/staffable/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
//
// All writes go through the allocation engine, the handlers never touch
// the allocations table or the capacity ledger directly.
func RegisterAllocationRoutes(r *gin.RouterGroup, engine *capacity.Engine) {
	// Root group
	{
		r.OPTIONS("", OptionsAllocationList)
		r.GET("", GetAllocations)
		r.POST("", CreateAllocation(engine))
	}

	// Allocation with ID
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", GetAllocation)
		r.DELETE("/:id", DeleteAllocation(engine))
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	err = models.DB.First(&models.Allocation{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create allocation
// @Description	Allocates a user to a project for a date range. Refused with the conflicting days and alternative users when any day would exceed the user's capacity.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		201			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		409			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations [post]
func CreateAllocation(engine *capacity.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable AllocationEditable

		err := httputil.BindData(c, &editable)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, AllocationResponse{Error: &e})
			return
		}

		allocation, err := engine.CreateAllocation(c.Request.Context(), editable.create())
		if err != nil {
			e := err.Error()

			// A conflict is a domain result, the response carries the
			// conflicting days and ranked alternatives for rendering
			var overallocation *capacity.OverallocationError
			if errors.As(err, &overallocation) {
				c.JSON(http.StatusConflict, AllocationResponse{
					Error:       &e,
					Conflicts:   overallocation.Conflicts,
					Suggestions: overallocation.Suggestions,
				})
				return
			}

			c.JSON(status(err), AllocationResponse{Error: &e})
			return
		}

		data := newAllocation(c, allocation)
		c.JSON(http.StatusCreated, AllocationResponse{Data: &data})
	}
}

// @Summary		List allocations
// @Description	Returns a list of allocations
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationListResponse
// @Failure		400	{object}	AllocationListResponse
// @Failure		500	{object}	AllocationListResponse
// @Router			/v1/allocations [get]
// @Param			organization	query	string	false	"Filter by organization ID"
// @Param			user			query	string	false	"Filter by user ID"
// @Param			project			query	string	false	"Filter by project ID"
// @Param			offset			query	uint	false	"The offset of the first Allocation returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Allocations to return. Defaults to 50."
func GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter

	if err := c.ShouldBind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{Error: &e})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("date(start_date) ASC, datetime(created_at) ASC").
		Where(filter.model(), queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Allocations and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var allocations []models.Allocation
	err := q.Find(&allocations).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationListResponse{Error: &e})
		return
	}

	apiResources := make([]Allocation, 0)
	for _, allocation := range allocations {
		apiResources = append(apiResources, newAllocation(c, allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation
// @Description	Returns a specific allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [get]
func GetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{Error: &e})
		return
	}

	var allocation models.Allocation
	err = models.DB.First(&allocation, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	data := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &data})
}

// @Summary		Delete allocation
// @Description	Deletes an allocation and reverses its capacity ledger entries
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [delete]
func DeleteAllocation(engine *capacity.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri URIID
		err := c.ShouldBindUri(&uri)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
			return
		}

		err = engine.DeleteAllocation(c.Request.Context(), uri.ID.UUID)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.JSON(http.StatusNoContent, nil)
	}
}
