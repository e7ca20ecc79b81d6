package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffable/backend/internal/capacity"
	"github.com/staffable/backend/internal/httputil"
	"github.com/staffable/backend/internal/types"
	sb_uuid "github.com/staffable/backend/internal/uuid"
)

// RegisterCapacityRoutes registers the read-only capacity endpoints with
// the RouterGroup that is passed.
func RegisterCapacityRoutes(r *gin.RouterGroup, engine *capacity.Engine) {
	r.OPTIONS("", OptionsCapacity)
	r.GET("", GetCapacity(engine))

	r.OPTIONS("/conflicts", OptionsCapacityConflicts)
	r.GET("/conflicts", GetCapacityConflicts(engine))

	r.OPTIONS("/suggestions", OptionsCapacitySuggestions)
	r.GET("/suggestions", GetCapacitySuggestions(engine))
}

// CapacityQuery are the parameters shared by the capacity endpoints.
type CapacityQuery struct {
	OrganizationID sb_uuid.UUID `form:"organization"` // ID of the organization
	UserID         sb_uuid.UUID `form:"user"`         // ID of the user
	From           string       `form:"from"`         // First day of the range, YYYY-MM-DD
	Until          string       `form:"until"`        // Last day of the range, YYYY-MM-DD
	Percentage     uint         `form:"percentage"`   // The percentage to check or require
	Limit          int          `form:"limit"`        // Maximum number of suggestions
}

// dates parses the range bounds. gin's form binding cannot bind into
// types.Date, so the bounds travel as strings.
func (q CapacityQuery) dates() (from, until types.Date, err error) {
	from, err = types.ParseDate(q.From)
	if err != nil {
		return types.Date{}, types.Date{}, errDateParameter
	}

	until, err = types.ParseDate(q.Until)
	if err != nil {
		return types.Date{}, types.Date{}, errDateParameter
	}

	return from, until, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Capacity
// @Success		204
// @Router			/v1/capacity [options]
func OptionsCapacity(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Capacity
// @Success		204
// @Router			/v1/capacity/conflicts [options]
func OptionsCapacityConflicts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Capacity
// @Success		204
// @Router			/v1/capacity/suggestions [options]
func OptionsCapacitySuggestions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get capacity ledger
// @Description	Returns the per-day capacity ledger of a user for a date range, e.g. to render a heatmap. Days without entries are omitted and imply 0.
// @Tags			Capacity
// @Produce		json
// @Success		200	{object}	CapacityListResponse
// @Failure		400	{object}	CapacityListResponse
// @Failure		500	{object}	CapacityListResponse
// @Router			/v1/capacity [get]
// @Param			organization	query	string	true	"ID of the organization"
// @Param			user			query	string	true	"ID of the user"
// @Param			from			query	string	true	"First day of the range, YYYY-MM-DD"
// @Param			until			query	string	true	"Last day of the range, YYYY-MM-DD"
func GetCapacity(engine *capacity.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query CapacityQuery
		if err := c.ShouldBind(&query); err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, CapacityListResponse{Error: &e})
			return
		}

		if query.OrganizationID == sb_uuid.Nil {
			e := errOrganizationIDParameter.Error()
			c.JSON(http.StatusBadRequest, CapacityListResponse{Error: &e})
			return
		}

		if query.UserID == sb_uuid.Nil {
			e := errUserIDParameter.Error()
			c.JSON(http.StatusBadRequest, CapacityListResponse{Error: &e})
			return
		}

		from, until, err := query.dates()
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, CapacityListResponse{Error: &e})
			return
		}

		entries, err := engine.GetLedgerRange(c.Request.Context(), query.OrganizationID.UUID, query.UserID.UUID, from, until)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), CapacityListResponse{Error: &e})
			return
		}

		apiResources := make([]CapacityDay, 0)
		for _, entry := range entries {
			apiResources = append(apiResources, CapacityDay{
				Date:                entry.CapacityDate,
				AllocatedPercentage: entry.AllocatedPercentage,
			})
		}

		c.JSON(http.StatusOK, CapacityListResponse{Data: apiResources})
	}
}

// @Summary		Preview conflicts
// @Description	Checks a proposed allocation against the ledger without writing anything. An empty conflict list means the allocation is safe to create.
// @Tags			Capacity
// @Produce		json
// @Success		200	{object}	ConflictListResponse
// @Failure		400	{object}	ConflictListResponse
// @Failure		500	{object}	ConflictListResponse
// @Router			/v1/capacity/conflicts [get]
// @Param			organization	query	string	true	"ID of the organization"
// @Param			user			query	string	true	"ID of the user"
// @Param			from			query	string	true	"First day of the range, YYYY-MM-DD"
// @Param			until			query	string	true	"Last day of the range, YYYY-MM-DD"
// @Param			percentage		query	uint	true	"The proposed allocation percentage"
func GetCapacityConflicts(engine *capacity.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query CapacityQuery
		if err := c.ShouldBind(&query); err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, ConflictListResponse{Error: &e})
			return
		}

		if query.OrganizationID == sb_uuid.Nil {
			e := errOrganizationIDParameter.Error()
			c.JSON(http.StatusBadRequest, ConflictListResponse{Error: &e})
			return
		}

		if query.UserID == sb_uuid.Nil {
			e := errUserIDParameter.Error()
			c.JSON(http.StatusBadRequest, ConflictListResponse{Error: &e})
			return
		}

		if query.Percentage < 1 || query.Percentage > 100 {
			e := errPercentageParameter.Error()
			c.JSON(http.StatusBadRequest, ConflictListResponse{Error: &e})
			return
		}

		from, until, err := query.dates()
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, ConflictListResponse{Error: &e})
			return
		}

		conflicts, err := engine.CheckConflicts(c.Request.Context(), query.OrganizationID.UUID, query.UserID.UUID, from, until, query.Percentage)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ConflictListResponse{Error: &e})
			return
		}

		if conflicts == nil {
			conflicts = make([]capacity.ConflictDay, 0)
		}

		c.JSON(http.StatusOK, ConflictListResponse{Data: conflicts})
	}
}

// @Summary		Suggest users
// @Description	Returns users of the organization with enough spare capacity for the requested percentage over the range, most free first.
// @Tags			Capacity
// @Produce		json
// @Success		200	{object}	SuggestionListResponse
// @Failure		400	{object}	SuggestionListResponse
// @Failure		500	{object}	SuggestionListResponse
// @Router			/v1/capacity/suggestions [get]
// @Param			organization	query	string	true	"ID of the organization"
// @Param			from			query	string	true	"First day of the range, YYYY-MM-DD"
// @Param			until			query	string	true	"Last day of the range, YYYY-MM-DD"
// @Param			percentage		query	uint	true	"The required spare percentage"
// @Param			limit			query	int		false	"Maximum number of suggestions. Defaults to 3."
func GetCapacitySuggestions(engine *capacity.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query CapacityQuery
		if err := c.ShouldBind(&query); err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, SuggestionListResponse{Error: &e})
			return
		}

		if query.OrganizationID == sb_uuid.Nil {
			e := errOrganizationIDParameter.Error()
			c.JSON(http.StatusBadRequest, SuggestionListResponse{Error: &e})
			return
		}

		if query.Percentage < 1 || query.Percentage > 100 {
			e := errPercentageParameter.Error()
			c.JSON(http.StatusBadRequest, SuggestionListResponse{Error: &e})
			return
		}

		from, until, err := query.dates()
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, SuggestionListResponse{Error: &e})
			return
		}

		suggestions, err := engine.Suggest(c.Request.Context(), query.OrganizationID.UUID, from, until, query.Percentage, query.Limit)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SuggestionListResponse{Error: &e})
			return
		}

		if suggestions == nil {
			suggestions = make([]capacity.Suggestion, 0)
		}

		c.JSON(http.StatusOK, SuggestionListResponse{Data: suggestions})
	}
}

// CapacityDay is one day of the ledger in API representation.
type CapacityDay struct {
	Date                types.Date `json:"date" example:"2025-01-03"`        // The day
	AllocatedPercentage int        `json:"allocatedPercentage" example:"60"` // Total percentage allocated on that day
}

type CapacityListResponse struct {
	Data  []CapacityDay `json:"data"`                                                          // Ledger entries, ascending by date
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ConflictListResponse struct {
	Data  []capacity.ConflictDay `json:"data"`                                                     // Conflicting days, ascending by date
	Error *string                `json:"error" example:"the percentage must be between 1 and 100"` // The error, if any occurred
}

type SuggestionListResponse struct {
	Data  []capacity.Suggestion `json:"data"`                                                     // Suggested users, most free first
	Error *string               `json:"error" example:"the percentage must be between 1 and 100"` // The error, if any occurred
}
