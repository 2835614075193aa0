package v1

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/ledger"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	cv_uuid "github.com/centavo-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MonthResponse struct {
	Data  *ledger.Month `json:"data"`  // Data for the month
	Error *string       `json:"error"` // The error, if any occurred
}

type MonthBreakdownResponse struct {
	Data  *ledger.ReadyToAssignBreakdown `json:"data"`  // Composition of the Ready to Assign sum
	Error *string                        `json:"error"` // The error, if any occurred
}

type MonthOverspendingResponse struct {
	Data  map[uuid.UUID]ledger.OverspendingType `json:"data"`  // The overspending type by category ID
	Error *string                               `json:"error"` // The error, if any occurred
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}

	{
		r.OPTIONS("/breakdown", OptionsMonthBreakdown)
		r.GET("/breakdown", GetMonthBreakdown)
	}

	{
		r.OPTIONS("/overspending", OptionsMonthOverspending)
		r.GET("/overspending", GetMonthOverspending)
	}

	{
		r.OPTIONS("/refresh", OptionsMonthRefresh)
		r.POST("/refresh", RefreshMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Months
// @Success		204
// @Router			/v1/months/breakdown [options]
func OptionsMonthBreakdown(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Months
// @Success		204
// @Router			/v1/months/overspending [options]
func OptionsMonthOverspending(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Months
// @Success		204
// @Router			/v1/months/refresh [options]
func OptionsMonthRefresh(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get data about a month
// @Description	Returns the full ledger view of a budget for a specific month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			budget	query		string	true	"ID formatted as string"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	month, budget, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data, err := engine.MonthView(models.DB, budget, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Get the composition of Ready to Assign
// @Description	Returns the Ready to Assign sum for a month together with the sums it is composed of
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthBreakdownResponse
// @Failure		400		{object}	MonthBreakdownResponse
// @Failure		404		{object}	MonthBreakdownResponse
// @Failure		500		{object}	MonthBreakdownResponse
// @Param			budget	query		string	true	"ID formatted as string"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/breakdown [get]
func GetMonthBreakdown(c *gin.Context) {
	month, budget, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthBreakdownResponse{
			Error: &s,
		})
		return
	}

	data, err := engine.ReadyToAssignBreakdown(models.DB, budget, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthBreakdownResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthBreakdownResponse{Data: &data})
}

// @Summary		Get overspent categories
// @Description	Returns all categories that are overspent in the month, with the type of money they overspent
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthOverspendingResponse
// @Failure		400		{object}	MonthOverspendingResponse
// @Failure		404		{object}	MonthOverspendingResponse
// @Failure		500		{object}	MonthOverspendingResponse
// @Param			budget	query		string	true	"ID formatted as string"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/overspending [get]
func GetMonthOverspending(c *gin.Context) {
	month, budget, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthOverspendingResponse{
			Error: &s,
		})
		return
	}

	data, err := engine.OverspendingTypes(models.DB, budget, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthOverspendingResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthOverspendingResponse{Data: data})
}

// @Summary		Recompute a month
// @Description	Recomputes the ledger rows of all categories of the budget for the month from the recorded transactions
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			budget	query		string	true	"ID formatted as string"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/refresh [post]
func RefreshMonth(c *gin.Context) {
	month, budget, err := parseMonthQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.InTransaction(func(tx *gorm.DB) error {
		return engine.RefreshAllActivity(tx, budget, month)
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// parseMonthQuery parses the month and budget query parameters that the
// endpoints for months share.
//
// It verifies that the requested budget exists and returns the budget
// resource itself.
func parseMonthQuery(c *gin.Context) (types.Month, models.Budget, error) {
	var query struct {
		QueryMonth
		BudgetID cv_uuid.UUID `form:"budget" example:"81b0c9ce-6fd3-4e1e-becc-106055898a2a"`
	}

	if err := c.BindQuery(&query); err != nil {
		return 0, models.Budget{}, err
	}

	if query.Month.IsZero() {
		return 0, models.Budget{}, errMonthNotSetInQuery
	}

	if query.BudgetID == cv_uuid.Nil {
		return 0, models.Budget{}, errBudgetNotSetInQuery
	}

	var budget models.Budget
	err := models.DB.First(&budget, query.BudgetID).Error
	if err != nil {
		return 0, models.Budget{}, err
	}

	return types.MonthOf(query.Month), budget, nil
}
