package v1

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/ledger"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssignmentEditable is the request body for assigning money to a
// category in a month.
type AssignmentEditable struct {
	Assigned decimal.Decimal `json:"assigned" example:"85440"` // The amount of money assigned to the category in this month, in milliunits
}

type CategoryMonthResponse struct {
	Data  *ledger.CategoryMonth `json:"data"`                                                          // The ledger values of the category for the month
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// parseCategoryMonth binds the category ID and month from the URI and
// loads the category.
func parseCategoryMonth(c *gin.Context) (models.Category, types.Month, error) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Category{}, types.Month(0), err
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		return models.Category{}, types.Month(0), err
	}

	return category, types.MonthOf(uri.Month), nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/categories/{id}/months/{month} [options]
func OptionsCategoryMonth(c *gin.Context) {
	_, _, err := parseCategoryMonth(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/categories/{id}/months/{month}/refresh [options]
func OptionsCategoryMonthRefresh(c *gin.Context) {
	_, _, err := parseCategoryMonth(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Get category month
// @Description	Returns the ledger values of a category for one month. For months without a stored row the carryforward from the previous month is shown as available.
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryMonthResponse
// @Failure		400		{object}	CategoryMonthResponse
// @Failure		404		{object}	CategoryMonthResponse
// @Failure		500		{object}	CategoryMonthResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/categories/{id}/months/{month} [get]
func GetCategoryMonth(c *gin.Context) {
	category, month, err := parseCategoryMonth(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryMonthResponse{
			Error: &s,
		})
		return
	}

	view, err := engine.CategoryMonth(models.DB, category, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryMonthResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryMonthResponse{Data: &view})
}

// @Summary		Set assigned money
// @Description	Sets the money assigned to the category for the month. Amounts beyond the representable ceiling are clamped, not rejected. The change propagates through all stored later months of the category.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryMonthResponse
// @Failure		400			{object}	CategoryMonthResponse
// @Failure		404			{object}	CategoryMonthResponse
// @Failure		500			{object}	CategoryMonthResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month		path		string				true	"The month in YYYY-MM format"
// @Param			assignment	body		AssignmentEditable	true	"Assignment"
// @Router			/v1/categories/{id}/months/{month} [patch]
func UpdateCategoryMonth(c *gin.Context) {
	category, month, err := parseCategoryMonth(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryMonthResponse{
			Error: &s,
		})
		return
	}

	var editable AssignmentEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryMonthResponse{
			Error: &s,
		})
		return
	}

	err = models.InTransaction(func(tx *gorm.DB) error {
		_, err := engine.UpdateAssignment(tx, category, month, editable.Assigned)
		return err
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryMonthResponse{
			Error: &s,
		})
		return
	}

	view, err := engine.CategoryMonth(models.DB, category, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryMonthResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryMonthResponse{Data: &view})
}

// @Summary		Refresh category month
// @Description	Recomputes the activity of the category for the month from its transactions and propagates the result. The ledger repairs itself through this endpoint if it ever disagrees with the transactions.
// @Tags			Categories
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/categories/{id}/months/{month}/refresh [post]
func RefreshCategoryMonth(c *gin.Context) {
	category, month, err := parseCategoryMonth(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.InTransaction(func(tx *gorm.DB) error {
		return engine.RefreshActivity(tx, category, month)
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
