package v1

import (
	"fmt"

	"github.com/centavo-app/backend/internal/models"
	cv_uuid "github.com/centavo-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryGroupEditable represents all user configurable parameters
type CategoryGroupEditable struct {
	Name      string    `json:"name" example:"Everyday Expenses" default:""`              // Name of the category group
	BudgetID  uuid.UUID `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`  // ID of the budget the category group belongs to
	Note      string    `json:"note" example:"Groceries, eating out, …" default:""`       // Notes about the category group
	SortOrder uint      `json:"sortOrder" example:"3" default:"0"`                        // Position of the group in the budget
	Income    bool      `json:"income" example:"false" default:"false"`                   // Is this the income group? Categories in it are outside the monthly ledger
	Archived  bool      `json:"archived" example:"true" default:"false"`                  // Is the category group archived?
}

func (editable CategoryGroupEditable) model() models.CategoryGroup {
	return models.CategoryGroup{
		BudgetID:  editable.BudgetID,
		Name:      editable.Name,
		Note:      editable.Note,
		SortOrder: editable.SortOrder,
		Income:    editable.Income,
		Archived:  editable.Archived,
	}
}

type CategoryGroupLinks struct {
	Self       string `json:"self" example:"https://example.com/v1/category-groups/3b1ea324-d438-4419-882a-2fc91d71772f"`             // The category group itself
	Categories string `json:"categories" example:"https://example.com/v1/categories?group=3b1ea324-d438-4419-882a-2fc91d71772f"` // Categories in this group
}

type CategoryGroup struct {
	models.DefaultModel
	CategoryGroupEditable
	Links CategoryGroupLinks `json:"links"`
}

func newCategoryGroup(c *gin.Context, model models.CategoryGroup) CategoryGroup {
	url := c.GetString(string(models.DBContextURL))

	return CategoryGroup{
		DefaultModel: model.DefaultModel,
		CategoryGroupEditable: CategoryGroupEditable{
			BudgetID:  model.BudgetID,
			Name:      model.Name,
			Note:      model.Note,
			SortOrder: model.SortOrder,
			Income:    model.Income,
			Archived:  model.Archived,
		},
		Links: CategoryGroupLinks{
			Self:       fmt.Sprintf("%s/v1/category-groups/%s", url, model.ID),
			Categories: fmt.Sprintf("%s/v1/categories?group=%s", url, model.ID),
		},
	}
}

type CategoryGroupListResponse struct {
	Data       []CategoryGroup `json:"data"`                                                          // List of category groups
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type CategoryGroupCreateResponse struct {
	Data  []CategoryGroupResponse `json:"data"`                                                          // List of the created category groups or their respective error
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (g *CategoryGroupCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	g.Data = append(g.Data, CategoryGroupResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryGroupResponse struct {
	Data  *CategoryGroup `json:"data"`                                                          // Data for the category group
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryGroupQueryFilter struct {
	BudgetID cv_uuid.UUID `form:"budget"`                     // By ID of the budget
	Name     string       `form:"name" filterField:"false"`   // By name
	Note     string       `form:"note" filterField:"false"`   // By note
	Income   bool         `form:"income"`                     // Is this the income group?
	Archived bool         `form:"archived"`                   // Is the category group archived?
	Search   string       `form:"search" filterField:"false"` // By string in name or note
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first Category Group returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of Category Groups to return. Defaults to 50.
}

func (f CategoryGroupQueryFilter) model() models.CategoryGroup {
	return models.CategoryGroup{
		BudgetID: f.BudgetID.UUID,
		Income:   f.Income,
		Archived: f.Archived,
	}
}
