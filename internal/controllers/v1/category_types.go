package v1

import (
	"fmt"

	"github.com/centavo-app/backend/internal/models"
	cv_uuid "github.com/centavo-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name      string    `json:"name" example:"Groceries" default:""`                   // Name of the category
	GroupID   uuid.UUID `json:"groupId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category group the category belongs to
	Note      string    `json:"note" example:"Everything edible" default:""`           // Notes about the category
	SortOrder uint      `json:"sortOrder" example:"1" default:"0"`                     // Position of the category in its group
	Archived  bool      `json:"archived" example:"true" default:"false"`               // Is the category archived?
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		GroupID:   editable.GroupID,
		Name:      editable.Name,
		Note:      editable.Note,
		SortOrder: editable.SortOrder,
		Archived:  editable.Archived,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                     // The category itself
	Group        string `json:"group" example:"https://example.com/v1/category-groups/e9287ceb-11b6-4184-87e7-bf6dbaa27b54"`               // The category group the category belongs to
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"`  // Transactions for this category
	Months       string `json:"months" example:"https://example.com/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f/months/YYYY-MM"` // The monthly ledger rows for this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`

	// LinkedAccountID is read only. It is set through the payment category
	// endpoint of the linked credit account.
	LinkedAccountID *uuid.UUID `json:"linkedAccountId" example:"053a14c1-e44d-4d9f-abba-b05cd3008f36"` // Set to the account ID for payment categories
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			GroupID:   model.GroupID,
			Name:      model.Name,
			Note:      model.Note,
			SortOrder: model.SortOrder,
			Archived:  model.Archived,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Group:        fmt.Sprintf("%s/v1/category-groups/%s", url, model.GroupID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
			Months:       fmt.Sprintf("%s/v1/categories/%s/months/YYYY-MM", url, model.ID),
		},
		LinkedAccountID: model.LinkedAccountID,
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	GroupID  cv_uuid.UUID `form:"group"`                      // By ID of the category group
	Name     string       `form:"name" filterField:"false"`   // By name
	Note     string       `form:"note" filterField:"false"`   // By note
	Archived bool         `form:"archived"`                   // Is the category archived?
	Search   string       `form:"search" filterField:"false"` // By string in name or note
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		GroupID:  f.GroupID.UUID,
		Archived: f.Archived,
	}
}
