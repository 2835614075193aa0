package v1

import (
	"fmt"

	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name     string `json:"name" example:"Household budget" default:""`           // Name of the budget
	Note     string `json:"note" example:"Our shared expenses" default:""`        // A longer description of the budget
	Currency string `json:"currency" example:"EUR" default:""`                    // ISO 4217 code of the currency, for display only
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
	}
}

type BudgetLinks struct {
	Self           string `json:"self" example:"https://example.com/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                    // The budget itself
	Accounts       string `json:"accounts" example:"https://example.com/v1/accounts?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`        // Accounts for this budget
	CategoryGroups string `json:"categoryGroups" example:"https://example.com/v1/category-groups?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Category groups for this budget
	Transactions   string `json:"transactions" example:"https://example.com/v1/transactions?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Transactions for this budget
	MatchRules     string `json:"matchRules" example:"https://example.com/v1/match-rules?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`    // Match rules for this budget
	Months         string `json:"months" example:"https://example.com/v1/months?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf&month=2024-03"` // The monthly ledger for this budget
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
		},
		Links: BudgetLinks{
			Self:           fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Accounts:       fmt.Sprintf("%s/v1/accounts?budget=%s", url, model.ID),
			CategoryGroups: fmt.Sprintf("%s/v1/category-groups?budget=%s", url, model.ID),
			Transactions:   fmt.Sprintf("%s/v1/transactions?budget=%s", url, model.ID),
			MatchRules:     fmt.Sprintf("%s/v1/match-rules?budget=%s", url, model.ID),
			Months:         fmt.Sprintf("%s/v1/months?budget=%s&month=YYYY-MM", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Currency string `form:"currency"`                   // By the currency code
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Currency: f.Currency,
	}
}
