package v1

import (
	"fmt"
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	cv_uuid "github.com/centavo-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	Name     string             `json:"name" example:"Checking" default:""`                      // Name of the account
	Note     string             `json:"note" example:"My main account" default:""`               // A longer description for the account
	BudgetID uuid.UUID          `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget this account belongs to
	Type     models.AccountType `json:"type" example:"CHECKING" default:"CHECKING"`              // The type of the account
	Archived bool               `json:"archived" example:"true" default:"false"`                 // Is the account archived?
}

// model returns the database resource for the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:     editable.Name,
		Note:     editable.Note,
		BudgetID: editable.BudgetID,
		Type:     editable.Type,
		Archived: editable.Archived,
	}
}

type AccountLinks struct {
	Self            string `json:"self" example:"https://example.com/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The account itself
	Transactions    string `json:"transactions" example:"https://example.com/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions referencing the account
	PaymentCategory string `json:"paymentCategory" example:"https://example.com/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/payment-category"` // Endpoint to provision the payment category for a credit account
}

type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`

	// These fields are computed
	Balance           types.Milliunit `json:"balance" example:"2735170"`           // Balance of the account in milliunits, excluding future-dated transactions
	ReconciledBalance types.Milliunit `json:"reconciledBalance" example:"2539570"` // Balance over all reconciled transactions in milliunits
}

func newAccount(c *gin.Context, db *gorm.DB, model models.Account) (Account, error) {
	url := c.GetString(string(models.DBContextURL))

	account := Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:     model.Name,
			Note:     model.Note,
			BudgetID: model.BudgetID,
			Type:     model.Type,
			Archived: model.Archived,
		},
		Links: AccountLinks{
			Self:            fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions:    fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
			PaymentCategory: fmt.Sprintf("%s/v1/accounts/%s/payment-category", url, model.ID),
		},
	}

	balance, err := model.Balance(db, time.Now())
	if err != nil {
		return Account{}, err
	}
	account.Balance = balance

	reconciled, err := model.ReconciledBalance(db, time.Now())
	if err != nil {
		return Account{}, err
	}
	account.ReconciledBalance = reconciled

	return account, nil
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountQueryFilter struct {
	BudgetID cv_uuid.UUID `form:"budget"`                     // By budget ID
	Name     string       `form:"name" filterField:"false"`   // Fuzzy filter for the account name
	Note     string       `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Type     string       `form:"type"`                       // By the account type
	Archived bool         `form:"archived"`                   // Is the account archived?
	Search   string       `form:"search" filterField:"false"` // By string in name or note
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first Account returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of Accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		BudgetID: f.BudgetID.UUID,
		Type:     models.AccountType(f.Type),
		Archived: f.Archived,
	}
}

// PaymentCategoryEditable is the optional body for the payment category
// endpoint.
type PaymentCategoryEditable struct {
	Name string `json:"name" example:"Visa Gold" default:""` // Name for the payment category. Defaults to the account name.
}
