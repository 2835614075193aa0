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

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date       time.Time            `json:"date" example:"2024-03-12T00:00:00Z"`                            // Date of the transaction, only the day is used
	AccountID  uuid.UUID            `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`       // ID of the account the transaction is booked on
	CategoryID *uuid.UUID           `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`      // ID of the category. null for uncategorized transactions and transfers
	Payee      string               `json:"payee" example:"Grocery store" default:""`                       // The payee of the transaction
	Note       string               `json:"note" example:"Week 11 groceries" default:""`                    // A longer description of the transaction
	Inflow     types.Milliunit      `json:"inflow" example:"0" default:"0"`                                 // Money flowing into the account, in milliunits
	Outflow    types.Milliunit      `json:"outflow" example:"73120" default:"0"`                            // Money flowing out of the account, in milliunits
	Cleared    models.ClearedStatus `json:"cleared" example:"UNCLEARED" default:"UNCLEARED"`                // Reconciliation state of the transaction

	// TransferAccountID can only be set on creation. When it is set, the
	// outflow is moved to that account and the two transactions form a
	// transfer. Transfers never have a category.
	TransferAccountID *uuid.UUID `json:"transferAccountId" example:"053a14c1-e44d-4d9f-abba-b05cd3008f36"` // ID of the account the outflow is transferred to
}

// model returns the database resource for the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:       editable.Date,
		AccountID:  editable.AccountID,
		CategoryID: editable.CategoryID,
		Payee:      editable.Payee,
		Note:       editable.Note,
		Inflow:     editable.Inflow,
		Outflow:    editable.Outflow,
		Cleared:    editable.Cleared,
	}
}

type TransactionLinks struct {
	Self                string `json:"self" example:"https://example.com/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`                // The transaction itself
	Account             string `json:"account" example:"https://example.com/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                 // The account of the transaction
	TransferTransaction string `json:"transferTransaction,omitempty" example:"https://example.com/v1/transactions/c55e2ecb-8867-4c4d-9129-c9f09b34a8cd"` // The other half of the transfer, if the transaction is one
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, db *gorm.DB, model models.Transaction) (Transaction, error) {
	url := c.GetString(string(models.DBContextURL))

	transaction := Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:       model.Date,
			AccountID:  model.AccountID,
			CategoryID: model.CategoryID,
			Payee:      model.Payee,
			Note:       model.Note,
			Inflow:     model.Inflow,
			Outflow:    model.Outflow,
			Cleared:    model.Cleared,
		},
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}

	// For a transfer, the account of the other half is part of the
	// response
	if model.IsTransfer() {
		var other models.Transaction
		err := db.First(&other, *model.TransferTransactionID).Error
		if err != nil {
			return Transaction{}, err
		}

		transaction.TransferAccountID = &other.AccountID
		transaction.Links.TransferTransaction = fmt.Sprintf("%s/v1/transactions/%s", url, other.ID)
	}

	return transaction, nil
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Date       time.Time    `form:"date" filterField:"false" time_format:"RFC3339"`      // Date of the transaction. Ignores the time, matches on the day
	FromDate   time.Time    `form:"fromDate" filterField:"false" time_format:"RFC3339"`  // Transactions at and after this date
	UntilDate  time.Time    `form:"untilDate" filterField:"false" time_format:"RFC3339"` // Transactions before and at this date
	AccountID  cv_uuid.UUID `form:"account"`                                             // By ID of the account
	BudgetID   cv_uuid.UUID `form:"budget" filterField:"false"`                          // By ID of the budget
	CategoryID cv_uuid.UUID `form:"category" filterField:"false"`                        // By ID of the category. An empty value matches uncategorized transactions
	Payee      string       `form:"payee" filterField:"false"`                           // By payee
	Note       string       `form:"note" filterField:"false"`                            // By note
	Cleared    string       `form:"cleared"`                                             // By reconciliation state
	Transfer   bool         `form:"transfer" filterField:"false"`                        // Only transfers (true) or only regular transactions (false)
	Search     string       `form:"search" filterField:"false"`                          // By string in payee or note
	Offset     uint         `form:"offset" filterField:"false"`                          // The offset of the first Transaction returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`                           // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		AccountID: f.AccountID.UUID,
		Cleared:   models.ClearedStatus(f.Cleared),
	}
}
