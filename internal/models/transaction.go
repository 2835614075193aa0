package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClearedStatus is the reconciliation state of a transaction.
type ClearedStatus string

const (
	TransactionUncleared  ClearedStatus = "UNCLEARED"
	TransactionCleared    ClearedStatus = "CLEARED"
	TransactionReconciled ClearedStatus = "RECONCILED"
)

// Transaction represents a single booking on an account.
//
// The two halves of a transfer are two transactions that point at each
// other: an outflow on the source account and an inflow on the destination
// account. Transfers never have a category, moving money between accounts
// is not activity.
type Transaction struct {
	DefaultModel
	Account    Account `json:"-"`
	AccountID  uuid.UUID
	Category   *Category `json:"-"`
	CategoryID *uuid.UUID
	Date       time.Time // Day precision, the time of day is discarded
	Payee      string
	Note       string
	Inflow     types.Milliunit
	Outflow    types.Milliunit
	Cleared    ClearedStatus

	TransferTransaction   *Transaction `json:"-"`
	TransferTransactionID *uuid.UUID
}

var (
	ErrTransactionAmountNegative = errors.New("inflow and outflow must not be negative")
	ErrClearedStatusInvalid      = errors.New("the cleared status must be one of UNCLEARED, CLEARED, RECONCILED")
	ErrTransferWithCategory      = errors.New("transfers cannot have a category")
	ErrTransferAccountMissing    = errors.New("there is no account matching the transfer destination")
	ErrTransferSameAccount       = errors.New("transfers need two different accounts")
)

// IsTransfer reports whether the transaction is one half of a transfer.
func (t Transaction) IsTransfer() bool {
	return t.TransferTransactionID != nil
}

// AfterFind enforces dates to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - normalizes the date to UTC at day precision
//   - verifies that amounts are not negative
//   - defaults and verifies the cleared status
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Payee = strings.TrimSpace(t.Payee)
	t.Note = strings.TrimSpace(t.Note)

	// Ensure that the category ID is nil and not a pointer to a nil UUID
	// when it is not set
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.Inflow < 0 || t.Outflow < 0 {
		return ErrTransactionAmountNegative
	}

	if t.IsTransfer() && t.CategoryID != nil {
		return ErrTransferWithCategory
	}

	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	year, month, day := t.Date.In(time.UTC).Date()
	t.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	if t.Cleared == "" {
		t.Cleared = TransactionUncleared
	}

	switch t.Cleared {
	case TransactionUncleared, TransactionCleared, TransactionReconciled:
	default:
		return ErrClearedStatusInvalid
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the transaction before
// committing an update to the database.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Transaction)
	if tx.Statement.Changed("AccountID") || tx.Statement.Changed("CategoryID") {
		if !tx.Statement.Changed("AccountID") {
			toSave.AccountID = t.AccountID
		}
		if !tx.Statement.Changed("CategoryID") {
			toSave.CategoryID = t.CategoryID
		}

		if tx.Statement.Changed("CategoryID") && toSave.CategoryID != nil && t.IsTransfer() {
			return ErrTransferWithCategory
		}

		return t.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	var account Account
	err := tx.First(&account, toSave.AccountID).Error
	if err != nil {
		return err
	}

	if toSave.CategoryID != nil {
		var category Category
		err = tx.First(&category, *toSave.CategoryID).Error
		if err != nil {
			return err
		}

		budgetID, err := category.BudgetID(tx)
		if err != nil {
			return err
		}

		// Activity is booked against the category, the balance against the
		// account. Both have to live in the same budget.
		if budgetID != account.BudgetID {
			return ErrCategoryWrongBudget
		}
	}

	return nil
}

// Returns all transactions on this instance for export
func (Transaction) Export() (json.RawMessage, error) {
	var transactions []Transaction
	err := DB.Unscoped().Where(&Transaction{}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&transactions)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
