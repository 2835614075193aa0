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

// AccountType determines how an account participates in the budget.
// Spending on credit accounts is funded through the account's payment
// category instead of leaving the budget directly.
type AccountType string

const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeCash     AccountType = "CASH"
	AccountTypeCredit   AccountType = "CREDIT"
)

// Account represents an asset or credit account, e.g. a bank account or a
// credit card.
type Account struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `gorm:"uniqueIndex:account_name_budget_id"`
	Name     string    `gorm:"uniqueIndex:account_name_budget_id"`
	Type     AccountType
	Note     string
	Archived bool
}

var (
	ErrAccountNameNotUnique      = errors.New("the account name must be unique for the budget")
	ErrAccountTypeInvalid        = errors.New("the account type must be one of CHECKING, SAVINGS, CASH, CREDIT")
	ErrAccountHasPaymentCategory = errors.New("the account type cannot be changed while a payment category is linked to it")
)

// IsCredit reports whether the account is a credit account.
func (a Account) IsCredit() bool {
	return a.Type == AccountTypeCredit
}

// BeforeSave defaults the account type and trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	if a.Type == "" {
		a.Type = AccountTypeChecking
	}

	switch a.Type {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCash, AccountTypeCredit:
	default:
		return ErrAccountTypeInvalid
	}

	return nil
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Account)
	return a.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the account before
// committing an update to the database.
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Account)
	if tx.Statement.Changed("BudgetID") {
		err := a.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	// The payment category of a credit account only makes sense as long as
	// the account stays a credit account.
	if tx.Statement.Changed("Type") && !toSave.IsCredit() {
		var count int64
		err := tx.Model(&Category{}).Where("linked_account_id = ?", a.ID).Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrAccountHasPaymentCategory
		}
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *Account) checkIntegrity(tx *gorm.DB, toSave Account) error {
	return tx.First(&Budget{}, toSave.BudgetID).Error
}

// Balance returns the account balance over all transactions dated up to and
// including today.
func (a Account) Balance(db *gorm.DB, today time.Time) (types.Milliunit, error) {
	var balance int64

	err := db.Model(&Transaction{}).
		Where("account_id = ?", a.ID).
		Where("datetime(transactions.date) <= datetime(?)", today).
		Select("COALESCE(SUM(inflow - outflow), 0)").
		Scan(&balance).Error
	if err != nil {
		return 0, err
	}

	return types.Milliunit(balance), nil
}

// ReconciledBalance returns the balance over all reconciled transactions
// dated up to and including today.
func (a Account) ReconciledBalance(db *gorm.DB, today time.Time) (types.Milliunit, error) {
	var balance int64

	err := db.Model(&Transaction{}).
		Where("account_id = ?", a.ID).
		Where("cleared = ?", TransactionReconciled).
		Where("datetime(transactions.date) <= datetime(?)", today).
		Select("COALESCE(SUM(inflow - outflow), 0)").
		Scan(&balance).Error
	if err != nil {
		return 0, err
	}

	return types.Milliunit(balance), nil
}

// PaymentsReceived returns the sum of transfers into the account during the
// month, up to and including today. For a credit account these are the
// payments the user made towards the card.
func (a Account) PaymentsReceived(db *gorm.DB, month types.Month, today time.Time) (types.Milliunit, error) {
	var sum int64

	err := db.Model(&Transaction{}).
		Where("account_id = ?", a.ID).
		Where("transfer_transaction_id IS NOT NULL").
		Where("category_id IS NULL").
		Where("datetime(transactions.date) >= datetime(?)", month.First()).
		Where("datetime(transactions.date) < datetime(?)", month.AddDate(0, 1).First()).
		Where("datetime(transactions.date) <= datetime(?)", today).
		Select("COALESCE(SUM(inflow), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}

	return types.Milliunit(sum), nil
}

// Transactions returns all transactions for this account.
func (a Account) Transactions(db *gorm.DB) []Transaction {
	var transactions []Transaction

	db.Where(Transaction{AccountID: a.ID}).Find(&transactions)
	return transactions
}

// Returns all accounts on this instance for export
func (Account) Export() (json.RawMessage, error) {
	var accounts []Account
	err := DB.Unscoped().Where(&Account{}).Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&accounts)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
