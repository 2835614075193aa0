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

// Category is an envelope that money is assigned to and spent from.
//
// A category with a linked account is the payment category for that credit
// account. Its monthly activity is the spending funded on the card, not the
// raw transaction activity, see the ledger package.
type Category struct {
	DefaultModel
	Group           CategoryGroup `json:"-"`
	GroupID         uuid.UUID     `gorm:"uniqueIndex:category_name_group_id"`
	Name            string        `gorm:"uniqueIndex:category_name_group_id"`
	Note            string
	SortOrder       uint
	Archived        bool
	LinkedAccount   *Account   `json:"-"`
	LinkedAccountID *uuid.UUID `gorm:"uniqueIndex"`
}

var (
	ErrCategoryNameNotUnique    = errors.New("the category name must be unique for the category group")
	ErrAccountAlreadyLinked     = errors.New("there is already a payment category for this account")
	ErrNotCreditAccount         = errors.New("payment categories can only be linked to credit accounts")
	ErrCategoryBudgetChange     = errors.New("the category cannot be moved to a category group in a different budget")
	ErrLinkedAccountWrongBudget = errors.New("the linked account must belong to the same budget as the category")
)

// IsPaymentCategory reports whether this is the payment category of a
// credit account.
func (c Category) IsPaymentCategory() bool {
	return c.LinkedAccountID != nil
}

// BeforeSave trims whitespace from all strings.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	// Ensure that the linked account ID is nil and not a pointer to a nil
	// UUID when it is not set
	if c.LinkedAccountID != nil && *c.LinkedAccountID == uuid.Nil {
		c.LinkedAccountID = nil
	}

	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return c.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the category before
// committing an update to the database.
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Category)

	if tx.Statement.Changed("GroupID") {
		var newGroup CategoryGroup
		err := tx.First(&newGroup, toSave.GroupID).Error
		if err != nil {
			return err
		}

		var oldGroup CategoryGroup
		err = tx.First(&oldGroup, c.GroupID).Error
		if err != nil {
			return err
		}

		// Ledger rows are keyed by budget, moving a category across budgets
		// would leave them behind
		if newGroup.BudgetID != oldGroup.BudgetID {
			return ErrCategoryBudgetChange
		}
	}

	if tx.Statement.Changed("LinkedAccountID") && toSave.LinkedAccountID != nil {
		return c.checkLinkedAccount(tx, *toSave.LinkedAccountID, c.GroupID)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (c *Category) checkIntegrity(tx *gorm.DB, toSave Category) error {
	err := tx.First(&CategoryGroup{}, toSave.GroupID).Error
	if err != nil {
		return err
	}

	if toSave.LinkedAccountID != nil {
		return c.checkLinkedAccount(tx, *toSave.LinkedAccountID, toSave.GroupID)
	}

	return nil
}

// checkLinkedAccount verifies that the linked account can back a payment
// category: it has to exist, be a credit account and belong to the same
// budget as the category.
func (c *Category) checkLinkedAccount(tx *gorm.DB, accountID, groupID uuid.UUID) error {
	var account Account
	err := tx.First(&account, accountID).Error
	if err != nil {
		return err
	}

	if !account.IsCredit() {
		return ErrNotCreditAccount
	}

	var group CategoryGroup
	err = tx.First(&group, groupID).Error
	if err != nil {
		return err
	}

	if account.BudgetID != group.BudgetID {
		return ErrLinkedAccountWrongBudget
	}

	return nil
}

// BudgetID returns the ID of the budget the category belongs to.
func (c Category) BudgetID(db *gorm.DB) (uuid.UUID, error) {
	if c.GroupID != uuid.Nil && c.Group.ID == c.GroupID {
		return c.Group.BudgetID, nil
	}

	var group CategoryGroup
	err := db.First(&group, c.GroupID).Error
	if err != nil {
		return uuid.Nil, err
	}

	return group.BudgetID, nil
}

// IsIncome reports whether the category belongs to an income group.
func (c Category) IsIncome(db *gorm.DB) (bool, error) {
	if c.GroupID != uuid.Nil && c.Group.ID == c.GroupID {
		return c.Group.Income, nil
	}

	var group CategoryGroup
	err := db.First(&group, c.GroupID).Error
	if err != nil {
		return false, err
	}

	return group.Income, nil
}

// Activity returns the net transaction activity of the category for the
// month. Transactions dated after today do not count yet.
func (c Category) Activity(db *gorm.DB, month types.Month, today time.Time) (types.Milliunit, error) {
	var sum int64

	err := db.Model(&Transaction{}).
		Where("category_id = ?", c.ID).
		Where("datetime(transactions.date) >= datetime(?)", month.First()).
		Where("datetime(transactions.date) < datetime(?)", month.AddDate(0, 1).First()).
		Where("datetime(transactions.date) <= datetime(?)", today).
		Select("COALESCE(SUM(inflow - outflow), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}

	return types.Milliunit(sum), nil
}

// CashSpending returns the net cash outflow of the category for the month:
// spending on all non-credit accounts, floored at zero. Transactions dated
// after today do not count yet.
func (c Category) CashSpending(db *gorm.DB, month types.Month, today time.Time) (types.Milliunit, error) {
	var sum int64

	err := db.Model(&Transaction{}).
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("transactions.category_id = ?", c.ID).
		Where("accounts.type != ?", AccountTypeCredit).
		Where("datetime(transactions.date) >= datetime(?)", month.First()).
		Where("datetime(transactions.date) < datetime(?)", month.AddDate(0, 1).First()).
		Where("datetime(transactions.date) <= datetime(?)", today).
		Select("COALESCE(SUM(transactions.outflow - transactions.inflow), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}

	if sum < 0 {
		sum = 0
	}

	return types.Milliunit(sum), nil
}

// Returns all categories on this instance for export
func (Category) Export() (json.RawMessage, error) {
	var categories []Category
	err := DB.Unscoped().Where(&Category{}).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&categories)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
