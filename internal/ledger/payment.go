package ledger

import (
	"errors"

	"github.com/centavo-app/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// paymentGroupName is the category group that hosts payment categories.
const paymentGroupName = "Credit Card Payments"

// EnsurePaymentCategory returns the payment category of a credit account,
// creating it on first use.
//
// The category is created in the budget's "Credit Card Payments" group,
// which is created alongside when missing. name overrides the category
// name and defaults to the account name.
func (l Ledger) EnsurePaymentCategory(db *gorm.DB, account models.Account, name string) (models.Category, error) {
	if !account.IsCredit() {
		return models.Category{}, models.ErrNotCreditAccount
	}

	var category models.Category
	err := db.Where("linked_account_id = ?", account.ID).First(&category).Error
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Category{}, err
	}

	group, err := l.paymentGroup(db, account.BudgetID)
	if err != nil {
		return models.Category{}, err
	}

	if name == "" {
		name = account.Name
	}

	category = models.Category{
		GroupID:         group.ID,
		Name:            name,
		LinkedAccountID: &account.ID,
	}
	err = db.Create(&category).Error
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// paymentGroup returns the budget's category group for payment categories,
// creating it when missing.
func (l Ledger) paymentGroup(db *gorm.DB, budgetID uuid.UUID) (models.CategoryGroup, error) {
	var group models.CategoryGroup
	err := db.
		Where(&models.CategoryGroup{BudgetID: budgetID, Name: paymentGroupName}).
		First(&group).Error
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.CategoryGroup{}, err
	}

	group = models.CategoryGroup{
		BudgetID: budgetID,
		Name:     paymentGroupName,
	}
	err = db.Create(&group).Error
	if err != nil {
		return models.CategoryGroup{}, err
	}

	return group, nil
}
