package ledger

import (
	"errors"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshFunding recomputes the payment category of a credit account for
// one month. It does nothing for accounts that are not credit accounts or
// have no payment category yet.
func (l Ledger) RefreshFunding(db *gorm.DB, account models.Account, month types.Month) error {
	if !account.IsCredit() {
		return nil
	}

	var category models.Category
	err := db.Where("linked_account_id = ?", account.ID).First(&category).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return l.RefreshActivity(db, category, month)
}

// fundedActivity computes the activity of a payment category: the share of
// the month's card spending that was backed by budgeted money, minus the
// payments already made towards the card.
//
// Spending moves per category. A charge is funded up to the cushion the
// category had before this month's card spending; whatever exceeds it
// stays behind on the spending category as credit overspending. A net
// refund moves in full and releases reserved money.
func (l Ledger) fundedActivity(db *gorm.DB, account models.Account, payment models.Category, month types.Month) (types.Milliunit, error) {
	type spending struct {
		CategoryID uuid.UUID
		Net        int64
	}

	var spendings []spending
	err := db.Model(&models.Transaction{}).
		Where("account_id = ?", account.ID).
		Where("category_id IS NOT NULL").
		Where("category_id != ?", payment.ID).
		Where("datetime(transactions.date) >= datetime(?)", month.First()).
		Where("datetime(transactions.date) < datetime(?)", month.AddDate(0, 1).First()).
		Where("datetime(transactions.date) <= datetime(?)", l.today()).
		Select("category_id, COALESCE(SUM(outflow - inflow), 0) AS net").
		Group("category_id").
		Scan(&spendings).Error
	if err != nil {
		return 0, err
	}

	var funded types.Milliunit
	for _, s := range spendings {
		netSpending := types.Milliunit(s.Net)

		if netSpending <= 0 {
			funded += netSpending
			continue
		}

		var category models.Category
		err := db.First(&category, s.CategoryID).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			// Deleted category, nothing is reserved for its spending
			continue
		}
		if err != nil {
			return 0, err
		}

		available, err := l.currentAvailable(db, category, month)
		if err != nil {
			return 0, err
		}

		// Undo this month's card spending to see the cushion the category
		// had before the charges
		availableBefore := available + netSpending

		funded += min(max(availableBefore, 0), netSpending)
	}

	payments, err := account.PaymentsReceived(db, month, l.today())
	if err != nil {
		return 0, err
	}

	return funded - payments, nil
}
