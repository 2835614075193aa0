package ledger

import (
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"gorm.io/gorm"
)

// RefreshActivity recomputes the ledger row of a category for one month
// from its transactions and the carryforward, then walks the following
// months so that the cumulative sums stay consistent.
//
// Categories in income groups are outside the ledger and never get rows,
// refreshing one is a no-op.
func (l Ledger) RefreshActivity(db *gorm.DB, category models.Category, month types.Month) error {
	income, err := category.IsIncome(db)
	if err != nil {
		return err
	}
	if income {
		return nil
	}

	err = l.recomputeRow(db, category, month)
	if err != nil {
		return err
	}

	return l.Propagate(db, category, month)
}

// RefreshAllActivity recomputes the rows of every non-income category of
// the budget for the month. Regular categories go first: the funded
// activity of a payment category depends on their fresh available sums.
//
// The recomputation only reads stored state, so running it twice leaves
// the ledger unchanged and a failed run can simply be repeated.
func (l Ledger) RefreshAllActivity(db *gorm.DB, budget models.Budget, month types.Month) error {
	categories, err := l.budgetCategories(db, budget.ID)
	if err != nil {
		return err
	}

	for _, category := range categories {
		if category.IsPaymentCategory() {
			continue
		}

		err = l.RefreshActivity(db, category, month)
		if err != nil {
			return err
		}
	}

	for _, category := range categories {
		if !category.IsPaymentCategory() {
			continue
		}

		err = l.RefreshActivity(db, category, month)
		if err != nil {
			return err
		}
	}

	return nil
}
