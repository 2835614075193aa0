package ledger

import (
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OverspendingType states which kind of money a category overspent.
type OverspendingType string

const (
	OverspendingCash   OverspendingType = "cash"
	OverspendingCredit OverspendingType = "credit"
)

// OverspendingTypes classifies every non-income category of the budget
// that is overspent in the month. Categories with a non-negative available
// sum are omitted.
//
// Payment categories always count as credit: their negative available is
// unpaid card debt. Regular categories follow the cash/credit split, and
// when both parts are non-zero the category counts as cash overspent.
func (l Ledger) OverspendingTypes(db *gorm.DB, budget models.Budget, month types.Month) (map[uuid.UUID]OverspendingType, error) {
	categories, err := l.budgetCategories(db, budget.ID)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]OverspendingType)

	for _, category := range categories {
		available, err := l.currentAvailable(db, category, month)
		if err != nil {
			return nil, err
		}

		if available >= 0 {
			continue
		}

		if category.IsPaymentCategory() {
			result[category.ID] = OverspendingCredit
			continue
		}

		cash, _, err := l.splitOverspending(db, category, month, available)
		if err != nil {
			return nil, err
		}

		if cash == 0 {
			result[category.ID] = OverspendingCredit
			continue
		}

		result[category.ID] = OverspendingCash
	}

	return result, nil
}
