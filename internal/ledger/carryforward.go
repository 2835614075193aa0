package ledger

import (
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"gorm.io/gorm"
)

// Carryforward returns the opening balance a category inherits from the
// previous month.
//
// A positive closing balance rolls over in full. A negative one depends on
// the kind of category: payment categories keep it unchanged, unpaid card
// debt does not go away on the first of the month. For regular categories
// only the credit part of the overspending carries forward as debt; the
// cash part resets to zero and is deducted from Ready to Assign instead.
func (l Ledger) Carryforward(db *gorm.DB, category models.Category, month types.Month) (types.Milliunit, error) {
	previous := month.AddDate(0, -1)

	row, exists, err := l.fetchRow(db, category.ID, previous)
	if err != nil {
		return 0, err
	}

	if !exists {
		return 0, nil
	}

	if row.Available >= 0 {
		return row.Available, nil
	}

	if category.IsPaymentCategory() {
		return row.Available, nil
	}

	_, credit, err := l.splitOverspending(db, category, previous, row.Available)
	if err != nil {
		return 0, err
	}

	return -credit, nil
}
