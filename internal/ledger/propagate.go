package ledger

import (
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"gorm.io/gorm"
)

// Propagate recomputes the months after a changed row.
//
// The walk is iterative and visits only months that already have a stored
// row, stopping at the first gap: months beyond the stored horizon derive
// their view from the carryforward on read, so there is nothing to update
// there and no rows are created. Every visited row gets the full
// recomputation, the cash/credit split of a later month may change with
// the new carryforward.
func (l Ledger) Propagate(db *gorm.DB, category models.Category, from types.Month) error {
	for month := from.AddDate(0, 1); ; month = month.AddDate(0, 1) {
		_, exists, err := l.fetchRow(db, category.ID, month)
		if err != nil {
			return err
		}

		if !exists {
			return nil
		}

		err = l.recomputeRow(db, category, month)
		if err != nil {
			return err
		}
	}
}
