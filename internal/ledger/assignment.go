package ledger

import (
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UpdateAssignment sets the assigned amount of a category for a month and
// returns the resulting row.
//
// Amounts beyond MaxAssignable are clamped to the ceiling and logged, not
// rejected. A row whose fields all collapse to zero is deleted and
// returned as all-zero. The change is propagated through the following
// stored months.
//
// Categories in income groups are outside the ledger, money cannot be
// assigned to them.
func (l Ledger) UpdateAssignment(db *gorm.DB, category models.Category, month types.Month, amount decimal.Decimal) (models.BudgetMonth, error) {
	income, err := category.IsIncome(db)
	if err != nil {
		return models.BudgetMonth{}, err
	}
	if income {
		return models.BudgetMonth{CategoryID: category.ID, Month: month}, nil
	}

	assigned, clamped := types.ClampAssignable(amount)
	if clamped {
		log.Warn().
			Str("category", category.ID.String()).
			Str("month", month.String()).
			Str("amount", amount.String()).
			Msg("clamping assignment to the representable range")
	}

	row, exists, err := l.fetchRow(db, category.ID, month)
	if err != nil {
		return models.BudgetMonth{}, err
	}

	if !exists {
		if assigned == 0 {
			return models.BudgetMonth{CategoryID: category.ID, Month: month}, nil
		}

		budgetID, err := category.BudgetID(db)
		if err != nil {
			return models.BudgetMonth{}, err
		}

		carryforward, err := l.Carryforward(db, category, month)
		if err != nil {
			return models.BudgetMonth{}, err
		}

		// A missing row means no recorded activity, the available sum is
		// the carryforward plus the new assignment
		row = models.BudgetMonth{
			BudgetID:   budgetID,
			CategoryID: category.ID,
			Month:      month,
			Assigned:   assigned,
			Available:  carryforward + assigned,
		}

		err = l.writeRow(db, row, false)
		if err != nil {
			return models.BudgetMonth{}, err
		}

		return row, l.Propagate(db, category, month)
	}

	delta := assigned - row.Assigned
	row.Assigned = assigned
	row.Available += delta

	err = l.writeRow(db, row, true)
	if err != nil {
		return models.BudgetMonth{}, err
	}

	return row, l.Propagate(db, category, month)
}
