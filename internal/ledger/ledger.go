// Package ledger implements the budget ledger engine.
//
// For every (category, month) pair the engine maintains a ledger row with
// the money assigned to the category, the month's activity and the
// cumulative available sum. The carryforward rules decide how a month's
// closing balance opens the next one, the propagator keeps all stored
// months consistent after any change, and on top of the rows sit the
// credit card funding engine, the overspending classifier and the Ready
// to Assign calculation.
//
// All methods take the *gorm.DB to run on, so callers decide the
// transaction scope. Mutating operations are expected to run inside a
// database transaction: a failure at any point must roll back the whole
// mutation, including its propagation tail.
package ledger

import (
	"errors"
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger is the budget ledger engine.
//
// The zero value uses the system clock. Tests inject a fixed clock via Now
// so that "today" is deterministic.
type Ledger struct {
	Now func() time.Time
}

// today returns the current date at UTC midnight. Transactions dated after
// today are upcoming, not realized, and excluded from all sums.
func (l Ledger) today() time.Time {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}

	year, month, day := now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// fetchRow reads the ledger row of a category for a month. The second
// return value reports whether the row exists.
func (l Ledger) fetchRow(db *gorm.DB, categoryID uuid.UUID, month types.Month) (models.BudgetMonth, bool, error) {
	var row models.BudgetMonth

	err := db.
		Where("category_id = ? AND month = ?", categoryID, month).
		First(&row).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.BudgetMonth{}, false, nil
	}
	if err != nil {
		return models.BudgetMonth{}, false, err
	}

	return row, true, nil
}

// currentAvailable returns the available sum of a category for a month:
// the stored row's value, or the carryforward when no row exists.
func (l Ledger) currentAvailable(db *gorm.DB, category models.Category, month types.Month) (types.Milliunit, error) {
	row, exists, err := l.fetchRow(db, category.ID, month)
	if err != nil {
		return 0, err
	}

	if exists {
		return row.Available, nil
	}

	return l.Carryforward(db, category, month)
}

// splitOverspending decomposes a negative available sum into its cash and
// credit parts. Cash overspending is capped by the month's actual cash
// spending, everything beyond that happened on credit.
func (l Ledger) splitOverspending(db *gorm.DB, category models.Category, month types.Month, available types.Milliunit) (cash, credit types.Milliunit, err error) {
	total := -available

	cashSpending, err := category.CashSpending(db, month, l.today())
	if err != nil {
		return 0, 0, err
	}

	cash = min(total, cashSpending)
	credit = total - cash

	return cash, credit, nil
}

// writeRow persists a recomputed row. Ghost rows are deleted, never
// stored: a row with nothing assigned, no activity and nothing available
// carries no information, but would distort the month completeness check
// for Ready to Assign.
func (l Ledger) writeRow(db *gorm.DB, row models.BudgetMonth, exists bool) error {
	if row.IsGhost() {
		if !exists {
			return nil
		}

		return db.
			Where("category_id = ? AND month = ?", row.CategoryID, row.Month).
			Delete(&models.BudgetMonth{}).Error
	}

	if exists {
		return db.Model(&models.BudgetMonth{}).
			Where("category_id = ? AND month = ?", row.CategoryID, row.Month).
			Updates(map[string]any{
				"assigned":  row.Assigned,
				"activity":  row.Activity,
				"available": row.Available,
			}).Error
	}

	return db.Create(&row).Error
}

// recomputeRow recomputes one row in place: the stored assigned sum stays,
// activity is computed fresh from the transactions, the carryforward is
// resolved from the previous month and the available sum follows as
// carryforward + assigned + activity.
//
// Rows are created lazily. When no row is stored and the month has no
// activity, none is written; the read side derives the view from the
// carryforward instead.
func (l Ledger) recomputeRow(db *gorm.DB, category models.Category, month types.Month) error {
	activity, err := l.activity(db, category, month)
	if err != nil {
		return err
	}

	carryforward, err := l.Carryforward(db, category, month)
	if err != nil {
		return err
	}

	row, exists, err := l.fetchRow(db, category.ID, month)
	if err != nil {
		return err
	}

	if !exists {
		if activity == 0 {
			return nil
		}

		budgetID, err := category.BudgetID(db)
		if err != nil {
			return err
		}

		row = models.BudgetMonth{
			BudgetID:   budgetID,
			CategoryID: category.ID,
			Month:      month,
		}
	}

	row.Activity = activity
	row.Available = carryforward + row.Assigned + activity

	return l.writeRow(db, row, exists)
}

// activity computes the month's activity for a category. Regular
// categories sum their transactions. The activity of a payment category is
// managed by the engine instead: it is the funded share of the linked
// card's spending.
func (l Ledger) activity(db *gorm.DB, category models.Category, month types.Month) (types.Milliunit, error) {
	if !category.IsPaymentCategory() {
		return category.Activity(db, month, l.today())
	}

	var account models.Account
	err := db.First(&account, *category.LinkedAccountID).Error
	if err != nil {
		return 0, err
	}

	return l.fundedActivity(db, account, category, month)
}

// budgetCategories returns all non-income categories of a budget in stable
// order.
func (l Ledger) budgetCategories(db *gorm.DB, budgetID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category

	err := db.
		Joins("JOIN category_groups ON category_groups.id = categories.group_id AND category_groups.deleted_at IS NULL").
		Where("category_groups.budget_id = ?", budgetID).
		Where("category_groups.income = ?", false).
		Order("categories.sort_order ASC, categories.name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
