package ledger

import (
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// completeMonthThreshold is the number of rows a month needs to count as
// fully initialized. Sparser months are usually the product of a single
// stray edit in a far-away month and would make a bad reference point.
const completeMonthThreshold = 10

// ReadyToAssignBreakdown is the composition of a month's Ready to Assign
// sum. The left-over sum is derived from the other components, nothing
// beyond the ledger rows is stored.
type ReadyToAssignBreakdown struct {
	ReadyToAssign                 types.Milliunit `json:"readyToAssign" example:"352500"`             // Money not yet assigned to any category
	LeftOverFromPreviousMonth     types.Milliunit `json:"leftOverFromPreviousMonth" example:"100000"` // What the previous month left unassigned
	InflowThisMonth               types.Milliunit `json:"inflowThisMonth" example:"2317340"`          // Net inflow on non-credit accounts this month
	AssignedThisMonth             types.Milliunit `json:"assignedThisMonth" example:"2100000"`        // Money assigned in this month
	AssignedInFuture              types.Milliunit `json:"assignedInFuture" example:"50000"`           // Money assigned in months after this one
	CashOverspendingPreviousMonth types.Milliunit `json:"cashOverspendingPreviousMonth" example:"0"`  // Cash overspent last month, deducted here
	PositiveCreditCardBalances    types.Milliunit `json:"positiveCreditCardBalances" example:"0"`     // Credit cards in credit count as cash
}

// ReadyToAssign returns the money of the budget that is not assigned to
// any category.
//
// The calculation starts from the real cash in the budget's accounts and
// subtracts everything the ledger already accounts for: the available sums
// of the latest complete month, assignments made beyond it, and the credit
// part of that month's overspending, which never reduced any cash balance
// but drags the available sums down.
//
// For months before the current one a negative result clamps to zero, the
// overspending has already been carried forward.
func (l Ledger) ReadyToAssign(db *gorm.DB, budget models.Budget, month types.Month) (types.Milliunit, error) {
	cash, err := l.cashBalance(db, budget.ID)
	if err != nil {
		return 0, err
	}

	positive, err := l.positiveCreditBalances(db, budget.ID)
	if err != nil {
		return 0, err
	}

	reference, err := l.latestCompleteMonth(db, budget.ID)
	if err != nil {
		return 0, err
	}

	var totalAvailable, futureAssigned, correction types.Milliunit
	if !reference.IsZero() {
		totalAvailable, err = l.availableSum(db, budget.ID, reference)
		if err != nil {
			return 0, err
		}

		futureAssigned, err = l.assignedSum(db, budget.ID, "budget_months.month > ?", reference)
		if err != nil {
			return 0, err
		}

		_, correction, err = l.overspendingParts(db, budget.ID, reference)
		if err != nil {
			return 0, err
		}
	}

	rta := cash + positive - totalAvailable - futureAssigned - correction

	if month.Before(types.MonthOf(l.today())) && rta < 0 {
		rta = 0
	}

	return rta, nil
}

// ReadyToAssignBreakdown returns the Ready to Assign sum for the month
// together with its composition.
func (l Ledger) ReadyToAssignBreakdown(db *gorm.DB, budget models.Budget, month types.Month) (ReadyToAssignBreakdown, error) {
	rta, err := l.ReadyToAssign(db, budget, month)
	if err != nil {
		return ReadyToAssignBreakdown{}, err
	}

	inflow, err := l.inflow(db, budget.ID, month)
	if err != nil {
		return ReadyToAssignBreakdown{}, err
	}

	positive, err := l.positiveCreditBalances(db, budget.ID)
	if err != nil {
		return ReadyToAssignBreakdown{}, err
	}

	assignedThisMonth, err := l.assignedSum(db, budget.ID, "budget_months.month = ?", month)
	if err != nil {
		return ReadyToAssignBreakdown{}, err
	}

	assignedInFuture, err := l.assignedSum(db, budget.ID, "budget_months.month > ?", month)
	if err != nil {
		return ReadyToAssignBreakdown{}, err
	}

	cashPrevious, _, err := l.overspendingParts(db, budget.ID, month.AddDate(0, -1))
	if err != nil {
		return ReadyToAssignBreakdown{}, err
	}

	return ReadyToAssignBreakdown{
		ReadyToAssign:                 rta,
		LeftOverFromPreviousMonth:     rta - inflow - positive + assignedThisMonth + assignedInFuture + cashPrevious,
		InflowThisMonth:               inflow,
		AssignedThisMonth:             assignedThisMonth,
		AssignedInFuture:              assignedInFuture,
		CashOverspendingPreviousMonth: cashPrevious,
		PositiveCreditCardBalances:    positive,
	}, nil
}

// cashBalance returns the balance over all transactions on the budget's
// non-credit accounts, dated up to today.
func (l Ledger) cashBalance(db *gorm.DB, budgetID uuid.UUID) (types.Milliunit, error) {
	var sum int64

	err := db.Model(&models.Transaction{}).
		Joins("JOIN accounts ON accounts.id = transactions.account_id AND accounts.deleted_at IS NULL").
		Where("accounts.budget_id = ?", budgetID).
		Where("accounts.type != ?", models.AccountTypeCredit).
		Where("datetime(transactions.date) <= datetime(?)", l.today()).
		Select("COALESCE(SUM(transactions.inflow - transactions.outflow), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}

	return types.Milliunit(sum), nil
}

// inflow returns the net transaction sum on the budget's non-credit
// accounts for one month, dated up to today.
func (l Ledger) inflow(db *gorm.DB, budgetID uuid.UUID, month types.Month) (types.Milliunit, error) {
	var sum int64

	err := db.Model(&models.Transaction{}).
		Joins("JOIN accounts ON accounts.id = transactions.account_id AND accounts.deleted_at IS NULL").
		Where("accounts.budget_id = ?", budgetID).
		Where("accounts.type != ?", models.AccountTypeCredit).
		Where("datetime(transactions.date) >= datetime(?)", month.First()).
		Where("datetime(transactions.date) < datetime(?)", month.AddDate(0, 1).First()).
		Where("datetime(transactions.date) <= datetime(?)", l.today()).
		Select("COALESCE(SUM(transactions.inflow - transactions.outflow), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}

	return types.Milliunit(sum), nil
}

// positiveCreditBalances sums the balances of the budget's credit accounts
// that are in credit. An overpaid card holds real money, like a checking
// account.
func (l Ledger) positiveCreditBalances(db *gorm.DB, budgetID uuid.UUID) (types.Milliunit, error) {
	var accounts []models.Account

	err := db.
		Where(&models.Account{BudgetID: budgetID, Type: models.AccountTypeCredit}).
		Find(&accounts).Error
	if err != nil {
		return 0, err
	}

	var sum types.Milliunit
	for _, account := range accounts {
		balance, err := account.Balance(db, l.today())
		if err != nil {
			return 0, err
		}

		sum += max(balance, 0)
	}

	return sum, nil
}

// latestCompleteMonth returns the most recent month with rows for at least
// completeMonthThreshold categories. Budgets with fewer categories than
// the threshold fall back to the most recent month with any rows. The zero
// month means the ledger is empty.
func (l Ledger) latestCompleteMonth(db *gorm.DB, budgetID uuid.UUID) (types.Month, error) {
	var months []types.Month

	err := db.Model(&models.BudgetMonth{}).
		Where("budget_id = ?", budgetID).
		Group("month").
		Having("COUNT(*) >= ?", completeMonthThreshold).
		Order("month DESC").
		Limit(1).
		Pluck("month", &months).Error
	if err != nil {
		return 0, err
	}

	if len(months) == 0 {
		err = db.Model(&models.BudgetMonth{}).
			Where("budget_id = ?", budgetID).
			Group("month").
			Order("month DESC").
			Limit(1).
			Pluck("month", &months).Error
		if err != nil {
			return 0, err
		}
	}

	if len(months) == 0 {
		return 0, nil
	}

	return months[0], nil
}

// availableSum sums the available field over the budget's rows for one
// month, excluding income categories.
func (l Ledger) availableSum(db *gorm.DB, budgetID uuid.UUID, month types.Month) (types.Milliunit, error) {
	var sum int64

	err := db.Model(&models.BudgetMonth{}).
		Joins("JOIN categories ON categories.id = budget_months.category_id AND categories.deleted_at IS NULL").
		Joins("JOIN category_groups ON category_groups.id = categories.group_id AND category_groups.deleted_at IS NULL").
		Where("budget_months.budget_id = ?", budgetID).
		Where("budget_months.month = ?", month).
		Where("category_groups.income = ?", false).
		Select("COALESCE(SUM(budget_months.available), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}

	return types.Milliunit(sum), nil
}

// assignedSum sums the assigned field over the budget's rows matching the
// month condition, excluding income categories.
func (l Ledger) assignedSum(db *gorm.DB, budgetID uuid.UUID, monthCondition string, month types.Month) (types.Milliunit, error) {
	var sum int64

	err := db.Model(&models.BudgetMonth{}).
		Joins("JOIN categories ON categories.id = budget_months.category_id AND categories.deleted_at IS NULL").
		Joins("JOIN category_groups ON category_groups.id = categories.group_id AND category_groups.deleted_at IS NULL").
		Where("budget_months.budget_id = ?", budgetID).
		Where(monthCondition, month).
		Where("category_groups.income = ?", false).
		Select("COALESCE(SUM(budget_months.assigned), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}

	return types.Milliunit(sum), nil
}

// overspendingParts sums the cash and credit overspending over the
// budget's regular categories for one month.
func (l Ledger) overspendingParts(db *gorm.DB, budgetID uuid.UUID, month types.Month) (cash, credit types.Milliunit, err error) {
	var rows []models.BudgetMonth

	err = db.Model(&models.BudgetMonth{}).
		Joins("JOIN categories ON categories.id = budget_months.category_id AND categories.deleted_at IS NULL").
		Joins("JOIN category_groups ON category_groups.id = categories.group_id AND category_groups.deleted_at IS NULL").
		Where("budget_months.budget_id = ?", budgetID).
		Where("budget_months.month = ?", month).
		Where("budget_months.available < 0").
		Where("categories.linked_account_id IS NULL").
		Where("category_groups.income = ?", false).
		Find(&rows).Error
	if err != nil {
		return 0, 0, err
	}

	for _, row := range rows {
		var category models.Category
		err := db.First(&category, row.CategoryID).Error
		if err != nil {
			return 0, 0, err
		}

		rowCash, rowCredit, err := l.splitOverspending(db, category, month, row.Available)
		if err != nil {
			return 0, 0, err
		}

		cash += rowCash
		credit += rowCredit
	}

	return cash, credit, nil
}
