package ledger_test

import (
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMonthView verifies the assembled month: group nesting, ordering,
// sums and the exclusion of income groups.
func (suite *TestSuiteStandard) TestMonthView() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{Name: "Monthly overview"})
	checking := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	daily := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID, Name: "Daily", SortOrder: 1})
	savings := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID, Name: "Savings", SortOrder: 2})
	income := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID, Name: "Income", Income: true})

	groceries := suite.createTestCategory(models.Category{GroupID: daily.ID, Name: "Groceries"})
	transport := suite.createTestCategory(models.Category{GroupID: daily.ID, Name: "Transport"})
	vacation := suite.createTestCategory(models.Category{GroupID: savings.ID, Name: "Vacation"})
	rainy := suite.createTestCategory(models.Category{GroupID: savings.ID, Name: "Rainy days"})
	salary := suite.createTestCategory(models.Category{GroupID: income.ID, Name: "Salary"})

	suite.createTestTransaction(models.Transaction{
		AccountID:  checking.ID,
		CategoryID: &salary.ID,
		Date:       time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Inflow:     2_000_000,
	})

	february := types.NewMonth(2024, time.February)
	march := types.NewMonth(2024, time.March)
	l := testLedger()

	_, err := l.UpdateAssignment(models.DB, groceries, march, decimal.NewFromInt(300_000))
	require.Nil(t, err)
	_, err = l.UpdateAssignment(models.DB, transport, march, decimal.NewFromInt(50_000))
	require.Nil(t, err)
	_, err = l.UpdateAssignment(models.DB, vacation, march, decimal.NewFromInt(500_000))
	require.Nil(t, err)

	// Rainy days was funded in February and not touched since, March shows
	// it through the carryforward alone
	_, err = l.UpdateAssignment(models.DB, rainy, february, decimal.NewFromInt(120_000))
	require.Nil(t, err)

	spend := models.Transaction{
		AccountID:  checking.ID,
		CategoryID: &groceries.ID,
		Date:       time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC),
		Outflow:    100_000,
	}
	err = l.RecordTransaction(models.DB, &spend)
	require.Nil(t, err)

	view, err := l.MonthView(models.DB, budget, march)
	require.Nil(t, err)

	assert.Equal(t, budget.ID, view.ID)
	assert.Equal(t, "Monthly overview", view.Name)
	assert.Equal(t, march, view.Month)
	assert.Equal(t, types.Milliunit(1_150_000), view.ReadyToAssign)
	assert.Equal(t, types.Milliunit(850_000), view.Assigned)
	assert.Equal(t, types.Milliunit(-100_000), view.Activity)
	assert.Equal(t, types.Milliunit(870_000), view.Available)

	require.Len(t, view.Groups, 2, "income groups are not part of the view")
	assert.Equal(t, "Daily", view.Groups[0].Name)
	assert.Equal(t, "Savings", view.Groups[1].Name)

	dailyGroup := view.Groups[0]
	assert.Equal(t, types.Milliunit(350_000), dailyGroup.Assigned)
	assert.Equal(t, types.Milliunit(-100_000), dailyGroup.Activity)
	assert.Equal(t, types.Milliunit(250_000), dailyGroup.Available)

	require.Len(t, dailyGroup.Categories, 2)
	assert.Equal(t, "Groceries", dailyGroup.Categories[0].Name)
	assert.Equal(t, types.Milliunit(300_000), dailyGroup.Categories[0].Assigned)
	assert.Equal(t, types.Milliunit(-100_000), dailyGroup.Categories[0].Activity)
	assert.Equal(t, types.Milliunit(200_000), dailyGroup.Categories[0].Available)

	savingsGroup := view.Groups[1]
	require.Len(t, savingsGroup.Categories, 2)
	assert.Equal(t, "Rainy days", savingsGroup.Categories[0].Name)
	assert.Equal(t, types.Milliunit(0), savingsGroup.Categories[0].Assigned)
	assert.Equal(t, types.Milliunit(120_000), savingsGroup.Categories[0].Available)
	assert.Equal(t, types.Milliunit(620_000), savingsGroup.Available)
}

// TestMonthViewPaymentCategory verifies that payment categories surface
// with their account link, everything else does not.
func (suite *TestSuiteStandard) TestMonthViewPaymentCategory() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	card := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Card", LinkedAccountID: &card.ID})
	suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Old", Archived: true})

	view, err := testLedger().MonthView(models.DB, budget, types.NewMonth(2024, time.March))
	require.Nil(t, err)

	require.Len(t, view.Groups, 1)
	require.Len(t, view.Groups[0].Categories, 2)

	cardMonth := view.Groups[0].Categories[0]
	require.NotNil(t, cardMonth.LinkedAccountID)
	assert.Equal(t, card.ID, *cardMonth.LinkedAccountID)
	assert.False(t, cardMonth.Archived)

	oldMonth := view.Groups[0].Categories[1]
	assert.Nil(t, oldMonth.LinkedAccountID)
	assert.True(t, oldMonth.Archived)
}

func (suite *TestSuiteStandard) TestMonthViewEmptyBudget() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})

	view, err := testLedger().MonthView(models.DB, budget, types.NewMonth(2024, time.March))
	require.Nil(t, err)

	assert.NotNil(t, view.Groups)
	assert.Len(t, view.Groups, 0)
	assert.Equal(t, types.Milliunit(0), view.Assigned)
	assert.Equal(t, types.Milliunit(0), view.ReadyToAssign)
}

// TestCategoryMonth verifies the single-category view for stored rows and
// for months that only exist through the carryforward.
func (suite *TestSuiteStandard) TestCategoryMonth() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	checking := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Groceries"})

	march := types.NewMonth(2024, time.March)
	l := testLedger()

	_, err := l.UpdateAssignment(models.DB, groceries, march, decimal.NewFromInt(300_000))
	require.Nil(t, err)

	spend := models.Transaction{
		AccountID:  checking.ID,
		CategoryID: &groceries.ID,
		Date:       time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC),
		Outflow:    100_000,
	}
	err = l.RecordTransaction(models.DB, &spend)
	require.Nil(t, err)

	stored, err := l.CategoryMonth(models.DB, groceries, march)
	require.Nil(t, err)

	assert.Equal(t, groceries.ID, stored.ID)
	assert.Equal(t, "Groceries", stored.Name)
	assert.Equal(t, types.Milliunit(300_000), stored.Assigned)
	assert.Equal(t, types.Milliunit(-100_000), stored.Activity)
	assert.Equal(t, types.Milliunit(200_000), stored.Available)

	derived, err := l.CategoryMonth(models.DB, groceries, march.AddDate(0, 1))
	require.Nil(t, err)

	assert.Equal(t, types.Milliunit(0), derived.Assigned)
	assert.Equal(t, types.Milliunit(0), derived.Activity)
	assert.Equal(t, types.Milliunit(200_000), derived.Available)
}
