package ledger_test

import (
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFundingFullyFunded verifies that a charge within the category's
// available money is reserved in full on the payment category.
func (suite *TestSuiteStandard) TestFundingFullyFunded() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	card := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Groceries"})
	payment := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Card", LinkedAccountID: &card.ID})

	march := types.NewMonth(2024, time.March)

	l := testLedger()
	_, err := l.UpdateAssignment(models.DB, groceries, march, decimal.NewFromInt(400_000))
	require.Nil(t, err)

	transaction := models.Transaction{
		AccountID:  card.ID,
		CategoryID: &groceries.ID,
		Date:       time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Outflow:    100_000,
	}
	err = l.RecordTransaction(models.DB, &transaction)
	require.Nil(t, err)

	groceriesRow := suite.mustRow(groceries.ID, march)
	assert.Equal(t, types.Milliunit(300_000), groceriesRow.Available)

	paymentRow := suite.mustRow(payment.ID, march)
	assert.Equal(t, types.Milliunit(100_000), paymentRow.Activity)
	assert.Equal(t, types.Milliunit(100_000), paymentRow.Available)
}

// TestFundingPartiallyFunded verifies the funding cap: only the money the
// category actually had backs the charge, the rest stays behind as credit
// overspending.
func (suite *TestSuiteStandard) TestFundingPartiallyFunded() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	card := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Groceries"})
	payment := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Card", LinkedAccountID: &card.ID})

	march := types.NewMonth(2024, time.March)

	l := testLedger()
	_, err := l.UpdateAssignment(models.DB, groceries, march, decimal.NewFromInt(30_000))
	require.Nil(t, err)

	transaction := models.Transaction{
		AccountID:  card.ID,
		CategoryID: &groceries.ID,
		Date:       time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Outflow:    100_000,
	}
	err = l.RecordTransaction(models.DB, &transaction)
	require.Nil(t, err)

	groceriesRow := suite.mustRow(groceries.ID, march)
	assert.Equal(t, types.Milliunit(-70_000), groceriesRow.Available)

	paymentRow := suite.mustRow(payment.ID, march)
	assert.Equal(t, types.Milliunit(30_000), paymentRow.Activity)
	assert.Equal(t, types.Milliunit(30_000), paymentRow.Available)
}

// TestFundingUnfunded verifies that spending from an empty category
// reserves nothing: the payment category stays without a row.
func (suite *TestSuiteStandard) TestFundingUnfunded() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	card := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Groceries"})
	payment := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Card", LinkedAccountID: &card.ID})

	march := types.NewMonth(2024, time.March)

	transaction := models.Transaction{
		AccountID:  card.ID,
		CategoryID: &groceries.ID,
		Date:       time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Outflow:    100_000,
	}
	err := testLedger().RecordTransaction(models.DB, &transaction)
	require.Nil(t, err)

	groceriesRow := suite.mustRow(groceries.ID, march)
	assert.Equal(t, types.Milliunit(-100_000), groceriesRow.Available)

	assert.Equal(t, int64(0), suite.rowCount(payment.ID, march))
}

// TestFundingMultipleCategories verifies that funding is computed per
// category: 50 assigned against 80 spent funds 50, a fully covered 70
// funds 70.
func (suite *TestSuiteStandard) TestFundingMultipleCategories() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	card := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Groceries"})
	transport := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Transport"})
	payment := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Card", LinkedAccountID: &card.ID})

	march := types.NewMonth(2024, time.March)

	l := testLedger()
	_, err := l.UpdateAssignment(models.DB, groceries, march, decimal.NewFromInt(50_000))
	require.Nil(t, err)
	_, err = l.UpdateAssignment(models.DB, transport, march, decimal.NewFromInt(200_000))
	require.Nil(t, err)

	suite.createTestTransaction(models.Transaction{
		AccountID:  card.ID,
		CategoryID: &groceries.ID,
		Date:       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Outflow:    80_000,
	})
	suite.createTestTransaction(models.Transaction{
		AccountID:  card.ID,
		CategoryID: &transport.ID,
		Date:       time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
		Outflow:    70_000,
	})

	err = l.RefreshAllActivity(models.DB, budget, march)
	require.Nil(t, err)

	paymentRow := suite.mustRow(payment.ID, march)
	assert.Equal(t, types.Milliunit(120_000), paymentRow.Activity)

	groceriesRow := suite.mustRow(groceries.ID, march)
	assert.Equal(t, types.Milliunit(-30_000), groceriesRow.Available)
}

// TestFundingNetRefund verifies that a net refund on the card releases the
// reservation in full, even when nothing was reserved before.
func (suite *TestSuiteStandard) TestFundingNetRefund() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	card := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Groceries"})
	payment := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Card", LinkedAccountID: &card.ID})

	march := types.NewMonth(2024, time.March)

	transaction := models.Transaction{
		AccountID:  card.ID,
		CategoryID: &groceries.ID,
		Date:       time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Inflow:     120_000,
	}
	err := testLedger().RecordTransaction(models.DB, &transaction)
	require.Nil(t, err)

	groceriesRow := suite.mustRow(groceries.ID, march)
	assert.Equal(t, types.Milliunit(120_000), groceriesRow.Available)

	paymentRow := suite.mustRow(payment.ID, march)
	assert.Equal(t, types.Milliunit(-120_000), paymentRow.Activity)
	assert.Equal(t, types.Milliunit(-120_000), paymentRow.Available)
}

// TestFundingPaymentsReduceReservation verifies that a transfer towards
// the card consumes the reserved money.
func (suite *TestSuiteStandard) TestFundingPaymentsReduceReservation() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	checking := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	card := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Groceries"})
	payment := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Card", LinkedAccountID: &card.ID})

	march := types.NewMonth(2024, time.March)

	l := testLedger()
	_, err := l.UpdateAssignment(models.DB, groceries, march, decimal.NewFromInt(100_000))
	require.Nil(t, err)

	transaction := models.Transaction{
		AccountID:  card.ID,
		CategoryID: &groceries.ID,
		Date:       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Outflow:    100_000,
	}
	err = l.RecordTransaction(models.DB, &transaction)
	require.Nil(t, err)

	paymentRow := suite.mustRow(payment.ID, march)
	assert.Equal(t, types.Milliunit(100_000), paymentRow.Available)

	_, _, err = l.RecordTransfer(models.DB, checking.ID, card.ID, time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), 60_000, "card payment")
	require.Nil(t, err)

	paymentRow = suite.mustRow(payment.ID, march)
	assert.Equal(t, types.Milliunit(40_000), paymentRow.Activity)
	assert.Equal(t, types.Milliunit(40_000), paymentRow.Available)
}

// TestFundingSkipsDeletedCategories verifies that spending booked against
// a deleted category reserves nothing.
func (suite *TestSuiteStandard) TestFundingSkipsDeletedCategories() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	card := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	groceries := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Groceries"})
	payment := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Card", LinkedAccountID: &card.ID})

	march := types.NewMonth(2024, time.March)

	l := testLedger()
	_, err := l.UpdateAssignment(models.DB, groceries, march, decimal.NewFromInt(100_000))
	require.Nil(t, err)

	suite.createTestTransaction(models.Transaction{
		AccountID:  card.ID,
		CategoryID: &groceries.ID,
		Date:       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Outflow:    50_000,
	})

	err = models.DB.Delete(&groceries).Error
	require.Nil(t, err)

	err = l.RefreshFunding(models.DB, card, march)
	require.Nil(t, err)

	assert.Equal(t, int64(0), suite.rowCount(payment.ID, march))
}

func (suite *TestSuiteStandard) TestRefreshFundingNonCreditAccount() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	checking := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	err := testLedger().RefreshFunding(models.DB, checking, types.NewMonth(2024, time.March))
	require.Nil(t, err)
}

func (suite *TestSuiteStandard) TestRefreshFundingNoPaymentCategory() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	card := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})

	err := testLedger().RefreshFunding(models.DB, card, types.NewMonth(2024, time.March))
	require.Nil(t, err)
}
