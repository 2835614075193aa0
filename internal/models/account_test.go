package models_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	name := " Whitespace everywhere!   "
	note := " Some more whitespace in the notes    "

	account := suite.createTestAccount(models.Account{
		BudgetID: suite.createTestBudget(models.Budget{}).ID,
		Name:     name,
		Note:     note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), account.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), account.Note)
}

func (suite *TestSuiteStandard) TestAccountType() {
	budget := suite.createTestBudget(models.Budget{})

	tests := []struct {
		name        string
		accountType models.AccountType
		err         error
	}{
		{"Empty type defaults to checking", "", nil},
		{"Checking", models.AccountTypeChecking, nil},
		{"Savings", models.AccountTypeSavings, nil},
		{"Cash", models.AccountTypeCash, nil},
		{"Credit", models.AccountTypeCredit, nil},
		{"Unknown type", "LOAN", models.ErrAccountTypeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			account := models.Account{
				BudgetID: budget.ID,
				Name:     uuid.New().String(),
				Type:     tt.accountType,
			}

			err := models.DB.Create(&account).Error
			assert.ErrorIs(t, err, tt.err)

			if tt.err == nil && tt.accountType == "" {
				assert.Equal(t, models.AccountTypeChecking, account.Type)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAccountNameNotUnique() {
	budget := suite.createTestBudget(models.Budget{})
	_ = suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})

	account := models.Account{BudgetID: budget.ID, Name: "Checking"}
	err := models.DB.Create(&account).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountNameNotUnique)

	// The same name is fine in another budget
	otherBudget := suite.createTestBudget(models.Budget{})
	_ = suite.createTestAccount(models.Account{BudgetID: otherBudget.ID, Name: "Checking"})
}

func (suite *TestSuiteStandard) TestAccountUpdate() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	tests := []struct {
		name     string
		budgetID uuid.UUID
		err      error
	}{
		{"Valid budget ID", suite.createTestBudget(models.Budget{}).ID, nil},
		{"Invalid budget ID", uuid.New(), models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			update := models.Account{
				BudgetID: tt.budgetID,
			}
			err := models.DB.Model(&account).Updates(update).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountTypeChangeWithPaymentCategory() {
	budget := suite.createTestBudget(models.Budget{})
	card := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})
	group := suite.createTestCategoryGroup(models.CategoryGroup{BudgetID: budget.ID})
	_ = suite.createTestCategory(models.Category{GroupID: group.ID, LinkedAccountID: &card.ID})

	err := models.DB.Model(&card).Updates(models.Account{Type: models.AccountTypeChecking}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountHasPaymentCategory)

	// Without a payment category, the type can change freely
	other := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})
	err = models.DB.Model(&other).Updates(models.Account{Type: models.AccountTypeSavings}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestAccountIsCredit() {
	assert.True(suite.T(), models.Account{Type: models.AccountTypeCredit}.IsCredit())
	assert.False(suite.T(), models.Account{Type: models.AccountTypeChecking}.IsCredit())
}

func (suite *TestSuiteStandard) TestAccountBalance() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	today := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	_ = suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Inflow:    types.Milliunit(150_000),
		Cleared:   models.TransactionReconciled,
	})

	_ = suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Outflow:   types.Milliunit(40_000),
	})

	// Future transactions do not count yet
	_ = suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Date:      time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		Inflow:    types.Milliunit(99_999),
	})

	balance, err := account.Balance(models.DB, today)
	require.Nil(t, err)
	assert.Equal(t, types.Milliunit(110_000), balance)

	reconciled, err := account.ReconciledBalance(models.DB, today)
	require.Nil(t, err)
	assert.Equal(t, types.Milliunit(150_000), reconciled)
}

func (suite *TestSuiteStandard) TestAccountPaymentsReceived() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	checking := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	card := suite.createTestAccount(models.Account{BudgetID: budget.ID, Type: models.AccountTypeCredit})

	month := types.NewMonth(2024, time.March)
	today := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	// A payment towards the card this month
	outgoing := suite.createTestTransaction(models.Transaction{
		AccountID: checking.ID,
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Outflow:   types.Milliunit(30_000),
	})
	_ = suite.createTestTransaction(models.Transaction{
		AccountID:             card.ID,
		Date:                  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Inflow:                types.Milliunit(30_000),
		TransferTransactionID: &outgoing.ID,
	})

	// A payment from last month
	lastMonth := suite.createTestTransaction(models.Transaction{
		AccountID: checking.ID,
		Date:      time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Outflow:   types.Milliunit(10_000),
	})
	_ = suite.createTestTransaction(models.Transaction{
		AccountID:             card.ID,
		Date:                  time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Inflow:                types.Milliunit(10_000),
		TransferTransactionID: &lastMonth.ID,
	})

	// A refund is not a transfer and does not count
	_ = suite.createTestTransaction(models.Transaction{
		AccountID: card.ID,
		Date:      time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Inflow:    types.Milliunit(5_000),
	})

	// A payment dated after today does not count yet
	future := suite.createTestTransaction(models.Transaction{
		AccountID: checking.ID,
		Date:      time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
		Outflow:   types.Milliunit(77_000),
	})
	_ = suite.createTestTransaction(models.Transaction{
		AccountID:             card.ID,
		Date:                  time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
		Inflow:                types.Milliunit(77_000),
		TransferTransactionID: &future.ID,
	})

	payments, err := card.PaymentsReceived(models.DB, month, today)
	require.Nil(t, err)
	assert.Equal(t, types.Milliunit(30_000), payments)
}

func (suite *TestSuiteStandard) TestAccountTransactions() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	_ = suite.createTestTransaction(models.Transaction{AccountID: account.ID, Inflow: types.Milliunit(1_000)})
	_ = suite.createTestTransaction(models.Transaction{AccountID: account.ID, Outflow: types.Milliunit(2_000)})

	transactions := account.Transactions(models.DB)
	assert.Len(suite.T(), transactions, 2)
}

func (suite *TestSuiteStandard) TestAccountExport() {
	t := suite.T()

	budget := suite.createTestBudget(models.Budget{})
	for range 2 {
		_ = suite.createTestAccount(models.Account{BudgetID: budget.ID})
	}

	raw, err := models.Account{}.Export()
	if err != nil {
		require.Fail(t, "account export failed", err)
	}

	var accounts []models.Account
	err = json.Unmarshal(raw, &accounts)
	if err != nil {
		require.Fail(t, "JSON could not be unmarshaled", err)
	}

	require.Len(t, accounts, 2, "Number of accounts in export is wrong")
}
