package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/centavo-app/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAccount(t *testing.T, a v1.AccountEditable, expectedStatus ...int) v1.AccountResponse {
	if a.BudgetID == uuid.Nil {
		a.BudgetID = createTestBudget(t, v1.BudgetEditable{Name: "Testing budget"}).Data.ID
	}

	if a.Name == "" {
		a.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.AccountEditable{a}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/accounts", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var account v1.AccountCreateResponse
	test.DecodeResponse(t, &r, &account)

	if r.Code == http.StatusCreated {
		return account.Data[0]
	}

	return v1.AccountResponse{}
}

// TestAccountsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestAccountsDBClosed() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestAccount(t, v1.AccountEditable{BudgetID: b.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/accounts", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.AccountListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestAccountsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestAccountsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Accounts endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Account with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Account exists", createTestAccount(suite.T(), v1.AccountEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/accounts", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestAccountsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestAccountsGetSingle() {
	a := createTestAccount(suite.T(), v1.AccountEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Account", a.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Account with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodPatch},
		{"PATCH Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/accounts/%s", tt.id), "")

			var account v1.AccountResponse
			test.DecodeResponse(t, &r, &account)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsGetFilter() {
	b1 := createTestBudget(suite.T(), v1.BudgetEditable{})
	b2 := createTestBudget(suite.T(), v1.BudgetEditable{})

	_ = createTestAccount(suite.T(), v1.AccountEditable{
		Name:     "Main Checking",
		Note:     "Pays the bills",
		BudgetID: b1.Data.ID,
		Type:     models.AccountTypeChecking,
	})

	_ = createTestAccount(suite.T(), v1.AccountEditable{
		Name:     "Emergency Fund",
		Note:     "Safety net",
		BudgetID: b1.Data.ID,
		Type:     models.AccountTypeSavings,
		Archived: true,
	})

	_ = createTestAccount(suite.T(), v1.AccountEditable{
		Name:     "Visa Gold",
		Note:     "",
		BudgetID: b2.Data.ID,
		Type:     models.AccountTypeCredit,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Budget 1", fmt.Sprintf("budget=%s", b1.Data.ID), 2},
		{"Budget Not Existing", "budget=84b42ffd-7b89-48c1-a52d-b166288300ee", 0},
		{"Type CHECKING", "type=CHECKING", 1},
		{"Type SAVINGS", "type=SAVINGS", 1},
		{"Type CREDIT", "type=CREDIT", 1},
		{"Archived", "archived=true", 1},
		{"Not archived", "archived=false", 2},
		{"Fuzzy name", "name=Main", 1},
		{"Empty name", "name=", 0},
		{"Fuzzy note", "note=net", 1},
		{"Empty note", "note=", 1},
		{"Search", "search=bills", 1},
		{"Offset 1 Limit 1", "offset=1&limit=1", 1},
		{"Limit 0", "limit=0", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.AccountListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/accounts?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsCreateFails() {
	// Test account for uniqueness
	a := createTestAccount(suite.T(), v1.AccountEditable{
		Name: "Unique Account Name for Budget",
	})

	tests := []struct {
		name     string
		body     any
		status   int                                            // expected HTTP status
		testFunc func(t *testing.T, a v1.AccountCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, a v1.AccountCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field AccountEditable.note of type string", *a.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, a v1.AccountCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *a.Error)
			},
		},
		{
			"No Budget",
			`[{ "note": "Some text" }]`,
			http.StatusNotFound,
			func(t *testing.T, a v1.AccountCreateResponse) {
				assert.Equal(t, "there is no budget matching your query", *a.Data[0].Error)
			},
		},
		{
			"Non-existing Budget",
			`[{ "budgetId": "ea85ad1a-3679-4ced-b83b-89566c12ece9" }]`,
			http.StatusNotFound,
			func(t *testing.T, a v1.AccountCreateResponse) {
				assert.Equal(t, "there is no budget matching your query", *a.Data[0].Error)
			},
		},
		{
			"Invalid type",
			[]v1.AccountEditable{
				{
					BudgetID: a.Data.BudgetID,
					Name:     "Invalid type",
					Type:     "PIGGY_BANK",
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, a v1.AccountCreateResponse) {
				assert.Equal(t, "the account type must be one of CHECKING, SAVINGS, CASH, CREDIT", *a.Data[0].Error)
			},
		},
		{
			"Duplicate name in Budget",
			[]v1.AccountEditable{
				{
					BudgetID: a.Data.BudgetID,
					Name:     a.Data.Name,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, a v1.AccountCreateResponse) {
				assert.Equal(t, "the account name must be unique for the budget", *a.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/accounts", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var a v1.AccountCreateResponse
			test.DecodeResponse(t, &r, &a)

			if tt.testFunc != nil {
				tt.testFunc(t, a)
			}
		})
	}
}

// TestAccountsCreateDefaultsType verifies that accounts without an explicit
// type become checking accounts.
func (suite *TestSuiteStandard) TestAccountsCreateDefaultsType() {
	a := createTestAccount(suite.T(), v1.AccountEditable{Name: "No type set"})
	assert.Equal(suite.T(), models.AccountTypeChecking, a.Data.Type)
}

// Verify that updating accounts works as desired
func (suite *TestSuiteStandard) TestAccountsUpdate() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Name: "Original name"})

	tests := []struct {
		name     string                                   // name of the test
		account  map[string]any                           // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, a v1.AccountResponse) // tests to perform against the updated account resource
	}{
		{
			"Name, Note",
			map[string]any{
				"name": "Another name",
				"note": "New note!",
			},
			func(t *testing.T, a v1.AccountResponse) {
				assert.Equal(t, "New note!", a.Data.Note)
				assert.Equal(t, "Another name", a.Data.Name)
			},
		},
		{
			"Type",
			map[string]any{
				"type": "SAVINGS",
			},
			func(t *testing.T, a v1.AccountResponse) {
				assert.Equal(t, models.AccountTypeSavings, a.Data.Type)
			},
		},
		{
			"Archived",
			map[string]any{
				"archived": true,
			},
			func(t *testing.T, a v1.AccountResponse) {
				assert.True(t, a.Data.Archived)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, account.Data.Links.Self, tt.account)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var a v1.AccountResponse
			test.DecodeResponse(t, &r, &a)

			if tt.testFunc != nil {
				tt.testFunc(t, a)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Account", uuid.New().String(), `{"name": "Not found"}`, http.StatusNotFound},
		{"Invalid account type", "", `{"type": "SHOEBOX"}`, http.StatusBadRequest},
		{"Set Budget to uuid.Nil", "", v1.AccountEditable{}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				account := createTestAccount(suite.T(), v1.AccountEditable{
					Name: "New Account",
					Note: "Auto-created for test",
				})

				tt.id = account.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/accounts/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestAccountsDelete verifies all cases for Account deletions.
func (suite *TestSuiteStandard) TestAccountsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Account", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				a := createTestAccount(t, v1.AccountEditable{})
				tt.id = a.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/accounts/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestAccountsGetSorted verifies that accounts are sorted by name.
func (suite *TestSuiteStandard) TestAccountsGetSorted() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	a1 := createTestAccount(suite.T(), v1.AccountEditable{
		Name:     "Alphabetically first",
		BudgetID: b.Data.ID,
	})

	a2 := createTestAccount(suite.T(), v1.AccountEditable{
		Name:     "Second in creation, third in list",
		BudgetID: b.Data.ID,
	})

	a3 := createTestAccount(suite.T(), v1.AccountEditable{
		Name:     "First is alphabetically second",
		BudgetID: b.Data.ID,
	})

	a4 := createTestAccount(suite.T(), v1.AccountEditable{
		Name:     "Zulu is the last one",
		BudgetID: b.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var accounts v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &accounts)

	require.Len(suite.T(), accounts.Data, 4, "Account list has wrong length")

	assert.Equal(suite.T(), a1.Data.Name, accounts.Data[0].Name)
	assert.Equal(suite.T(), a2.Data.Name, accounts.Data[2].Name)
	assert.Equal(suite.T(), a3.Data.Name, accounts.Data[1].Name)
	assert.Equal(suite.T(), a4.Data.Name, accounts.Data[3].Name)
}

func (suite *TestSuiteStandard) TestAccountsPagination() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	for i := 0; i < 10; i++ {
		createTestAccount(suite.T(), v1.AccountEditable{Name: fmt.Sprint(i), BudgetID: b.Data.ID})
	}

	tests := []struct {
		name          string
		offset        uint
		limit         int
		expectedCount int
		expectedTotal int64
	}{
		{"All", 0, -1, 10, 10},
		{"First 5", 0, 5, 5, 10},
		{"Last 5", 5, -1, 5, 10},
		{"Offset 3", 3, -1, 7, 10},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?offset=%d&limit=%d", tt.offset, tt.limit), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var accounts v1.AccountListResponse
			test.DecodeResponse(t, &r, &accounts)

			assert.Equal(suite.T(), tt.offset, accounts.Pagination.Offset)
			assert.Equal(suite.T(), tt.limit, accounts.Pagination.Limit)
			assert.Equal(suite.T(), tt.expectedCount, accounts.Pagination.Count)
			assert.Equal(suite.T(), tt.expectedTotal, accounts.Pagination.Total)
		})
	}
}

// TestAccountsBalance verifies that the computed balances are correct and
// that transactions dated in the future do not count towards them.
func (suite *TestSuiteStandard) TestAccountsBalance() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Name: "Balance testing"})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID: account.Data.ID,
		Date:      time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		Inflow:    types.Milliunit(150000),
		Cleared:   models.TransactionReconciled,
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID: account.Data.ID,
		Date:      time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		Outflow:   types.Milliunit(30000),
		Cleared:   models.TransactionCleared,
	})

	// A transaction in the future is not part of the balance yet
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID: account.Data.ID,
		Date:      time.Now().AddDate(1, 0, 0),
		Inflow:    types.Milliunit(900000),
	})

	r := test.Request(suite.T(), http.MethodGet, account.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), types.Milliunit(120000), response.Data.Balance)
	assert.Equal(suite.T(), types.Milliunit(150000), response.Data.ReconciledBalance)
}

// TestPaymentCategoryCreate verifies the payment category provisioning for
// credit accounts.
func (suite *TestSuiteStandard) TestPaymentCategoryCreate() {
	account := createTestAccount(suite.T(), v1.AccountEditable{
		Name: "Conto Carta",
		Type: models.AccountTypeCredit,
	})

	r := test.Request(suite.T(), http.MethodPost, account.Data.Links.PaymentCategory, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var category v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &category)

	// The name defaults to the account name and the category is linked to
	// the account
	assert.Equal(suite.T(), "Conto Carta", category.Data.Name)
	require.NotNil(suite.T(), category.Data.LinkedAccountID)
	assert.Equal(suite.T(), account.Data.ID, *category.Data.LinkedAccountID)

	// The category lives in the automatically created group for payment
	// categories
	var group v1.CategoryGroupResponse
	gr := test.Request(suite.T(), http.MethodGet, category.Data.Links.Group, "")
	test.AssertHTTPStatus(suite.T(), &gr, http.StatusOK)
	test.DecodeResponse(suite.T(), &gr, &group)
	assert.Equal(suite.T(), "Credit Card Payments", group.Data.Name)

	// Provisioning again returns the same category
	second := test.Request(suite.T(), http.MethodPost, account.Data.Links.PaymentCategory, "")
	test.AssertHTTPStatus(suite.T(), &second, http.StatusCreated)

	var repeated v1.CategoryResponse
	test.DecodeResponse(suite.T(), &second, &repeated)
	assert.Equal(suite.T(), category.Data.ID, repeated.Data.ID)
}

// TestPaymentCategoryCreateCustomName verifies that the body can override
// the payment category name.
func (suite *TestSuiteStandard) TestPaymentCategoryCreateCustomName() {
	account := createTestAccount(suite.T(), v1.AccountEditable{
		Name: "Mastercard",
		Type: models.AccountTypeCredit,
	})

	r := test.Request(suite.T(), http.MethodPost, account.Data.Links.PaymentCategory, v1.PaymentCategoryEditable{Name: "Card payments"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var category v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &category)
	assert.Equal(suite.T(), "Card payments", category.Data.Name)
}

func (suite *TestSuiteStandard) TestPaymentCategoryCreateFails() {
	checking := createTestAccount(suite.T(), v1.AccountEditable{
		Name: "Not a credit card",
		Type: models.AccountTypeChecking,
	})

	tests := []struct {
		name   string
		path   string
		status int    // expected HTTP status
		errMsg string // expected error message, skipped when empty
	}{
		{"Not a credit account", checking.Data.Links.PaymentCategory, http.StatusBadRequest, "payment categories can only be linked to credit accounts"},
		{"Non-existing account", fmt.Sprintf("http://example.com/v1/accounts/%s/payment-category", uuid.New()), http.StatusNotFound, ""},
		{"Invalid UUID", "http://example.com/v1/accounts/NotParseableAsUUID/payment-category", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.errMsg != "" {
				var response v1.CategoryResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.errMsg, *response.Error)
			}
		})
	}
}

// TestPaymentCategoryOptions verifies the OPTIONS response for the payment
// category endpoint.
func (suite *TestSuiteStandard) TestPaymentCategoryOptions() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Type: models.AccountTypeCredit})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Account exists", account.Data.Links.PaymentCategory, http.StatusNoContent},
		{"No Account with this ID", fmt.Sprintf("http://example.com/v1/accounts/%s/payment-category", uuid.New()), http.StatusNotFound},
		{"Not a valid UUID", "http://example.com/v1/accounts/NotParseableAsUUID/payment-category", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, POST", r.Header().Get("allow"))
			}
		})
	}
}

// TestAccountsTypeChangeWithPaymentCategory verifies that a credit account
// cannot change its type while its payment category exists.
func (suite *TestSuiteStandard) TestAccountsTypeChangeWithPaymentCategory() {
	account := createTestAccount(suite.T(), v1.AccountEditable{
		Name: "Amex",
		Type: models.AccountTypeCredit,
	})

	r := test.Request(suite.T(), http.MethodPost, account.Data.Links.PaymentCategory, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var category v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &category)

	// With the payment category in place, the type is fixed
	patch := test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, `{"type": "CHECKING"}`)
	test.AssertHTTPStatus(suite.T(), &patch, http.StatusBadRequest)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &patch, &response)
	assert.Equal(suite.T(), "the account type cannot be changed while a payment category is linked to it", *response.Error)

	// Deleting the payment category releases the account again
	del := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &del, http.StatusNoContent)

	patch = test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, `{"type": "CHECKING"}`)
	test.AssertHTTPStatus(suite.T(), &patch, http.StatusOK)
}
