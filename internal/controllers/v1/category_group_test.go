package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCategoryGroup(t *testing.T, g v1.CategoryGroupEditable, expectedStatus ...int) v1.CategoryGroupResponse {
	if g.BudgetID == uuid.Nil {
		g.BudgetID = createTestBudget(t, v1.BudgetEditable{Name: "Testing budget"}).Data.ID
	}

	if g.Name == "" {
		g.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryGroupEditable{g}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/category-groups", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var group v1.CategoryGroupCreateResponse
	test.DecodeResponse(t, &r, &group)

	if r.Code == http.StatusCreated {
		return group.Data[0]
	}

	return v1.CategoryGroupResponse{}
}

// TestCategoryGroupsDBClosed verifies that errors are processed correctly
// when the database is closed.
func (suite *TestSuiteStandard) TestCategoryGroupsDBClosed() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestCategoryGroup(t, v1.CategoryGroupEditable{BudgetID: b.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/category-groups", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CategoryGroupListResponse
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

// TestCategoryGroupsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoryGroupsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Category Groups endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Category Group with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category Group exists", createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/category-groups", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestCategoryGroupsGetSingle verifies that requests for the resource
// endpoints are handled correctly.
func (suite *TestSuiteStandard) TestCategoryGroupsGetSingle() {
	g := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Category Group", g.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Category Group with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
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
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/category-groups/%s", tt.id), "")

			var group v1.CategoryGroupResponse
			test.DecodeResponse(t, &r, &group)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryGroupsGetFilter() {
	b1 := createTestBudget(suite.T(), v1.BudgetEditable{})
	b2 := createTestBudget(suite.T(), v1.BudgetEditable{})

	_ = createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{
		Name:     "Everyday Expenses",
		Note:     "Groceries, fuel, …",
		BudgetID: b1.Data.ID,
	})

	_ = createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{
		Name:     "Income",
		BudgetID: b1.Data.ID,
		Income:   true,
	})

	_ = createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{
		Name:     "Rainy Days",
		Note:     "Sinking funds",
		BudgetID: b2.Data.ID,
		Archived: true,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Budget 1", fmt.Sprintf("budget=%s", b1.Data.ID), 2},
		{"Budget Not Existing", "budget=c9e4ee7a-e702-4f92-b168-11a95b22c7aa", 0},
		{"Income", "income=true", 1},
		{"Not income", "income=false", 2},
		{"Archived", "archived=true", 1},
		{"Not archived", "archived=false", 2},
		{"Fuzzy name", "name=day", 2},
		{"Empty name", "name=", 0},
		{"Fuzzy note", "note=funds", 1},
		{"Empty note", "note=", 1},
		{"Search", "search=income", 1},
		{"Offset 2", "offset=2", 1},
		{"Limit 1", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CategoryGroupListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/category-groups?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryGroupsCreateFails() {
	// Test group for uniqueness
	g := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{
		Name: "Unique Group Name for Budget",
	})

	tests := []struct {
		name     string
		body     any
		status   int                                                  // expected HTTP status
		testFunc func(t *testing.T, g v1.CategoryGroupCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, g v1.CategoryGroupCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field CategoryGroupEditable.note of type string", *g.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, g v1.CategoryGroupCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *g.Error)
			},
		},
		{
			"No Budget",
			`[{ "note": "Some text" }]`,
			http.StatusNotFound,
			func(t *testing.T, g v1.CategoryGroupCreateResponse) {
				assert.Equal(t, "there is no budget matching your query", *g.Data[0].Error)
			},
		},
		{
			"Non-existing Budget",
			`[{ "budgetId": "ea85ad1a-3679-4ced-b83b-89566c12ece9" }]`,
			http.StatusNotFound,
			func(t *testing.T, g v1.CategoryGroupCreateResponse) {
				assert.Equal(t, "there is no budget matching your query", *g.Data[0].Error)
			},
		},
		{
			"Duplicate name in Budget",
			[]v1.CategoryGroupEditable{
				{
					BudgetID: g.Data.BudgetID,
					Name:     g.Data.Name,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, g v1.CategoryGroupCreateResponse) {
				assert.Equal(t, "the category group name must be unique for the budget", *g.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/category-groups", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var g v1.CategoryGroupCreateResponse
			test.DecodeResponse(t, &r, &g)

			if tt.testFunc != nil {
				tt.testFunc(t, g)
			}
		})
	}
}

// Verify that updating category groups works as desired
func (suite *TestSuiteStandard) TestCategoryGroupsUpdate() {
	group := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{Name: "Name of the group"})

	tests := []struct {
		name     string                                        // name of the test
		group    map[string]any                                // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, g v1.CategoryGroupResponse) // tests to perform against the updated group resource
	}{
		{
			"Name, Note",
			map[string]any{
				"name": "Another name",
				"note": "New note!",
			},
			func(t *testing.T, g v1.CategoryGroupResponse) {
				assert.Equal(t, "New note!", g.Data.Note)
				assert.Equal(t, "Another name", g.Data.Name)
			},
		},
		{
			"Sort order",
			map[string]any{
				"sortOrder": 7,
			},
			func(t *testing.T, g v1.CategoryGroupResponse) {
				assert.Equal(t, uint(7), g.Data.SortOrder)
			},
		},
		{
			"Archived",
			map[string]any{
				"archived": true,
			},
			func(t *testing.T, g v1.CategoryGroupResponse) {
				assert.True(t, g.Data.Archived)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, group.Data.Links.Self, tt.group)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var g v1.CategoryGroupResponse
			test.DecodeResponse(t, &r, &g)

			if tt.testFunc != nil {
				tt.testFunc(t, g)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryGroupsUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Category Group", uuid.New().String(), `{"name": "Not found"}`, http.StatusNotFound},
		{"Set Budget to uuid.Nil", "", v1.CategoryGroupEditable{}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				group := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{
					Name: "New Group",
					Note: "Auto-created for test",
				})

				tt.id = group.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-groups/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCategoryGroupsDelete verifies all cases for Category Group deletions.
func (suite *TestSuiteStandard) TestCategoryGroupsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Category Group", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				g := createTestCategoryGroup(t, v1.CategoryGroupEditable{})
				tt.id = g.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/category-groups/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCategoryGroupsGetSorted verifies that category groups are sorted by
// sort order first and name second.
func (suite *TestSuiteStandard) TestCategoryGroupsGetSorted() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	g1 := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{
		Name:      "Savings Goals",
		BudgetID:  b.Data.ID,
		SortOrder: 2,
	})

	g2 := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{
		Name:      "Everyday Expenses",
		BudgetID:  b.Data.ID,
		SortOrder: 1,
	})

	g3 := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{
		Name:      "Bills",
		BudgetID:  b.Data.ID,
		SortOrder: 1,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/category-groups", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var groups v1.CategoryGroupListResponse
	test.DecodeResponse(suite.T(), &r, &groups)

	require.Len(suite.T(), groups.Data, 3, "Category Group list has wrong length")

	assert.Equal(suite.T(), g3.Data.Name, groups.Data[0].Name)
	assert.Equal(suite.T(), g2.Data.Name, groups.Data[1].Name)
	assert.Equal(suite.T(), g1.Data.Name, groups.Data[2].Name)
}

func (suite *TestSuiteStandard) TestCategoryGroupsPagination() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	for i := 0; i < 10; i++ {
		createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{Name: fmt.Sprint(i), BudgetID: b.Data.ID})
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
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/category-groups?offset=%d&limit=%d", tt.offset, tt.limit), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var groups v1.CategoryGroupListResponse
			test.DecodeResponse(t, &r, &groups)

			assert.Equal(suite.T(), tt.offset, groups.Pagination.Offset)
			assert.Equal(suite.T(), tt.limit, groups.Pagination.Limit)
			assert.Equal(suite.T(), tt.expectedCount, groups.Pagination.Count)
			assert.Equal(suite.T(), tt.expectedTotal, groups.Pagination.Total)
		})
	}
}
