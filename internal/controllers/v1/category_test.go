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

func createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.GroupID == uuid.Nil {
		c.GroupID = createTestCategoryGroup(t, v1.CategoryGroupEditable{Name: "Testing group"}).Data.ID
	}

	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &category)

	if r.Code == http.StatusCreated {
		return category.Data[0]
	}

	return v1.CategoryResponse{}
}

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	g := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestCategory(t, v1.CategoryEditable{GroupID: g.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/categories", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CategoryListResponse
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

// TestCategoriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Categories endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/categories", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestCategoriesGetSingle verifies that requests for the resource endpoints
// are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Category", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
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
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")

			var category v1.CategoryResponse
			test.DecodeResponse(t, &r, &category)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	g1 := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{})
	g2 := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name:     "Category Name",
		Note:     "A note for this category",
		GroupID:  g1.Data.ID,
		Archived: true,
	})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name:    "Groceries",
		Note:    "For Groceries",
		GroupID: g2.Data.ID,
	})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name:    "Daily stuff",
		Note:    "Groceries, Drug Store, …",
		GroupID: g2.Data.ID,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Group 1", fmt.Sprintf("group=%s", g1.Data.ID), 1},
		{"Group 2", fmt.Sprintf("group=%s", g2.Data.ID), 2},
		{"Group Not Existing", "group=c9e4ee7a-e702-4f92-b168-11a95b22c7aa", 0},
		{"Empty Note", "note=", 0},
		{"Empty Name", "name=", 0},
		{"Name & Note", "name=Category Name&note=A note for this category", 1},
		{"Fuzzy name, no note", "name=Category&note=", 0},
		{"Fuzzy name", "name=t", 2},
		{"Fuzzy note, no name", "name=&note=Groceries", 0},
		{"Fuzzy note", "note=Groceries", 2},
		{"Not archived", "archived=false", 2},
		{"Archived", "archived=true", 1},
		{"Search for 'groceries'", "search=groceries", 2},
		{"Search for 'FOR'", "search=FOR", 2},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CategoryListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	// Test category for uniqueness
	c := createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Unique Category Name for Group",
	})

	tests := []struct {
		name     string
		body     any
		status   int                                             // expected HTTP status
		testFunc func(t *testing.T, c v1.CategoryCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field CategoryEditable.note of type string", *c.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *c.Error)
			},
		},
		{
			"No Group",
			`[{ "note": "Some text" }]`,
			http.StatusNotFound,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "there is no category group matching your query", *c.Data[0].Error)
			},
		},
		{
			"Non-existing Group",
			`[{ "groupId": "ea85ad1a-3679-4ced-b83b-89566c12ece9" }]`,
			http.StatusNotFound,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "there is no category group matching your query", *c.Data[0].Error)
			},
		},
		{
			"Duplicate name in Group",
			[]v1.CategoryEditable{
				{
					GroupID: c.Data.GroupID,
					Name:    c.Data.Name,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "the category name must be unique for the category group", *c.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var c v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &c)

			if tt.testFunc != nil {
				tt.testFunc(t, c)
			}
		})
	}
}

// Verify that updating categories works as desired
func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	group := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{BudgetID: budget.Data.ID})
	otherGroup := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{BudgetID: budget.Data.ID})
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Name of the category", GroupID: group.Data.ID})

	tests := []struct {
		name     string                                    // name of the test
		category map[string]any                            // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, c v1.CategoryResponse) // tests to perform against the updated category resource
	}{
		{
			"Name, Note",
			map[string]any{
				"name": "Another name",
				"note": "New note!",
			},
			func(t *testing.T, c v1.CategoryResponse) {
				assert.Equal(t, "New note!", c.Data.Note)
				assert.Equal(t, "Another name", c.Data.Name)
			},
		},
		{
			"Group in same budget",
			map[string]any{
				"groupId": otherGroup.Data.ID,
			},
			func(t *testing.T, c v1.CategoryResponse) {
				assert.Equal(t, otherGroup.Data.ID, c.Data.GroupID)
			},
		},
		{
			"Archived",
			map[string]any{
				"archived": true,
			},
			func(t *testing.T, c v1.CategoryResponse) {
				assert.True(t, c.Data.Archived)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, category.Data.Links.Self, tt.category)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var c v1.CategoryResponse
			test.DecodeResponse(t, &r, &c)

			if tt.testFunc != nil {
				tt.testFunc(t, c)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Category", uuid.New().String(), `{"name": "Not found"}`, http.StatusNotFound},
		{"Set Group to uuid.Nil", "", v1.CategoryEditable{}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				category := createTestCategory(suite.T(), v1.CategoryEditable{
					Name: "New Category",
					Note: "Auto-created for test",
				})

				tt.id = category.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCategoriesUpdateGroupOtherBudget verifies that a category cannot move
// to a category group in another budget.
func (suite *TestSuiteStandard) TestCategoriesUpdateGroupOtherBudget() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})
	otherGroup := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"groupId": otherGroup.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the category cannot be moved to a category group in a different budget", *response.Error)
}

// TestCategoriesDelete verifies all cases for Category deletions.
func (suite *TestSuiteStandard) TestCategoriesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Category", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				c := createTestCategory(t, v1.CategoryEditable{})
				tt.id = c.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCategoriesDeleteRemovesMatchRules verifies that deleting a category
// deletes the match rules that assign it.
func (suite *TestSuiteStandard) TestCategoriesDeleteRemovesMatchRules() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	group := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{BudgetID: budget.Data.ID})
	category := createTestCategory(suite.T(), v1.CategoryEditable{GroupID: group.Data.ID})

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		BudgetID:   budget.Data.ID,
		CategoryID: category.Data.ID,
		Match:      "Supermarket*",
	})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	list := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules", "")
	test.AssertHTTPStatus(suite.T(), &list, http.StatusOK)

	var rules v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &list, &rules)
	assert.Len(suite.T(), rules.Data, 0)
}

// TestCategoriesGetSorted verifies that categories are sorted by sort order
// first and name second.
func (suite *TestSuiteStandard) TestCategoriesGetSorted() {
	group := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{})

	c1 := createTestCategory(suite.T(), v1.CategoryEditable{
		Name:      "Third by sort order",
		GroupID:   group.Data.ID,
		SortOrder: 2,
	})

	c2 := createTestCategory(suite.T(), v1.CategoryEditable{
		Name:      "Beta",
		GroupID:   group.Data.ID,
		SortOrder: 1,
	})

	c3 := createTestCategory(suite.T(), v1.CategoryEditable{
		Name:      "Alpha",
		GroupID:   group.Data.ID,
		SortOrder: 1,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)

	require.Len(suite.T(), categories.Data, 3, "Category list has wrong length")

	assert.Equal(suite.T(), c3.Data.Name, categories.Data[0].Name)
	assert.Equal(suite.T(), c2.Data.Name, categories.Data[1].Name)
	assert.Equal(suite.T(), c1.Data.Name, categories.Data[2].Name)
}

func (suite *TestSuiteStandard) TestCategoriesPagination() {
	group := createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{})

	for i := 0; i < 10; i++ {
		createTestCategory(suite.T(), v1.CategoryEditable{Name: fmt.Sprint(i), GroupID: group.Data.ID})
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
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?offset=%d&limit=%d", tt.offset, tt.limit), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var categories v1.CategoryListResponse
			test.DecodeResponse(t, &r, &categories)

			assert.Equal(suite.T(), tt.offset, categories.Pagination.Offset)
			assert.Equal(suite.T(), tt.limit, categories.Pagination.Limit)
			assert.Equal(suite.T(), tt.expectedCount, categories.Pagination.Count)
			assert.Equal(suite.T(), tt.expectedTotal, categories.Pagination.Total)
		})
	}
}
