package v1_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), response.Error, models.ErrGeneral.Error())
}

// TestExport verifies that the export contains all model types, including
// soft-deleted resources.
func (suite *TestSuiteStandard) TestExport() {
	t := suite.T()

	budget := createTestBudget(t, v1.BudgetEditable{Name: "Export budget"})
	deleted := createTestBudget(t, v1.BudgetEditable{Name: "Deleted budget"})
	account := createTestAccount(t, v1.AccountEditable{BudgetID: budget.Data.ID})

	recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%s", deleted.Data.ID), "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, "GNU Terry Pratchett", response.Clacks)
	assert.Equal(t, "0.0.0", response.Version)
	assert.WithinDuration(t, time.Now(), response.CreationTime, time.Second)
	assert.Len(t, response.Data, len(models.Registry))

	var budgets []models.Budget
	require.Nil(t, json.Unmarshal(response.Data["Budget"], &budgets))
	require.Len(t, budgets, 2, "the deleted budget is part of the export")

	var names []string
	for _, b := range budgets {
		names = append(names, b.Name)
	}
	assert.ElementsMatch(t, []string{"Export budget", "Deleted budget"}, names)

	var accounts []models.Account
	require.Nil(t, json.Unmarshal(response.Data["Account"], &accounts))
	require.Len(t, accounts, 1)
	assert.Equal(t, account.Data.ID, accounts[0].ID)
}
