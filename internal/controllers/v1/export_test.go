package v1_test

import (
	"encoding/json"
	"net/http"
	"time"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExport() {
	item := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{Name: "Monthly Rent"})
	_ = createTestMonthlyInstance(suite.T(), v1.MonthlyInstanceEditable{Month: types.NewMonth(2024, 7)})

	now := time.Now()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "1", response.Version)
	assert.LessOrEqual(suite.T(), response.CreationTime.Sub(now).Seconds(), 1.0)

	// Every registered resource type is part of the export
	assert.Len(suite.T(), response.Data, len(models.Registry))

	var items []models.BudgetItem
	require.Nil(suite.T(), json.Unmarshal(response.Data["BudgetItem"], &items))
	require.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), "Monthly Rent", items[0].Name)
	assert.Equal(suite.T(), item.Data.CreatedAt, items[0].CreatedAt)

	var instances []models.MonthlyInstance
	require.Nil(suite.T(), json.Unmarshal(response.Data["MonthlyInstance"], &instances))
	require.Len(suite.T(), instances, 1)
	assert.Equal(suite.T(), types.NewMonth(2024, 7), instances[0].Month)
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *response.Error)
}
