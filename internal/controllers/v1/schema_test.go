package v1_test

import (
	"net/http"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSchemaOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/schema", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSchemaGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/schema", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SchemaResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)

	budgetItem := response.Data[0]
	assert.Equal(suite.T(), "BudgetItem", budgetItem.Name)
	assert.Equal(suite.T(), []string{"name", "owner"}, budgetItem.SearchFields)
	assert.Contains(suite.T(), budgetItem.FilterFields, "owner")
	assert.Contains(suite.T(), budgetItem.FilterFields, "isRepeating")
	assert.Equal(suite.T(), []string{"-createdAt", "-id"}, budgetItem.Ordering)

	// The timestamps are managed by the backend
	for _, field := range budgetItem.Fields {
		if field.Name == "createdAt" || field.Name == "updatedAt" || field.Name == "id" {
			assert.True(suite.T(), field.ReadOnly, "Field %q must be read only", field.Name)
		}
	}

	assert.Equal(suite.T(), "MonthlyInstance", response.Data[1].Name)
}
