package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/internal/types"
	bt_uuid "github.com/budget-tracker/backend/internal/uuid"
	"github.com/budget-tracker/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCleanup() {
	item := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{})
	instance := createTestMonthlyInstance(suite.T(), v1.MonthlyInstanceEditable{Month: types.NewMonth(2024, 7)})

	r := test.Request(suite.T(), http.MethodPost, instance.Data.Links.Items, v1.MonthlyInstanceItemsRequest{
		ItemIDs: []bt_uuid.UUID{{UUID: item.Data.ID}},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Verify that all resources are deleted
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.BudgetItem{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count, "Budget items were not deleted")

	require.Nil(suite.T(), models.DB.Model(&models.MonthlyInstance{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count, "Monthly instances were not deleted")
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Wrong confirmation", "?confirm=on-second-thought-rather-not"},
		{"No confirmation", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_ = createTestBudgetItem(t, v1.BudgetItemEditable{})

			r := test.Request(t, http.MethodDelete, "http://example.com/v1"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var count int64
			require.Nil(t, models.DB.Model(&models.BudgetItem{}).Count(&count).Error)
			assert.NotZero(t, count, "Resources were deleted without the correct confirmation")
		})
	}
}
