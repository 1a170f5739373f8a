package models_test

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonthlyInstanceMonthUnique() {
	_ = suite.createTestMonthlyInstance(models.MonthlyInstance{
		Month: types.NewMonth(2024, 7),
	})

	instance := models.MonthlyInstance{
		Month: types.NewMonth(2024, 7),
	}

	err := models.DB.Create(&instance).Error
	assert.ErrorIs(suite.T(), err, models.ErrMonthlyInstanceMonthNotUnique)

	// A different month is fine
	_ = suite.createTestMonthlyInstance(models.MonthlyInstance{
		Month: types.NewMonth(2024, 8),
	})
}

func (suite *TestSuiteStandard) TestMonthlyInstanceTrimWhitespace() {
	note := " Whitespace    "

	instance := suite.createTestMonthlyInstance(models.MonthlyInstance{
		Month: types.NewMonth(2024, 7),
		Note:  note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(note), instance.Note)
}

func (suite *TestSuiteStandard) TestMonthlyInstanceCalculateTotal() {
	instance := suite.createTestMonthlyInstance(models.MonthlyInstance{
		Month: types.NewMonth(2024, 7),
	})

	items := []models.BudgetItem{
		suite.createTestBudgetItem(models.BudgetItem{Amount: decimal.NewFromFloat(1200)}),
		suite.createTestBudgetItem(models.BudgetItem{Amount: decimal.NewFromFloat(4.99)}),
	}

	err := instance.LinkItems(models.DB, items)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), instance.TotalAmount.Equal(decimal.NewFromFloat(1204.99)), "Total is %s", instance.TotalAmount)

	// The total is persisted
	var check models.MonthlyInstance
	err = models.DB.First(&check, instance.ID).Error
	require.Nil(suite.T(), err)
	assert.True(suite.T(), check.TotalAmount.Equal(decimal.NewFromFloat(1204.99)), "Persisted total is %s", check.TotalAmount)

	linked, err := instance.Items(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), linked, 2)
}

func (suite *TestSuiteStandard) TestMonthlyInstancePopulateRepeating() {
	ended := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	endsInMonth := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	_ = suite.createTestBudgetItem(models.BudgetItem{Name: "Rent", IsRepeating: true})
	_ = suite.createTestBudgetItem(models.BudgetItem{Name: "Gym", IsRepeating: true, EndDate: &endsInMonth})
	_ = suite.createTestBudgetItem(models.BudgetItem{Name: "Old subscription", IsRepeating: true, EndDate: &ended})
	_ = suite.createTestBudgetItem(models.BudgetItem{Name: "One-off repair", IsRepeating: false})

	instance := suite.createTestMonthlyInstance(models.MonthlyInstance{
		Month: types.NewMonth(2024, 7),
	})

	err := instance.PopulateRepeating(models.DB, "")
	require.Nil(suite.T(), err)

	items, err := instance.Items(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), items, 2)

	names := []string{items[0].Name, items[1].Name}
	assert.Contains(suite.T(), names, "Rent")
	assert.Contains(suite.T(), names, "Gym")
}

func (suite *TestSuiteStandard) TestMonthlyInstancePopulateOwnerPattern() {
	_ = suite.createTestBudgetItem(models.BudgetItem{Name: "Rent", Owner: "Jane Doe", IsRepeating: true})
	_ = suite.createTestBudgetItem(models.BudgetItem{Name: "Car insurance", Owner: "Jane Smith", IsRepeating: true})
	_ = suite.createTestBudgetItem(models.BudgetItem{Name: "Netflix", Owner: "John Doe", IsRepeating: true})

	instance := suite.createTestMonthlyInstance(models.MonthlyInstance{
		Month: types.NewMonth(2024, 7),
	})

	err := instance.PopulateRepeating(models.DB, "Jane*")
	require.Nil(suite.T(), err)

	items, err := instance.Items(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), items, 2)

	for _, item := range items {
		assert.True(suite.T(), strings.HasPrefix(item.Owner, "Jane"), "Owner %q does not match the pattern", item.Owner)
	}
}

func (suite *TestSuiteStandard) TestMonthlyInstanceExport() {
	t := suite.T()

	_ = suite.createTestMonthlyInstance(models.MonthlyInstance{Month: types.NewMonth(2024, 6)})
	_ = suite.createTestMonthlyInstance(models.MonthlyInstance{Month: types.NewMonth(2024, 7)})

	raw, err := models.MonthlyInstance{}.Export()
	if err != nil {
		require.Fail(t, "monthly instance export failed", err)
	}

	var instances []models.MonthlyInstance
	err = json.Unmarshal(raw, &instances)
	if err != nil {
		require.Fail(t, "JSON could not be unmarshaled", err)
	}

	require.Len(t, instances, 2, "Number of monthly instances in export is wrong")
}
