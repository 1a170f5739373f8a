package models_test

import (
	"github.com/budget-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	var item models.BudgetItem
	err := models.DB.First(&item, uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no budget item matching your query", err.Error())

	var instance models.MonthlyInstance
	err = models.DB.First(&instance, uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no monthly instance matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	var items []models.BudgetItem
	err := models.DB.Find(&items).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
