package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyInstance collects the budget items that apply to one month,
// together with their persisted total.
type MonthlyInstance struct {
	DefaultModel
	Month       types.Month     `gorm:"uniqueIndex"`
	Note        string
	TotalAmount decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	BudgetItems []BudgetItem    `json:"-" gorm:"many2many:monthly_instance_items"`
}

var ErrMonthlyInstanceMonthNotUnique = errors.New("there can only be one monthly instance per month")

func (m *MonthlyInstance) BeforeSave(_ *gorm.DB) error {
	m.Note = strings.TrimSpace(m.Note)

	return nil
}

// Items returns the budget items linked to this monthly instance.
func (m MonthlyInstance) Items(db *gorm.DB) ([]BudgetItem, error) {
	var items []BudgetItem
	err := db.Model(&m).Association("BudgetItems").Find(&items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// LinkItems adds the budget items to the monthly instance and updates
// the persisted total.
func (m *MonthlyInstance) LinkItems(db *gorm.DB, items []BudgetItem) error {
	for _, item := range items {
		err := db.Model(m).Association("BudgetItems").Append(&item)
		if err != nil {
			return err
		}
	}

	return m.CalculateTotal(db)
}

// CalculateTotal sums the amounts of all linked budget items and persists
// the result on the monthly instance.
func (m *MonthlyInstance) CalculateTotal(db *gorm.DB) error {
	items, err := m.Items(db)
	if err != nil {
		return err
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	m.TotalAmount = total
	return db.Model(m).Update("total_amount", total).Error
}

// PopulateRepeating links all repeating budget items that are still active
// in the month of this instance: items without an end date and items whose
// end date is on or after the first day of the month.
//
// With a non-empty ownerPattern, only items whose owner matches the glob
// pattern are linked, e.g. "Jane *" or "*Doe".
func (m *MonthlyInstance) PopulateRepeating(db *gorm.DB, ownerPattern string) error {
	var candidates []BudgetItem
	err := db.
		Where(&BudgetItem{IsRepeating: true}, "IsRepeating").
		Where(db.Where("end_date IS NULL").Or("end_date >= date(?)", m.Month.FirstDay())).
		Find(&candidates).Error
	if err != nil {
		return err
	}

	var items []BudgetItem
	for _, item := range candidates {
		if ownerPattern != "" && !glob.Glob(ownerPattern, item.Owner) {
			continue
		}

		items = append(items, item)
	}

	return m.LinkItems(db, items)
}

// Returns all monthly instances on this instance for export
func (MonthlyInstance) Export() (json.RawMessage, error) {
	var instances []MonthlyInstance
	err := DB.Where(&MonthlyInstance{}).Find(&instances).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&instances)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
