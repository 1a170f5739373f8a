package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetItem is a single tracked financial obligation like rent or an
// insurance premium. It can be recurring or a one-off expense.
type BudgetItem struct {
	DefaultModel
	Name        string
	Owner       string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(10,2)"`
	IsRepeating bool
	EndDate     *time.Time `gorm:"type:date"` // nil means the item never ends
}

// MinimumAmount is the smallest amount a budget item may have.
var MinimumAmount = decimal.New(1, -2)

var (
	ErrBudgetItemNameEmpty      = errors.New("the name of the budget item must not be empty")
	ErrBudgetItemOwnerEmpty     = errors.New("the owner of the budget item must not be empty")
	ErrBudgetItemAmountTooSmall = errors.New("the amount of the budget item must be 0.01 or more")
)

func (b *BudgetItem) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Owner = strings.TrimSpace(b.Owner)

	return nil
}

// AfterSave validates the budget item. Since the hook runs in the same
// transaction as the write, a validation error rolls the write back and
// nothing is persisted.
func (b *BudgetItem) AfterSave(_ *gorm.DB) error {
	if b.Name == "" {
		return ErrBudgetItemNameEmpty
	}

	if b.Owner == "" {
		return ErrBudgetItemOwnerEmpty
	}

	if b.Amount.LessThan(MinimumAmount) {
		return ErrBudgetItemAmountTooSmall
	}

	return nil
}

// Returns all budget items on this instance for export
func (BudgetItem) Export() (json.RawMessage, error) {
	var items []BudgetItem
	err := DB.Where(&BudgetItem{}).Find(&items).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&items)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
