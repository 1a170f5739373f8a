package v1

import (
	"fmt"
	"time"

	"github.com/budget-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetItemEditable represents all user configurable parameters of a budget item
type BudgetItemEditable struct {
	Name  string `json:"name" example:"Monthly Rent" default:""` // Name of the budget item
	Owner string `json:"owner" example:"Jane Doe" default:""`    // Owner of the budget item

	// The minimum value is 0.01, items with a smaller amount are rejected.
	Amount decimal.Decimal `json:"amount" example:"1200.00" minimum:"0.01" multipleOf:"0.01"` // The amount for the budget item

	IsRepeating bool       `json:"isRepeating" example:"true" default:"false"`     // Does the expense repeat?
	EndDate     *time.Time `json:"endDate" example:"2024-12-31T00:00:00Z"`         // Date after which the item no longer applies. null means that it never ends
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetItemEditable) model() models.BudgetItem {
	return models.BudgetItem{
		Name:        editable.Name,
		Owner:       editable.Owner,
		Amount:      editable.Amount,
		IsRepeating: editable.IsRepeating,
		EndDate:     editable.EndDate,
	}
}

type BudgetItemLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budget-items/d430d7c3-d14c-4712-9336-ee56965a6673"` // The budget item itself
}

// BudgetItem is the representation of a budget item in API v1.
type BudgetItem struct {
	models.DefaultModel
	BudgetItemEditable
	Links BudgetItemLinks `json:"links"`
}

// newBudgetItem returns the API v1 representation of the resource
func newBudgetItem(c *gin.Context, model models.BudgetItem) BudgetItem {
	url := c.GetString(string(models.DBContextURL))

	return BudgetItem{
		DefaultModel: model.DefaultModel,
		BudgetItemEditable: BudgetItemEditable{
			Name:        model.Name,
			Owner:       model.Owner,
			Amount:      model.Amount,
			IsRepeating: model.IsRepeating,
			EndDate:     model.EndDate,
		},
		Links: BudgetItemLinks{
			Self: fmt.Sprintf("%s/v1/budget-items/%s", url, model.ID),
		},
	}
}

type BudgetItemListResponse struct {
	Data       []BudgetItem `json:"data"`                                                          // List of budget items
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type BudgetItemCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetItemResponse `json:"data"`                                                          // List of the created budget items or their respective error
}

func (b *BudgetItemCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetItemResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetItemResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget item
	Data  *BudgetItem `json:"data"`                                                          // The budget item data, if the request was successful
}

type BudgetItemQueryFilter struct {
	Name         string    `form:"name" filterField:"false"`         // By substring of the name
	Owner        string    `form:"owner"`                            // By exact owner
	IsRepeating  bool      `form:"isRepeating"`                      // Does the expense repeat?
	EndDateUntil time.Time `form:"endDateUntil" filterField:"false"` // Items ending before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided.
	FromDate     time.Time `form:"fromDate" filterField:"false"`     // Items created at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided.
	UntilDate    time.Time `form:"untilDate" filterField:"false"`    // Items created before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided.
	Search       string    `form:"search" filterField:"false"`       // By string in name or owner
	Offset       uint      `form:"offset" filterField:"false"`       // The offset of the first budget item returned. Defaults to 0.
	Limit        int       `form:"limit" filterField:"false"`        // Maximum number of budget items to return. Defaults to 50.
}

func (f BudgetItemQueryFilter) model() models.BudgetItem {
	// This does not set the string or date fields since they are
	// handled in the controller function
	return models.BudgetItem{
		Owner:       f.Owner,
		IsRepeating: f.IsRepeating,
	}
}
