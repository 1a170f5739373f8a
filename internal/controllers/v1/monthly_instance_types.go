package v1

import (
	"fmt"

	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/internal/types"
	bt_uuid "github.com/budget-tracker/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MonthlyInstanceEditable represents all user configurable parameters of a monthly instance
type MonthlyInstanceEditable struct {
	Month types.Month `json:"month" example:"2024-07-01T00:00:00Z"` // The month this instance belongs to
	Note  string      `json:"note" example:"Bonus month" default:""` // A note for this month
}

// model returns the database resource for the API representation of the editable fields
func (editable MonthlyInstanceEditable) model() models.MonthlyInstance {
	return models.MonthlyInstance{
		Month: editable.Month,
		Note:  editable.Note,
	}
}

type MonthlyInstanceLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/monthly-instances/a4e9b9a7-b86f-4a07-9cbe-c9e6ba1678a0"`          // The monthly instance itself
	Items    string `json:"items" example:"https://example.com/api/v1/monthly-instances/a4e9b9a7-b86f-4a07-9cbe-c9e6ba1678a0/items"`    // The budget items linked to this instance
	Populate string `json:"populate" example:"https://example.com/api/v1/monthly-instances/a4e9b9a7-b86f-4a07-9cbe-c9e6ba1678a0/populate"` // Populate the instance with repeating items
}

// MonthlyInstance is the representation of a monthly instance in API v1.
type MonthlyInstance struct {
	models.DefaultModel
	MonthlyInstanceEditable
	TotalAmount decimal.Decimal      `json:"totalAmount" example:"2450.00"` // Sum of the amounts of all linked budget items
	Links       MonthlyInstanceLinks `json:"links"`
}

// newMonthlyInstance returns the API v1 representation of the resource
func newMonthlyInstance(c *gin.Context, model models.MonthlyInstance) MonthlyInstance {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/monthly-instances/%s", url, model.ID)

	return MonthlyInstance{
		DefaultModel: model.DefaultModel,
		MonthlyInstanceEditable: MonthlyInstanceEditable{
			Month: model.Month,
			Note:  model.Note,
		},
		TotalAmount: model.TotalAmount,
		Links: MonthlyInstanceLinks{
			Self:     self,
			Items:    self + "/items",
			Populate: self + "/populate",
		},
	}
}

type MonthlyInstanceListResponse struct {
	Data       []MonthlyInstance `json:"data"`                                                          // List of monthly instances
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination       `json:"pagination"`                                                    // Pagination information
}

type MonthlyInstanceCreateResponse struct {
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MonthlyInstanceResponse `json:"data"`                                                          // List of the created monthly instances or their respective error
}

func (m *MonthlyInstanceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MonthlyInstanceResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MonthlyInstanceResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this monthly instance
	Data  *MonthlyInstance `json:"data"`                                                          // The monthly instance data, if the request was successful
}

type MonthlyInstanceQueryFilter struct {
	Month  types.Month `form:"month" filterField:"false"`  // By exact month
	Note   string      `form:"note" filterField:"false"`   // By substring of the note
	Offset uint        `form:"offset" filterField:"false"` // The offset of the first monthly instance returned. Defaults to 0.
	Limit  int         `form:"limit" filterField:"false"`  // Maximum number of monthly instances to return. Defaults to 50.
}

// MonthlyInstanceItemsRequest is the body for linking budget items to a monthly instance.
type MonthlyInstanceItemsRequest struct {
	ItemIDs []bt_uuid.UUID `json:"itemIds" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // IDs of the budget items to link
}

// MonthlyInstancePopulateQuery is the query for populating a monthly instance.
type MonthlyInstancePopulateQuery struct {
	OwnerPattern string `form:"ownerPattern" example:"Jane*"` // Only populate with items whose owner matches this glob pattern. Defaults to all owners.
}
