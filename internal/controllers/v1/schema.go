package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterSchemaRoutes registers the routes for the schema endpoint.
func RegisterSchemaRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSchema)
	r.GET("", GetSchema)
}

// SchemaField describes a single field of a resource.
type SchemaField struct {
	Name     string `json:"name" example:"owner"`    // Name of the field as used in the API
	Type     string `json:"type" example:"string"`   // Data type of the field
	Required bool   `json:"required" example:"true"` // Is the field required on creation?
	ReadOnly bool   `json:"readOnly" example:"false"` // Is the field managed by the backend?
}

// SchemaResource describes a resource with its fields and the
// filtering, searching and ordering the list endpoint supports.
type SchemaResource struct {
	Name         string        `json:"name" example:"BudgetItem"`                  // Name of the resource
	Fields       []SchemaField `json:"fields"`                                     // All fields of the resource
	SearchFields []string      `json:"searchFields" example:"name,owner"`          // Fields the search parameter matches against
	FilterFields []string      `json:"filterFields" example:"owner,isRepeating"`   // Fields the list endpoint can filter by
	Ordering     []string      `json:"ordering" example:"-createdAt,-id"`          // Default ordering of the list endpoint
}

type SchemaResponse struct {
	Data []SchemaResource `json:"data"` // The schemas for all resources
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schema
// @Success		204
// @Router			/v1/schema [options]
func OptionsSchema(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Resource schemas
// @Description	Returns the schemas of all resources, including the filters and search fields their list endpoints support
// @Tags			Schema
// @Produce		json
// @Success		200	{object}	SchemaResponse
// @Router			/v1/schema [get]
func GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, SchemaResponse{
		Data: []SchemaResource{
			{
				Name: "BudgetItem",
				Fields: []SchemaField{
					{Name: "id", Type: "uuid", ReadOnly: true},
					{Name: "createdAt", Type: "datetime", ReadOnly: true},
					{Name: "updatedAt", Type: "datetime", ReadOnly: true},
					{Name: "name", Type: "string", Required: true},
					{Name: "owner", Type: "string", Required: true},
					{Name: "amount", Type: "decimal", Required: true},
					{Name: "isRepeating", Type: "bool"},
					{Name: "endDate", Type: "date"},
				},
				SearchFields: []string{"name", "owner"},
				FilterFields: []string{"owner", "isRepeating", "endDateUntil", "fromDate", "untilDate"},
				Ordering:     []string{"-createdAt", "-id"},
			},
			{
				Name: "MonthlyInstance",
				Fields: []SchemaField{
					{Name: "id", Type: "uuid", ReadOnly: true},
					{Name: "createdAt", Type: "datetime", ReadOnly: true},
					{Name: "updatedAt", Type: "datetime", ReadOnly: true},
					{Name: "month", Type: "month", Required: true},
					{Name: "note", Type: "string"},
					{Name: "totalAmount", Type: "decimal", ReadOnly: true},
				},
				SearchFields: []string{"note"},
				FilterFields: []string{"month"},
				Ordering:     []string{"-month"},
			},
		},
	})
}
