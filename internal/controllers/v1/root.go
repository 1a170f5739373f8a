package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the routes for the v1 API root.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsRoot)
	r.GET("", GetRoot)
	r.DELETE("", Cleanup)
}

type RootLinks struct {
	BudgetItems      string `json:"budgetItems" example:"https://example.com/api/v1/budget-items"`           // URL of the budget item endpoints
	MonthlyInstances string `json:"monthlyInstances" example:"https://example.com/api/v1/monthly-instances"` // URL of the monthly instance endpoints
	Schema           string `json:"schema" example:"https://example.com/api/v1/schema"`                      // URL of the schema endpoint
	Import           string `json:"import" example:"https://example.com/api/v1/import"`                      // URL of the import endpoint
	Export           string `json:"export" example:"https://example.com/api/v1/export"`                      // URL of the export endpoint
}

type RootResponse struct {
	Links RootLinks `json:"links"` // URLs of the resource endpoints
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		v1 API
// @Description	Returns the links for the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			BudgetItems:      url + "/budget-items",
			MonthlyInstances: url + "/monthly-instances",
			Schema:           url + "/schema",
			Import:           url + "/import",
			Export:           url + "/export",
		},
	})
}
