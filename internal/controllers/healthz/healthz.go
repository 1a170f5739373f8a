// Package healthz provides the healthiness endpoint for the backend.
package healthz

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the routes for the healthz endpoint.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the health of the API and its dependencies
// @Tags			General
// @Success		204
// @Failure		500	{object}	healthResponse
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, healthResponse{
			Error: &e,
		})
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, healthResponse{
			Error: &e,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

type healthResponse struct {
	Error *string `json:"error" example:"database is unreachable"` // The error, if one occurred
}
