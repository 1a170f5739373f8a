package v1

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for exports.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

type ExportResponse struct {
	Version      string                     `json:"version" example:"1"`                          // The API version the export was created with
	CreationTime time.Time                  `json:"creationTime" example:"2024-07-01T15:04:05Z"`  // Time the export was created at
	Data         map[string]json.RawMessage `json:"data"`                                         // All resources, keyed by their type
	Error        *string                    `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export everything
// @Description	Returns all resources in a single response, for backups
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	data := make(map[string]json.RawMessage, len(models.Registry))

	for _, model := range models.Registry {
		raw, err := model.Export()
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExportResponse{
				Error: &s,
			})
			return
		}

		data[reflect.TypeOf(model).Name()] = raw
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      "1",
		CreationTime: time.Now().UTC(),
		Data:         data,
	})
}
