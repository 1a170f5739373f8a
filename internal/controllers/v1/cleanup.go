package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary		Delete everything
// @Description	Permanently deletes all resources
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// The link table rows go first so that no orphaned links survive
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec("DELETE FROM monthly_instance_items").Error
		if err != nil {
			return err
		}

		err = tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.MonthlyInstance{}).Error
		if err != nil {
			return err
		}

		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.BudgetItem{}).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
