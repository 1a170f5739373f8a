package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterMonthlyInstanceRoutes registers the routes for monthly instances
// with the RouterGroup that is passed.
func RegisterMonthlyInstanceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMonthlyInstanceList)
		r.GET("", GetMonthlyInstances)
		r.POST("", CreateMonthlyInstances)
	}

	// Monthly instance with ID
	{
		r.OPTIONS("/:id", OptionsMonthlyInstanceDetail)
		r.GET("/:id", GetMonthlyInstance)
		r.PATCH("/:id", UpdateMonthlyInstance)
		r.DELETE("/:id", DeleteMonthlyInstance)
	}

	// Budget items of a monthly instance
	{
		r.OPTIONS("/:id/items", OptionsMonthlyInstanceItems)
		r.GET("/:id/items", GetMonthlyInstanceItems)
		r.POST("/:id/items", LinkMonthlyInstanceItems)
	}

	// Populating a monthly instance with repeating items
	{
		r.OPTIONS("/:id/populate", OptionsMonthlyInstancePopulate)
		r.POST("/:id/populate", PopulateMonthlyInstance)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyInstances
// @Success		204
// @Router			/v1/monthly-instances [options]
func OptionsMonthlyInstanceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyInstances
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-instances/{id} [options]
func OptionsMonthlyInstanceDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.MonthlyInstance{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyInstances
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-instances/{id}/items [options]
func OptionsMonthlyInstanceItems(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var instance models.MonthlyInstance
	err = models.DB.First(&instance, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyInstances
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-instances/{id}/populate [options]
func OptionsMonthlyInstancePopulate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var instance models.MonthlyInstance
	err = models.DB.First(&instance, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create monthly instances
// @Description	Creates new monthly instances
// @Tags			MonthlyInstances
// @Produce		json
// @Success		201					{object}	MonthlyInstanceCreateResponse
// @Failure		400					{object}	MonthlyInstanceCreateResponse
// @Failure		500					{object}	MonthlyInstanceCreateResponse
// @Param			monthlyInstances	body		[]MonthlyInstanceEditable	true	"Monthly instances"
// @Router			/v1/monthly-instances [post]
func CreateMonthlyInstances(c *gin.Context) {
	var editables []MonthlyInstanceEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyInstanceCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := MonthlyInstanceCreateResponse{}

	for _, editable := range editables {
		instance := editable.model()

		err = models.DB.Create(&instance).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newMonthlyInstance(c, instance)
		r.Data = append(r.Data, MonthlyInstanceResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get monthly instances
// @Description	Returns a list of monthly instances
// @Tags			MonthlyInstances
// @Produce		json
// @Success		200	{object}	MonthlyInstanceListResponse
// @Failure		400	{object}	MonthlyInstanceListResponse
// @Failure		500	{object}	MonthlyInstanceListResponse
// @Router			/v1/monthly-instances [get]
// @Param			month	query	string	false	"Filter by exact month"
// @Param			note	query	string	false	"Filter by substring of the note"
// @Param			offset	query	uint	false	"The offset of the first monthly instance returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of monthly instances to return. Defaults to 50."
func GetMonthlyInstances(c *gin.Context) {
	var filter MonthlyInstanceQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthlyInstanceListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Newest month first
	q := models.DB.Order("monthly_instances.month DESC")

	if !filter.Month.IsZero() {
		q = q.Where("monthly_instances.month = ?", filter.Month)
	}

	if filter.Note != "" {
		q = q.Where("note LIKE ?", "%"+filter.Note+"%")
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 monthly instances and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var instances []models.MonthlyInstance
	err := q.Find(&instances).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyInstanceListResponse{
			Error: &e,
		})
		return
	}

	data := make([]MonthlyInstance, 0)
	for _, instance := range instances {
		data = append(data, newMonthlyInstance(c, instance))
	}

	c.JSON(http.StatusOK, MonthlyInstanceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get monthly instance
// @Description	Returns a specific monthly instance
// @Tags			MonthlyInstances
// @Produce		json
// @Success		200	{object}	MonthlyInstanceResponse
// @Failure		400	{object}	MonthlyInstanceResponse
// @Failure		404	{object}	MonthlyInstanceResponse
// @Failure		500	{object}	MonthlyInstanceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-instances/{id} [get]
func GetMonthlyInstance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	var instance models.MonthlyInstance
	err = models.DB.First(&instance, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	data := newMonthlyInstance(c, instance)
	c.JSON(http.StatusOK, MonthlyInstanceResponse{Data: &data})
}

// @Summary		Update monthly instance
// @Description	Updates an existing monthly instance. Only values to be updated need to be specified.
// @Tags			MonthlyInstances
// @Accept			json
// @Produce		json
// @Success		200				{object}	MonthlyInstanceResponse
// @Failure		400				{object}	MonthlyInstanceResponse
// @Failure		404				{object}	MonthlyInstanceResponse
// @Failure		500				{object}	MonthlyInstanceResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			monthlyInstance	body		MonthlyInstanceEditable	true	"Monthly instance"
// @Router			/v1/monthly-instances/{id} [patch]
func UpdateMonthlyInstance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	var instance models.MonthlyInstance
	err = models.DB.First(&instance, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MonthlyInstanceEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	var data MonthlyInstanceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&instance).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	r := newMonthlyInstance(c, instance)
	c.JSON(http.StatusOK, MonthlyInstanceResponse{Data: &r})
}

// @Summary		Delete monthly instance
// @Description	Deletes a monthly instance. The linked budget items are kept.
// @Tags			MonthlyInstances
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-instances/{id} [delete]
func DeleteMonthlyInstance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var instance models.MonthlyInstance
	err = models.DB.First(&instance, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Remove the links to the budget items, then the instance itself
	err = models.DB.Model(&instance).Association("BudgetItems").Clear()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&instance).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get linked budget items
// @Description	Returns the budget items linked to the monthly instance
// @Tags			MonthlyInstances
// @Produce		json
// @Success		200	{object}	BudgetItemListResponse
// @Failure		400	{object}	BudgetItemListResponse
// @Failure		404	{object}	BudgetItemListResponse
// @Failure		500	{object}	BudgetItemListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-instances/{id}/items [get]
func GetMonthlyInstanceItems(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	var instance models.MonthlyInstance
	err = models.DB.First(&instance, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	items, err := instance.Items(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	data := make([]BudgetItem, 0)
	for _, item := range items {
		data = append(data, newBudgetItem(c, item))
	}

	c.JSON(http.StatusOK, BudgetItemListResponse{
		Data: data,
		Pagination: &Pagination{
			Count: len(data),
			Total: int64(len(data)),
			Limit: len(data),
		},
	})
}

// @Summary		Link budget items
// @Description	Links the budget items to the monthly instance and recalculates its total
// @Tags			MonthlyInstances
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthlyInstanceResponse
// @Failure		400		{object}	MonthlyInstanceResponse
// @Failure		404		{object}	MonthlyInstanceResponse
// @Failure		500		{object}	MonthlyInstanceResponse
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			items	body		MonthlyInstanceItemsRequest	true	"Budget items to link"
// @Router			/v1/monthly-instances/{id}/items [post]
func LinkMonthlyInstanceItems(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	var instance models.MonthlyInstance
	err = models.DB.First(&instance, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	var body MonthlyInstanceItemsRequest
	err = httputil.BindData(c, &body)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	var items []models.BudgetItem
	for _, id := range body.ItemIDs {
		var item models.BudgetItem
		err = models.DB.First(&item, id).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), MonthlyInstanceResponse{
				Error: &s,
			})
			return
		}

		items = append(items, item)
	}

	err = instance.LinkItems(models.DB, items)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	data := newMonthlyInstance(c, instance)
	c.JSON(http.StatusOK, MonthlyInstanceResponse{Data: &data})
}

// @Summary		Populate monthly instance
// @Description	Links all repeating budget items that are still active in the month of the instance and recalculates its total
// @Tags			MonthlyInstances
// @Produce		json
// @Success		200				{object}	MonthlyInstanceResponse
// @Failure		400				{object}	MonthlyInstanceResponse
// @Failure		404				{object}	MonthlyInstanceResponse
// @Failure		500				{object}	MonthlyInstanceResponse
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			ownerPattern	query		string	false	"Only populate with items whose owner matches this glob pattern"
// @Router			/v1/monthly-instances/{id}/populate [post]
func PopulateMonthlyInstance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	var instance models.MonthlyInstance
	err = models.DB.First(&instance, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	var query MonthlyInstancePopulateQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	err = instance.PopulateRepeating(models.DB, query.OwnerPattern)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyInstanceResponse{
			Error: &s,
		})
		return
	}

	data := newMonthlyInstance(c, instance)
	c.JSON(http.StatusOK, MonthlyInstanceResponse{Data: &data})
}
