package v1

import (
	"net/http"
	"time"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterBudgetItemRoutes registers the routes for budget items with
// the RouterGroup that is passed.
func RegisterBudgetItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetItemList)
		r.GET("", GetBudgetItems)
		r.POST("", CreateBudgetItems)
	}

	// Budget item with ID
	{
		r.OPTIONS("/:id", OptionsBudgetItemDetail)
		r.GET("/:id", GetBudgetItem)
		r.PATCH("/:id", UpdateBudgetItem)
		r.DELETE("/:id", DeleteBudgetItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetItems
// @Success		204
// @Router			/v1/budget-items [options]
func OptionsBudgetItemList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [options]
func OptionsBudgetItemDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetItem{})
}

// @Summary		Create budget items
// @Description	Creates new budget items
// @Tags			BudgetItems
// @Produce		json
// @Success		201			{object}	BudgetItemCreateResponse
// @Failure		400			{object}	BudgetItemCreateResponse
// @Failure		500			{object}	BudgetItemCreateResponse
// @Param			budgetItems	body		[]BudgetItemEditable	true	"Budget items"
// @Router			/v1/budget-items [post]
func CreateBudgetItems(c *gin.Context) {
	var editables []BudgetItemEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetItemCreateResponse{}

	for _, editable := range editables {
		item := editable.model()

		err = models.DB.Create(&item).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudgetItem(c, item)
		r.Data = append(r.Data, BudgetItemResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get budget items
// @Description	Returns a list of budget items
// @Tags			BudgetItems
// @Produce		json
// @Success		200	{object}	BudgetItemListResponse
// @Failure		400	{object}	BudgetItemListResponse
// @Failure		500	{object}	BudgetItemListResponse
// @Router			/v1/budget-items [get]
// @Param			name			query	string	false	"Filter by substring of the name"
// @Param			owner			query	string	false	"Filter by exact owner"
// @Param			isRepeating		query	bool	false	"Does the expense repeat?"
// @Param			endDateUntil	query	string	false	"Items ending before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			fromDate		query	string	false	"Items created at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate		query	string	false	"Items created before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			search			query	string	false	"Search for this text in name and owner"
// @Param			offset			query	uint	false	"The offset of the first budget item returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of budget items to return. Defaults to 50."
func GetBudgetItems(c *gin.Context) {
	var filter BudgetItemQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Newest first, IDs break ties so that the order is deterministic
	q := models.DB.
		Order("budget_items.created_at DESC, budget_items.id DESC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Search)

	if !filter.EndDateUntil.IsZero() {
		q = q.Where("budget_items.end_date IS NOT NULL").
			Where("budget_items.end_date < date(?)", time.Date(filter.EndDateUntil.Year(), filter.EndDateUntil.Month(), filter.EndDateUntil.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("budget_items.created_at >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("budget_items.created_at < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 budget items and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var items []models.BudgetItem
	err := q.Find(&items).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &e,
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
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget item
// @Description	Returns a specific budget item
// @Tags			BudgetItems
// @Produce		json
// @Success		200	{object}	BudgetItemResponse
// @Failure		400	{object}	BudgetItemResponse
// @Failure		404	{object}	BudgetItemResponse
// @Failure		500	{object}	BudgetItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [get]
func GetBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var item models.BudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetItem(c, item)
	c.JSON(http.StatusOK, BudgetItemResponse{Data: &data})
}

// @Summary		Update budget item
// @Description	Updates an existing budget item. Only values to be updated need to be specified.
// @Tags			BudgetItems
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetItemResponse
// @Failure		400			{object}	BudgetItemResponse
// @Failure		404			{object}	BudgetItemResponse
// @Failure		500			{object}	BudgetItemResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budgetItem	body		BudgetItemEditable	true	"Budget item"
// @Router			/v1/budget-items/{id} [patch]
func UpdateBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var item models.BudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetItemEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var data BudgetItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	r := newBudgetItem(c, item)
	c.JSON(http.StatusOK, BudgetItemResponse{Data: &r})
}

// @Summary		Delete budget item
// @Description	Deletes a budget item
// @Tags			BudgetItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [delete]
func DeleteBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var item models.BudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&item).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
