package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingspend/backend/internal/exchange"
	"github.com/listingspend/backend/internal/httputil"
	"github.com/listingspend/backend/internal/lifecycle"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/pricing"
	"github.com/listingspend/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudgets)
	}

	// CSV projection of the budget list
	{
		r.OPTIONS("/csv", OptionsBudgetsCSV)
		r.GET("/csv", GetBudgetsCSV)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}

	// Pricing summary
	{
		r.OPTIONS("/:id/summary", OptionsBudgetSummary)
		r.GET("/:id/summary", GetBudgetSummary)
	}

	// Lifecycle transitions
	{
		r.OPTIONS("/:id/transition", OptionsBudgetTransition)
		r.POST("/:id/transition", TransitionBudget)
	}

	// CSV projection of the line items
	{
		r.OPTIONS("/:id/line-items/csv", OptionsBudgetLineItemsCSV)
		r.GET("/:id/line-items/csv", GetBudgetLineItemsCSV)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Budget{})
}

// @Summary		Create budget
// @Description	Creates a new budget. When no line items are sent, they are seeded from the matching schedule, the tier defaults to the tier of the suburb matching the property address.
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		404		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		budget := editable.model()

		err = prepareBudget(&budget)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&budget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudget(c, budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// prepareBudget completes a budget before it is created.
//
// The suburb and tier are resolved from the property address when they are
// not set explicitly. Budgets without line items seed them from the
// referenced schedule or, when no schedule is referenced, from the one
// matching property type, size and tier.
func prepareBudget(budget *models.Budget) error {
	if budget.Tier == "" || budget.SuburbID == nil {
		var suburbs []models.Suburb
		err := models.DB.Find(&suburbs).Error
		if err != nil {
			return err
		}

		if suburb := pricing.MatchSuburb(suburbs, budget.PropertyAddress); suburb != nil {
			if budget.SuburbID == nil {
				id := suburb.ID
				budget.SuburbID = &id
			}

			if budget.Tier == "" {
				budget.Tier = suburb.Tier
			}
		}
	}

	// Line items sent by the client win over the schedule template
	if len(budget.LineItems) != 0 {
		return nil
	}

	schedule, err := matchSchedule(*budget)
	if err != nil {
		return err
	}

	// A budget matching no schedule starts without line items
	if schedule == nil {
		return nil
	}

	var services []models.Service
	err = models.DB.Find(&services).Error
	if err != nil {
		return err
	}

	id := schedule.ID
	budget.ScheduleID = &id
	budget.LineItems = pricing.SeedLineItems(*schedule, services, pricing.VariantContext{
		PropertySize: budget.PropertySize,
	})

	return nil
}

// matchSchedule finds the schedule to seed a budget from: the referenced one
// when the budget carries a reference, the first one matching property type,
// size and tier otherwise.
func matchSchedule(budget models.Budget) (*models.Schedule, error) {
	var schedule models.Schedule

	if budget.ScheduleID != nil {
		err := models.DB.First(&schedule, *budget.ScheduleID).Error
		if err != nil {
			return nil, err
		}

		return &schedule, nil
	}

	if budget.PropertyType == "" || budget.PropertySize == "" || budget.Tier == "" {
		return nil, nil
	}

	err := models.DB.Where(&models.Schedule{
		PropertyType: budget.PropertyType,
		PropertySize: budget.PropertySize,
		Tier:         budget.Tier,
	}).First(&schedule).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &schedule, nil
}

// @Summary		Get budgets
// @Description	Returns a list of budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			address			query	string	false	"Filter by property address"
// @Param			client			query	string	false	"Filter by client name"
// @Param			agent			query	string	false	"Filter by agent name"
// @Param			note			query	string	false	"Filter by notes"
// @Param			status			query	string	false	"Filter by lifecycle status"
// @Param			propertyType	query	string	false	"Filter by property type"
// @Param			propertySize	query	string	false	"Filter by property size"
// @Param			tier			query	string	false	"Filter by pricing tier"
// @Param			suburb			query	string	false	"Filter by suburb ID"
// @Param			vendor			query	string	false	"Filter by vendor ID"
// @Param			schedule		query	string	false	"Filter by schedule ID"
// @Param			search			query	string	false	"Search for this text in address, client, agent and notes"
// @Param			offset			query	uint	false	"The offset of the first Budget returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Budgets to return. Defaults to 50."
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &s,
		})
		return
	}

	// Get the parameters set in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	q := models.DB.
		Order("created_at DESC").
		Where(&model, queryFields...)

	// Filter for address containing the query string or explicitly empty one
	if filter.Address != "" {
		q = q.Where("property_address LIKE ?", fmt.Sprintf("%%%s%%", filter.Address))
	} else if slices.Contains(setFields, "Address") {
		q = q.Where("property_address = ''")
	}

	// Filter for client containing the query string or explicitly empty one
	if filter.Client != "" {
		q = q.Where("client_name LIKE ?", fmt.Sprintf("%%%s%%", filter.Client))
	} else if slices.Contains(setFields, "Client") {
		q = q.Where("client_name = ''")
	}

	// Filter for agent containing the query string or explicitly empty one
	if filter.Agent != "" {
		q = q.Where("agent_name LIKE ?", fmt.Sprintf("%%%s%%", filter.Agent))
	} else if slices.Contains(setFields, "Agent") {
		q = q.Where("agent_name = ''")
	}

	// Filter for notes containing the query string or explicitly empty one
	if filter.Note != "" {
		q = q.Where("notes LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("notes = ''")
	}

	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		q = q.Where(
			models.DB.Where("property_address LIKE ?", like).
				Or(models.DB.Where("client_name LIKE ?", like)).
				Or(models.DB.Where("agent_name LIKE ?", like)).
				Or(models.DB.Where("notes LIKE ?", like)),
		)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Budgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var budgets []models.Budget
	err = q.Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Budget, 0)
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Update an existing budget. Only values to be updated need to be specified. The status cannot be updated here, use the transition endpoint.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var data BudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	r := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &r})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	deleteResource[models.Budget](c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/summary [options]
func OptionsBudgetSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get budget summary
// @Description	Returns the aggregated totals for the selected line items of a budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetSummaryResponse
// @Failure		400	{object}	BudgetSummaryResponse
// @Failure		404	{object}	BudgetSummaryResponse
// @Failure		500	{object}	BudgetSummaryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/summary [get]
func GetBudgetSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetSummaryResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetSummaryResponse{
			Error: &s,
		})
		return
	}

	summary := pricing.Summarize(budget.LineItems)
	c.JSON(http.StatusOK, BudgetSummaryResponse{Data: &summary})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/transition [options]
func OptionsBudgetTransition(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Transition budget
// @Description	Transitions a budget to a new lifecycle status. Transitioning a draft to approved validates the budget and returns all violations without applying the transition.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetTransitionResponse
// @Failure		400			{object}	BudgetTransitionResponse
// @Failure		404			{object}	BudgetTransitionResponse
// @Failure		409			{object}	BudgetTransitionResponse
// @Failure		500			{object}	BudgetTransitionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transition	body		BudgetTransition	true	"Transition"
// @Router			/v1/budgets/{id}/transition [post]
func TransitionBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetTransitionResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetTransitionResponse{
			Error: &s,
		})
		return
	}

	var data BudgetTransition
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetTransitionResponse{
			Error: &s,
		})
		return
	}

	if _, err := types.ParseBudgetStatus(string(data.Status)); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetTransitionResponse{
			Error: &s,
		})
		return
	}

	result, err := lifecycle.Apply(&budget, data.Status)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetTransitionResponse{
			Error: &s,
		})
		return
	}

	// All violations are reported at once so that users can fix
	// everything in one go
	if !result.Valid {
		s := errTransitionValidation.Error()
		c.JSON(http.StatusConflict, BudgetTransitionResponse{
			Validation: &result,
			Error:      &s,
		})
		return
	}

	err = models.DB.Save(&budget).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetTransitionResponse{
			Error: &s,
		})
		return
	}

	r := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetTransitionResponse{
		Data:       &r,
		Validation: &result,
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/csv [options]
func OptionsBudgetsCSV(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export budgets as CSV
// @Description	Returns all budgets with their totals as a CSV file
// @Tags			Budgets
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		500	{object}	httpError
// @Router			/v1/budgets/csv [get]
func GetBudgetsCSV(c *gin.Context) {
	var budgets []models.Budget
	err := models.DB.Order("created_at DESC").Find(&budgets).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	data, err := exchange.BudgetListCSV(budgets)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="budgets.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/line-items/csv [options]
func OptionsBudgetLineItemsCSV(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Export budget line items as CSV
// @Description	Returns the line items of a budget as a CSV file
// @Tags			Budgets
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/line-items/csv [get]
func GetBudgetLineItemsCSV(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	data, err := exchange.BudgetLineItemsCSV(budget)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("budget-%s-line-items.csv", budget.ID)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
