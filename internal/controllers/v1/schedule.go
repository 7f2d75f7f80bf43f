package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingspend/backend/internal/httputil"
	"github.com/listingspend/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterScheduleRoutes registers the routes for schedules with
// the RouterGroup that is passed.
func RegisterScheduleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsScheduleList)
		r.GET("", GetSchedules)
		r.POST("", CreateSchedules)
	}

	// Schedule with ID
	{
		r.OPTIONS("/:id", OptionsScheduleDetail)
		r.GET("/:id", GetSchedule)
		r.PATCH("/:id", UpdateSchedule)
		r.DELETE("/:id", DeleteSchedule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schedules
// @Success		204
// @Router			/v1/schedules [options]
func OptionsScheduleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schedules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/schedules/{id} [options]
func OptionsScheduleDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Schedule{})
}

// @Summary		Create schedule
// @Description	Creates a new schedule
// @Tags			Schedules
// @Produce		json
// @Success		201			{object}	ScheduleCreateResponse
// @Failure		400			{object}	ScheduleCreateResponse
// @Failure		500			{object}	ScheduleCreateResponse
// @Param			schedules	body		[]ScheduleEditable	true	"Schedules"
// @Router			/v1/schedules [post]
func CreateSchedules(c *gin.Context) {
	var editables []ScheduleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ScheduleCreateResponse{}

	for _, editable := range editables {
		schedule := editable.model()

		err = models.DB.Create(&schedule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSchedule(c, schedule)
		r.Data = append(r.Data, ScheduleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get schedules
// @Description	Returns a list of schedules
// @Tags			Schedules
// @Produce		json
// @Success		200	{object}	ScheduleListResponse
// @Failure		400	{object}	ScheduleListResponse
// @Failure		500	{object}	ScheduleListResponse
// @Router			/v1/schedules [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			propertyType	query	string	false	"Filter by property type"
// @Param			propertySize	query	string	false	"Filter by property size"
// @Param			tier			query	string	false	"Filter by pricing tier"
// @Param			offset			query	uint	false	"The offset of the first Schedule returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Schedules to return. Defaults to 50."
func GetSchedules(c *gin.Context) {
	var filter ScheduleQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ScheduleListResponse{
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
		c.JSON(status(err), ScheduleListResponse{Error: &e})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&model, queryFields...)

	// Filter for name containing the query string or explicitly empty one
	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Schedules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var schedules []models.Schedule
	err = q.Find(&schedules).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduleListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Schedule, 0)
	for _, schedule := range schedules {
		data = append(data, newSchedule(c, schedule))
	}

	c.JSON(http.StatusOK, ScheduleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get schedule
// @Description	Returns a specific schedule
// @Tags			Schedules
// @Produce		json
// @Success		200	{object}	ScheduleResponse
// @Failure		400	{object}	ScheduleResponse
// @Failure		404	{object}	ScheduleResponse
// @Failure		500	{object}	ScheduleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/schedules/{id} [get]
func GetSchedule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{
			Error: &s,
		})
		return
	}

	var schedule models.Schedule
	err = models.DB.First(&schedule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{
			Error: &s,
		})
		return
	}

	data := newSchedule(c, schedule)
	c.JSON(http.StatusOK, ScheduleResponse{Data: &data})
}

// @Summary		Update schedule
// @Description	Update an existing schedule. Only values to be updated need to be specified.
// @Tags			Schedules
// @Accept			json
// @Produce		json
// @Success		200			{object}	ScheduleResponse
// @Failure		400			{object}	ScheduleResponse
// @Failure		404			{object}	ScheduleResponse
// @Failure		500			{object}	ScheduleResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			schedule	body		ScheduleEditable	true	"Schedule"
// @Router			/v1/schedules/{id} [patch]
func UpdateSchedule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{
			Error: &s,
		})
		return
	}

	var schedule models.Schedule
	err = models.DB.First(&schedule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ScheduleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{
			Error: &s,
		})
		return
	}

	var data ScheduleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&schedule).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{
			Error: &s,
		})
		return
	}

	r := newSchedule(c, schedule)
	c.JSON(http.StatusOK, ScheduleResponse{Data: &r})
}

// @Summary		Delete schedule
// @Description	Deletes a schedule
// @Tags			Schedules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/schedules/{id} [delete]
func DeleteSchedule(c *gin.Context) {
	deleteResource[models.Schedule](c)
}
