package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingspend/backend/internal/httputil"
	"github.com/listingspend/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterServiceRoutes registers the routes for services with
// the RouterGroup that is passed.
func RegisterServiceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsServiceList)
		r.GET("", GetServices)
		r.POST("", CreateServices)
	}

	// Service with ID
	{
		r.OPTIONS("/:id", OptionsServiceDetail)
		r.GET("/:id", GetService)
		r.PATCH("/:id", UpdateService)
		r.DELETE("/:id", DeleteService)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Services
// @Success		204
// @Router			/v1/services [options]
func OptionsServiceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Services
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/services/{id} [options]
func OptionsServiceDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Service{})
}

// @Summary		Create service
// @Description	Creates a new service
// @Tags			Services
// @Produce		json
// @Success		201			{object}	ServiceCreateResponse
// @Failure		400			{object}	ServiceCreateResponse
// @Failure		500			{object}	ServiceCreateResponse
// @Param			services	body		[]ServiceEditable	true	"Services"
// @Router			/v1/services [post]
func CreateServices(c *gin.Context) {
	var editables []ServiceEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ServiceCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ServiceCreateResponse{}

	for _, editable := range editables {
		service := editable.model()

		err = models.DB.Create(&service).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newService(c, service)
		r.Data = append(r.Data, ServiceResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get services
// @Description	Returns a list of services
// @Tags			Services
// @Produce		json
// @Success		200	{object}	ServiceListResponse
// @Failure		400	{object}	ServiceListResponse
// @Failure		500	{object}	ServiceListResponse
// @Router			/v1/services [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			category	query	string	false	"Filter by category"
// @Param			vendor		query	string	false	"Filter by vendor ID"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first Service returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Services to return. Defaults to 50."
func GetServices(c *gin.Context) {
	var filter ServiceQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ServiceListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ServiceListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("category ASC, name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Services and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var services []models.Service
	err = q.Find(&services).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ServiceListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ServiceListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Service, 0)
	for _, service := range services {
		data = append(data, newService(c, service))
	}

	c.JSON(http.StatusOK, ServiceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get service
// @Description	Returns a specific service
// @Tags			Services
// @Produce		json
// @Success		200	{object}	ServiceResponse
// @Failure		400	{object}	ServiceResponse
// @Failure		404	{object}	ServiceResponse
// @Failure		500	{object}	ServiceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/services/{id} [get]
func GetService(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ServiceResponse{
			Error: &s,
		})
		return
	}

	var service models.Service
	err = models.DB.First(&service, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ServiceResponse{
			Error: &s,
		})
		return
	}

	data := newService(c, service)
	c.JSON(http.StatusOK, ServiceResponse{Data: &data})
}

// @Summary		Update service
// @Description	Update an existing service. Only values to be updated need to be specified.
// @Tags			Services
// @Accept			json
// @Produce		json
// @Success		200		{object}	ServiceResponse
// @Failure		400		{object}	ServiceResponse
// @Failure		404		{object}	ServiceResponse
// @Failure		500		{object}	ServiceResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			service	body		ServiceEditable	true	"Service"
// @Router			/v1/services/{id} [patch]
func UpdateService(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ServiceResponse{
			Error: &s,
		})
		return
	}

	var service models.Service
	err = models.DB.First(&service, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ServiceResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ServiceEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ServiceResponse{
			Error: &s,
		})
		return
	}

	var data ServiceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ServiceResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&service).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ServiceResponse{
			Error: &s,
		})
		return
	}

	r := newService(c, service)
	c.JSON(http.StatusOK, ServiceResponse{Data: &r})
}

// @Summary		Delete service
// @Description	Deletes a service
// @Tags			Services
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/services/{id} [delete]
func DeleteService(c *gin.Context) {
	deleteResource[models.Service](c)
}
