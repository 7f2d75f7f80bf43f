package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingspend/backend/internal/httputil"
	"github.com/listingspend/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterSuburbRoutes registers the routes for suburbs with
// the RouterGroup that is passed.
func RegisterSuburbRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSuburbList)
		r.GET("", GetSuburbs)
		r.POST("", CreateSuburbs)
	}

	// Suburb with ID
	{
		r.OPTIONS("/:id", OptionsSuburbDetail)
		r.GET("/:id", GetSuburb)
		r.PATCH("/:id", UpdateSuburb)
		r.DELETE("/:id", DeleteSuburb)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Suburbs
// @Success		204
// @Router			/v1/suburbs [options]
func OptionsSuburbList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Suburbs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/suburbs/{id} [options]
func OptionsSuburbDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Suburb{})
}

// @Summary		Create suburb
// @Description	Creates a new suburb
// @Tags			Suburbs
// @Produce		json
// @Success		201		{object}	SuburbCreateResponse
// @Failure		400		{object}	SuburbCreateResponse
// @Failure		500		{object}	SuburbCreateResponse
// @Param			suburbs	body		[]SuburbEditable	true	"Suburbs"
// @Router			/v1/suburbs [post]
func CreateSuburbs(c *gin.Context) {
	var editables []SuburbEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuburbCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SuburbCreateResponse{}

	for _, editable := range editables {
		suburb := editable.model()

		err = models.DB.Create(&suburb).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSuburb(c, suburb)
		r.Data = append(r.Data, SuburbResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get suburbs
// @Description	Returns a list of suburbs
// @Tags			Suburbs
// @Produce		json
// @Success		200	{object}	SuburbListResponse
// @Failure		400	{object}	SuburbListResponse
// @Failure		500	{object}	SuburbListResponse
// @Router			/v1/suburbs [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			match		query	string	false	"Filter by match"
// @Param			postcode	query	string	false	"Filter by postcode"
// @Param			tier		query	string	false	"Filter by pricing tier"
// @Param			offset		query	uint	false	"The offset of the first Suburb returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Suburbs to return. Defaults to 50."
func GetSuburbs(c *gin.Context) {
	var filter SuburbQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SuburbListResponse{
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
		c.JSON(status(err), SuburbListResponse{Error: &e})
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

	// Filter for match containing the query string or explicitly empty one
	if filter.Match != "" {
		q = q.Where("match LIKE ?", fmt.Sprintf("%%%s%%", filter.Match))
	} else if slices.Contains(setFields, "Match") {
		q = q.Where("match = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Suburbs and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var suburbs []models.Suburb
	err = q.Find(&suburbs).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuburbListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuburbListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Suburb, 0)
	for _, suburb := range suburbs {
		data = append(data, newSuburb(c, suburb))
	}

	c.JSON(http.StatusOK, SuburbListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get suburb
// @Description	Returns a specific suburb
// @Tags			Suburbs
// @Produce		json
// @Success		200	{object}	SuburbResponse
// @Failure		400	{object}	SuburbResponse
// @Failure		404	{object}	SuburbResponse
// @Failure		500	{object}	SuburbResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/suburbs/{id} [get]
func GetSuburb(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SuburbResponse{
			Error: &s,
		})
		return
	}

	var suburb models.Suburb
	err = models.DB.First(&suburb, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SuburbResponse{
			Error: &s,
		})
		return
	}

	data := newSuburb(c, suburb)
	c.JSON(http.StatusOK, SuburbResponse{Data: &data})
}

// @Summary		Update suburb
// @Description	Update an existing suburb. Only values to be updated need to be specified.
// @Tags			Suburbs
// @Accept			json
// @Produce		json
// @Success		200		{object}	SuburbResponse
// @Failure		400		{object}	SuburbResponse
// @Failure		404		{object}	SuburbResponse
// @Failure		500		{object}	SuburbResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			suburb	body		SuburbEditable	true	"Suburb"
// @Router			/v1/suburbs/{id} [patch]
func UpdateSuburb(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SuburbResponse{
			Error: &s,
		})
		return
	}

	var suburb models.Suburb
	err = models.DB.First(&suburb, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SuburbResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SuburbEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SuburbResponse{
			Error: &s,
		})
		return
	}

	var data SuburbEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SuburbResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&suburb).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SuburbResponse{
			Error: &s,
		})
		return
	}

	r := newSuburb(c, suburb)
	c.JSON(http.StatusOK, SuburbResponse{Data: &r})
}

// @Summary		Delete suburb
// @Description	Deletes a suburb
// @Tags			Suburbs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/suburbs/{id} [delete]
func DeleteSuburb(c *gin.Context) {
	deleteResource[models.Suburb](c)
}
