package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingspend/backend/internal/controllers/version"
	"github.com/listingspend/backend/internal/exchange"
	"github.com/listingspend/backend/internal/httputil"
	"github.com/listingspend/backend/internal/models"
)

// RegisterExchangeRoutes registers the routes for exports and imports with
// the RouterGroup that is passed.
func RegisterExchangeRoutes(r *gin.RouterGroup) {
	// Export
	{
		r.OPTIONS("/export", OptionsExport)
		r.GET("/export", GetExport)
	}

	// Import
	{
		r.OPTIONS("/import", OptionsImport)
		r.POST("/import", CreateImport)
	}

	// Import analysis
	{
		r.OPTIONS("/import/analyse", OptionsImportAnalyse)
		r.POST("/import/analyse", AnalyseImport)
	}
}

type AnalyseResponse struct {
	Data  *exchange.Summary `json:"data"`
	Error *string           `json:"error" example:"A human readable error message"`
}

type ImportResponse struct {
	Data  *exchange.Result `json:"data"`
	Error *string          `json:"error" example:"A human readable error message"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Exchange
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export data
// @Description	Returns the requested entity types as a document that can be imported again. When no types are requested, everything is exported.
// @Tags			Exchange
// @Produce		json
// @Success		200		{object}	exchange.Document
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			types	query		string	false	"Comma-separated list of entity types to export. Defaults to all types."
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	requested, err := exchange.ParseEntityTypes(c.Query("types"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	document, err := exchange.Export(requested, version.Version)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, document)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Exchange
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import data
// @Description	Imports the requested entity types from a document. Every record is created as a new one, existing data is never updated or deleted.
// @Tags			Exchange
// @Accept			json
// @Produce		json
// @Success		201			{object}	ImportResponse
// @Failure		400			{object}	ImportResponse
// @Failure		500			{object}	ImportResponse
// @Param			types		query		string				false	"Comma-separated list of entity types to import. Defaults to all types."
// @Param			document	body		exchange.Document	true	"Document"
// @Router			/v1/import [post]
func CreateImport(c *gin.Context) {
	requested, err := exchange.ParseEntityTypes(c.Query("types"))
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	var document exchange.Document
	err = httputil.BindData(c, &document)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	result, err := exchange.Import(document, requested, models.Repository{DB: models.DB})
	if err != nil {
		// The result still counts what was persisted before the failure
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Data:  &result,
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{Data: &result})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Exchange
// @Success		204
// @Router			/v1/import/analyse [options]
func OptionsImportAnalyse(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Analyse a document
// @Description	Counts the records per entity type in a document without persisting anything
// @Tags			Exchange
// @Accept			json
// @Produce		json
// @Success		200			{object}	AnalyseResponse
// @Failure		400			{object}	AnalyseResponse
// @Param			document	body		exchange.Document	true	"Document"
// @Router			/v1/import/analyse [post]
func AnalyseImport(c *gin.Context) {
	var document exchange.Document
	err := httputil.BindData(c, &document)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnalyseResponse{
			Error: &s,
		})
		return
	}

	summary := exchange.Analyse(document)
	c.JSON(http.StatusOK, AnalyseResponse{Data: &summary})
}
