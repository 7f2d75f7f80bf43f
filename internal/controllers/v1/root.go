package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingspend/backend/internal/httputil"
	"github.com/listingspend/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // URLs of API endpoints
}

type Links struct {
	Budgets   string `json:"budgets" example:"https://example.com/api/v1/budgets"`     // URL of budget list endpoint
	Dashboard string `json:"dashboard" example:"https://example.com/api/v1/dashboard"` // URL of the dashboard endpoint
	Export    string `json:"export" example:"https://example.com/api/v1/export"`       // URL of the export endpoint
	Import    string `json:"import" example:"https://example.com/api/v1/import"`       // URL of the import endpoint
	Schedules string `json:"schedules" example:"https://example.com/api/v1/schedules"` // URL of schedule list endpoint
	Services  string `json:"services" example:"https://example.com/api/v1/services"`   // URL of service list endpoint
	Suburbs   string `json:"suburbs" example:"https://example.com/api/v1/suburbs"`     // URL of suburb list endpoint
	Vendors   string `json:"vendors" example:"https://example.com/api/v1/vendors"`     // URL of vendor list endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:   url + "/budgets",
			Dashboard: url + "/dashboard",
			Export:    url + "/export",
			Import:    url + "/import",
			Schedules: url + "/schedules",
			Services:  url + "/services",
			Suburbs:   url + "/suburbs",
			Vendors:   url + "/vendors",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
