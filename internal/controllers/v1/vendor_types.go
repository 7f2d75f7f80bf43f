package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/listingspend/backend/internal/models"
)

// VendorEditable represents all user configurable parameters
type VendorEditable struct {
	Name     string `json:"name" example:"Skyshot Media" default:""`                    // Name of the vendor
	Note     string `json:"note" example:"Preferred for aerial photography" default:""` // Notes about the vendor
	Archived bool   `json:"archived" example:"true" default:"false"`                    // Is the vendor archived?
}

func (editable VendorEditable) model() models.Vendor {
	return models.Vendor{
		Name:     editable.Name,
		Note:     editable.Note,
		Archived: editable.Archived,
	}
}

type VendorLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/vendors/d1b8ba0c-b8a8-4bc6-afcf-cd74a634a09c"`             // The vendor itself
	Services string `json:"services" example:"https://example.com/api/v1/services?vendor=d1b8ba0c-b8a8-4bc6-afcf-cd74a634a09c"` // Services provided by this vendor
}

type Vendor struct {
	models.DefaultModel
	VendorEditable
	Links VendorLinks `json:"links"`
}

func newVendor(c *gin.Context, model models.Vendor) Vendor {
	url := c.GetString(string(models.DBContextURL))

	return Vendor{
		DefaultModel: model.DefaultModel,
		VendorEditable: VendorEditable{
			Name:     model.Name,
			Note:     model.Note,
			Archived: model.Archived,
		},
		Links: VendorLinks{
			Self:     fmt.Sprintf("%s/v1/vendors/%s", url, model.ID),
			Services: fmt.Sprintf("%s/v1/services?vendor=%s", url, model.ID),
		},
	}
}

type VendorListResponse struct {
	Data       []Vendor    `json:"data"`                                                          // List of Vendors
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type VendorCreateResponse struct {
	Data  []VendorResponse `json:"data"`                                                          // List of the created Vendors or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (v *VendorCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	v.Data = append(v.Data, VendorResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type VendorResponse struct {
	Data  *Vendor `json:"data"`                                                          // Data for the Vendor
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type VendorQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Archived bool   `form:"archived"`                   // Is the Vendor archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Vendor returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Vendors to return. Defaults to 50.
}

func (f VendorQueryFilter) model() (models.Vendor, error) {
	return models.Vendor{
		Archived: f.Archived,
	}, nil
}
