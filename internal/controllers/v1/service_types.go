package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
	ls_uuid "github.com/listingspend/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// ServiceEditable represents all user configurable parameters
type ServiceEditable struct {
	Name      string                  `json:"name" example:"Professional Photography" default:""`          // Name of the service
	Note      string                  `json:"note" example:"Up to 20 edited images" default:""`            // Notes about the service
	Category  types.ServiceCategory   `json:"category" example:"photography"`                              // Category of the service
	VendorID  *uuid.UUID              `json:"vendorId" example:"d1b8ba0c-b8a8-4bc6-afcf-cd74a634a09c"`     // ID of the vendor providing this service
	BasePrice decimal.Decimal         `json:"basePrice" example:"450" minimum:"0" multipleOf:"0.00000001"` // Price when the service has no variants, GST inclusive
	Variants  []models.Variant        `json:"variants"`                                                    // Priced variants of this service
	Selector  *models.VariantSelector `json:"variantSelector"`                                             // Rule describing how a variant is picked
}

func (editable ServiceEditable) model() models.Service {
	return models.Service{
		Name:      editable.Name,
		Note:      editable.Note,
		Category:  editable.Category,
		VendorID:  editable.VendorID,
		BasePrice: editable.BasePrice,
		Variants:  editable.Variants,
		Selector:  editable.Selector,
	}
}

type ServiceLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/services/0495b41a-5be2-4a1b-b2e0-0216e1a8d58c"` // The service itself
}

type Service struct {
	models.DefaultModel
	ServiceEditable
	Links ServiceLinks `json:"links"`
}

func newService(c *gin.Context, model models.Service) Service {
	url := c.GetString(string(models.DBContextURL))

	return Service{
		DefaultModel: model.DefaultModel,
		ServiceEditable: ServiceEditable{
			Name:      model.Name,
			Note:      model.Note,
			Category:  model.Category,
			VendorID:  model.VendorID,
			BasePrice: model.BasePrice,
			Variants:  model.Variants,
			Selector:  model.Selector,
		},
		Links: ServiceLinks{
			Self: fmt.Sprintf("%s/v1/services/%s", url, model.ID),
		},
	}
}

type ServiceListResponse struct {
	Data       []Service   `json:"data"`                                                          // List of Services
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ServiceCreateResponse struct {
	Data  []ServiceResponse `json:"data"`                                                          // List of the created Services or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (s *ServiceCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, ServiceResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ServiceResponse struct {
	Data  *Service `json:"data"`                                                          // Data for the Service
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ServiceQueryFilter struct {
	Name     string                `form:"name" filterField:"false"`   // By name
	Note     string                `form:"note" filterField:"false"`   // By note
	Category types.ServiceCategory `form:"category"`                   // By category
	VendorID ls_uuid.UUID          `form:"vendor"`                     // By ID of the Vendor
	Search   string                `form:"search" filterField:"false"` // By string in name or note
	Offset   uint                  `form:"offset" filterField:"false"` // The offset of the first Service returned. Defaults to 0.
	Limit    int                   `form:"limit" filterField:"false"`  // Maximum number of Services to return. Defaults to 50.
}

func (f ServiceQueryFilter) model() (models.Service, error) {
	var vendorID *uuid.UUID
	if f.VendorID != ls_uuid.Nil {
		vendorID = &f.VendorID.UUID
	}

	return models.Service{
		Category: f.Category,
		VendorID: vendorID,
	}, nil
}
