package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
)

// SuburbEditable represents all user configurable parameters
type SuburbEditable struct {
	Name     string            `json:"name" example:"Paddington" default:""`     // Name of the suburb
	Match    string            `json:"match" example:"* Paddington*" default:""` // Glob pattern matched against property addresses
	Postcode string            `json:"postcode" example:"4064" default:""`       // Postcode of the suburb
	Tier     types.PricingTier `json:"tier" example:"premium"`                   // Pricing tier for properties in this suburb
}

func (editable SuburbEditable) model() models.Suburb {
	return models.Suburb{
		Name:     editable.Name,
		Match:    editable.Match,
		Postcode: editable.Postcode,
		Tier:     editable.Tier,
	}
}

type SuburbLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/suburbs/951b14bc-0f3a-4df3-a682-e0e371a95a90"`           // The suburb itself
	Budgets string `json:"budgets" example:"https://example.com/api/v1/budgets?suburb=951b14bc-0f3a-4df3-a682-e0e371a95a90"` // Budgets for properties in this suburb
}

type Suburb struct {
	models.DefaultModel
	SuburbEditable
	Links SuburbLinks `json:"links"`
}

func newSuburb(c *gin.Context, model models.Suburb) Suburb {
	url := c.GetString(string(models.DBContextURL))

	return Suburb{
		DefaultModel: model.DefaultModel,
		SuburbEditable: SuburbEditable{
			Name:     model.Name,
			Match:    model.Match,
			Postcode: model.Postcode,
			Tier:     model.Tier,
		},
		Links: SuburbLinks{
			Self:    fmt.Sprintf("%s/v1/suburbs/%s", url, model.ID),
			Budgets: fmt.Sprintf("%s/v1/budgets?suburb=%s", url, model.ID),
		},
	}
}

type SuburbListResponse struct {
	Data       []Suburb    `json:"data"`                                                          // List of Suburbs
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type SuburbCreateResponse struct {
	Data  []SuburbResponse `json:"data"`                                                          // List of the created Suburbs or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (s *SuburbCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, SuburbResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SuburbResponse struct {
	Data  *Suburb `json:"data"`                                                          // Data for the Suburb
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SuburbQueryFilter struct {
	Name     string            `form:"name" filterField:"false"`   // By name
	Match    string            `form:"match" filterField:"false"`  // By match
	Postcode string            `form:"postcode"`                   // By postcode
	Tier     types.PricingTier `form:"tier"`                       // By pricing tier
	Offset   uint              `form:"offset" filterField:"false"` // The offset of the first Suburb returned. Defaults to 0.
	Limit    int               `form:"limit" filterField:"false"`  // Maximum number of Suburbs to return. Defaults to 50.
}

func (f SuburbQueryFilter) model() (models.Suburb, error) {
	return models.Suburb{
		Postcode: f.Postcode,
		Tier:     f.Tier,
	}, nil
}
