package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
)

// ScheduleEditable represents all user configurable parameters
type ScheduleEditable struct {
	Name         string                    `json:"name" example:"House Standard" default:""` // Name of the schedule
	PropertyType types.PropertyType        `json:"propertyType" example:"house"`             // Property type this schedule applies to
	PropertySize types.PropertySize        `json:"propertySize" example:"medium"`            // Property size this schedule applies to
	Tier         types.PricingTier         `json:"tier" example:"standard"`                  // Pricing tier this schedule applies to
	LineItems    []models.ScheduleLineItem `json:"lineItems"`                                // Ordered template line items
}

func (editable ScheduleEditable) model() models.Schedule {
	return models.Schedule{
		Name:         editable.Name,
		PropertyType: editable.PropertyType,
		PropertySize: editable.PropertySize,
		Tier:         editable.Tier,
		LineItems:    editable.LineItems,
	}
}

type ScheduleLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/schedules/3910dea1-e7a4-46f9-bcd4-1f1e8a7243f0"`           // The schedule itself
	Budgets string `json:"budgets" example:"https://example.com/api/v1/budgets?schedule=3910dea1-e7a4-46f9-bcd4-1f1e8a7243f0"` // Budgets seeded from this schedule
}

type Schedule struct {
	models.DefaultModel
	ScheduleEditable
	Links ScheduleLinks `json:"links"`
}

func newSchedule(c *gin.Context, model models.Schedule) Schedule {
	url := c.GetString(string(models.DBContextURL))

	return Schedule{
		DefaultModel: model.DefaultModel,
		ScheduleEditable: ScheduleEditable{
			Name:         model.Name,
			PropertyType: model.PropertyType,
			PropertySize: model.PropertySize,
			Tier:         model.Tier,
			LineItems:    model.LineItems,
		},
		Links: ScheduleLinks{
			Self:    fmt.Sprintf("%s/v1/schedules/%s", url, model.ID),
			Budgets: fmt.Sprintf("%s/v1/budgets?schedule=%s", url, model.ID),
		},
	}
}

type ScheduleListResponse struct {
	Data       []Schedule  `json:"data"`                                                          // List of Schedules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ScheduleCreateResponse struct {
	Data  []ScheduleResponse `json:"data"`                                                          // List of the created Schedules or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (s *ScheduleCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, ScheduleResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ScheduleResponse struct {
	Data  *Schedule `json:"data"`                                                          // Data for the Schedule
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ScheduleQueryFilter struct {
	Name         string             `form:"name" filterField:"false"`   // By name
	PropertyType types.PropertyType `form:"propertyType"`               // By property type
	PropertySize types.PropertySize `form:"propertySize"`               // By property size
	Tier         types.PricingTier  `form:"tier"`                       // By pricing tier
	Offset       uint               `form:"offset" filterField:"false"` // The offset of the first Schedule returned. Defaults to 0.
	Limit        int                `form:"limit" filterField:"false"`  // Maximum number of Schedules to return. Defaults to 50.
}

func (f ScheduleQueryFilter) model() (models.Schedule, error) {
	return models.Schedule{
		PropertyType: f.PropertyType,
		PropertySize: f.PropertySize,
		Tier:         f.Tier,
	}, nil
}
