package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/listingspend/backend/internal/lifecycle"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/pricing"
	"github.com/listingspend/backend/internal/types"
	ls_uuid "github.com/listingspend/backend/internal/uuid"
)

// BudgetEditable represents all user configurable parameters.
//
// The status is not editable, it only changes through the transition
// endpoint.
type BudgetEditable struct {
	PropertyAddress string                  `json:"propertyAddress" example:"12 Latrobe Terrace, Paddington" default:""` // Address of the property the budget is for
	PropertyType    types.PropertyType      `json:"propertyType" example:"house"`                                        // Type of the property
	PropertySize    types.PropertySize      `json:"propertySize" example:"medium"`                                       // Size band of the property
	Tier            types.PricingTier       `json:"tier" example:"standard"`                                             // Pricing tier, defaults to the tier of the suburb
	ClientName      string                  `json:"clientName" example:"Jane Citizen" default:""`                        // Name of the client selling the property
	AgentName       string                  `json:"agentName" example:"Sam Agent" default:""`                            // Name of the listing agent
	Notes           string                  `json:"notes" example:"Vendor prefers twilight shoot" default:""`            // Notes about the budget
	SuburbID        *uuid.UUID              `json:"suburbId" example:"951b14bc-0f3a-4df3-a682-e0e371a95a90"`             // ID of the suburb of the property
	VendorID        *uuid.UUID              `json:"vendorId" example:"d1b8ba0c-b8a8-4bc6-afcf-cd74a634a09c"`             // ID of the preferred vendor
	ScheduleID      *uuid.UUID              `json:"scheduleId" example:"3910dea1-e7a4-46f9-bcd4-1f1e8a7243f0"`           // ID of the schedule to seed the line items from
	LineItems       []models.BudgetLineItem `json:"lineItems"`                                                           // Priced line items of this budget
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		PropertyAddress: editable.PropertyAddress,
		PropertyType:    editable.PropertyType,
		PropertySize:    editable.PropertySize,
		Tier:            editable.Tier,
		ClientName:      editable.ClientName,
		AgentName:       editable.AgentName,
		Notes:           editable.Notes,
		SuburbID:        editable.SuburbID,
		VendorID:        editable.VendorID,
		ScheduleID:      editable.ScheduleID,
		LineItems:       editable.LineItems,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/6b8dcc1d-fae5-4e50-a94e-a2e919067a36"`                        // The budget itself
	Summary      string `json:"summary" example:"https://example.com/api/v1/budgets/6b8dcc1d-fae5-4e50-a94e-a2e919067a36/summary"`             // Pricing summary of the budget
	Transition   string `json:"transition" example:"https://example.com/api/v1/budgets/6b8dcc1d-fae5-4e50-a94e-a2e919067a36/transition"`       // Status transitions of the budget
	LineItemsCSV string `json:"lineItemsCsv" example:"https://example.com/api/v1/budgets/6b8dcc1d-fae5-4e50-a94e-a2e919067a36/line-items/csv"` // CSV projection of the line items
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Status types.BudgetStatus `json:"status" example:"draft"` // Lifecycle status of the budget
	Links  BudgetLinks        `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			PropertyAddress: model.PropertyAddress,
			PropertyType:    model.PropertyType,
			PropertySize:    model.PropertySize,
			Tier:            model.Tier,
			ClientName:      model.ClientName,
			AgentName:       model.AgentName,
			Notes:           model.Notes,
			SuburbID:        model.SuburbID,
			VendorID:        model.VendorID,
			ScheduleID:      model.ScheduleID,
			LineItems:       model.LineItems,
		},
		Status: model.Status,
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Summary:      fmt.Sprintf("%s/v1/budgets/%s/summary", url, model.ID),
			Transition:   fmt.Sprintf("%s/v1/budgets/%s/transition", url, model.ID),
			LineItemsCSV: fmt.Sprintf("%s/v1/budgets/%s/line-items/csv", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of Budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of the created Budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the Budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetSummaryResponse struct {
	Data  *pricing.Summary `json:"data"`                                                          // Aggregated totals of the budget
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// BudgetTransition is the request body for a status transition.
type BudgetTransition struct {
	Status types.BudgetStatus `json:"status" example:"approved"` // The status to transition the budget to
}

type BudgetTransitionResponse struct {
	Data       *Budget           `json:"data"`                                                  // The budget after the transition
	Validation *lifecycle.Result `json:"validation"`                                            // Validation result for the requested transition
	Error      *string           `json:"error" example:"this status transition is not allowed"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Address      string             `form:"address" filterField:"false"` // By property address
	Client       string             `form:"client" filterField:"false"`  // By client name
	Agent        string             `form:"agent" filterField:"false"`   // By agent name
	Note         string             `form:"note" filterField:"false"`    // By notes
	Status       types.BudgetStatus `form:"status"`                      // By lifecycle status
	PropertyType types.PropertyType `form:"propertyType"`                // By property type
	PropertySize types.PropertySize `form:"propertySize"`                // By property size
	Tier         types.PricingTier  `form:"tier"`                        // By pricing tier
	SuburbID     ls_uuid.UUID       `form:"suburb"`                      // By ID of the Suburb
	VendorID     ls_uuid.UUID       `form:"vendor"`                      // By ID of the Vendor
	ScheduleID   ls_uuid.UUID       `form:"schedule"`                    // By ID of the Schedule
	Search       string             `form:"search" filterField:"false"`  // By string in address, client, agent or notes
	Offset       uint               `form:"offset" filterField:"false"`  // The offset of the first Budget returned. Defaults to 0.
	Limit        int                `form:"limit" filterField:"false"`   // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() (models.Budget, error) {
	var suburbID, vendorID, scheduleID *uuid.UUID

	if f.SuburbID != ls_uuid.Nil {
		suburbID = &f.SuburbID.UUID
	}

	if f.VendorID != ls_uuid.Nil {
		vendorID = &f.VendorID.UUID
	}

	if f.ScheduleID != ls_uuid.Nil {
		scheduleID = &f.ScheduleID.UUID
	}

	return models.Budget{
		Status:       f.Status,
		PropertyType: f.PropertyType,
		PropertySize: f.PropertySize,
		Tier:         f.Tier,
		SuburbID:     suburbID,
		VendorID:     vendorID,
		ScheduleID:   scheduleID,
	}, nil
}
