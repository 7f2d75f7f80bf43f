package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/listingspend/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a marketing budget for a single property listing.
//
// A budget is the aggregate root of Listing Spend. It embeds its line items
// as value objects, they have no identity outside their budget. References
// to catalogue resources are by ID and are not enforced so that historical
// budgets stay readable after the catalogue changed.
type Budget struct {
	DefaultModel
	PropertyAddress string             `json:"propertyAddress" example:"12 Latrobe Terrace, Paddington" default:""` // Address of the property the budget is for
	PropertyType    types.PropertyType `json:"propertyType" example:"house"`                                        // Type of the property
	PropertySize    types.PropertySize `json:"propertySize" example:"medium"`                                       // Size band of the property
	Tier            types.PricingTier  `json:"tier" example:"standard"`                                             // Pricing tier, defaults to the tier of the suburb
	Status          types.BudgetStatus `json:"status" example:"draft" default:"draft"`                              // Lifecycle status of the budget
	ClientName      string             `json:"clientName" example:"Jane Citizen" default:""`                        // Name of the client selling the property
	AgentName       string             `json:"agentName" example:"Sam Agent" default:""`                            // Name of the listing agent
	Notes           string             `json:"notes" example:"Vendor prefers twilight shoot" default:""`            // Notes about the budget
	SuburbID        *uuid.UUID         `json:"suburbId" example:"951b14bc-0f3a-4df3-a682-e0e371a95a90"`             // ID of the suburb of the property
	VendorID        *uuid.UUID         `json:"vendorId" example:"d1b8ba0c-b8a8-4bc6-afcf-cd74a634a09c"`             // ID of the preferred vendor
	ScheduleID      *uuid.UUID         `json:"scheduleId" example:"3910dea1-e7a4-46f9-bcd4-1f1e8a7243f0"`           // ID of the schedule the line items were seeded from
	LineItems       []BudgetLineItem   `json:"lineItems" gorm:"serializer:json"`                                    // Priced line items of this budget
}

// BudgetLineItem is a single priced position of a budget.
//
// ServiceName and VariantName are snapshots taken when the item is added so
// that the budget stays readable when the catalogue drifts. The effective
// price is OverridePrice when the item is overridden, SchedulePrice
// otherwise.
type BudgetLineItem struct {
	ServiceID     uuid.UUID        `json:"serviceId" example:"0495b41a-5be2-4a1b-b2e0-0216e1a8d58c"`                                // ID of the catalogue service
	ServiceName   string           `json:"serviceName" example:"Professional Photography"`                                          // Snapshot of the service name
	VariantID     *uuid.UUID       `json:"variantId,omitempty" example:"5b8dcc1d-fae5-4e50-a94e-a2e919067a36"`                      // ID of the chosen variant, if any
	VariantName   string           `json:"variantName,omitempty" example:"Premium"`                                                 // Snapshot of the variant name
	Selected      bool             `json:"isSelected" example:"true"`                                                               // Whether the item counts towards the budget totals
	SchedulePrice decimal.Decimal  `json:"schedulePrice" example:"450" minimum:"0" multipleOf:"0.00000001"`                         // Price from the schedule or catalogue, GST inclusive
	OverridePrice *decimal.Decimal `json:"overridePrice" example:"350" minimum:"0" multipleOf:"0.00000001" extensions:"x-nullable"` // Manually entered price, GST inclusive
	Overridden    bool             `json:"isOverridden" example:"true" default:"false"`                                             // Whether OverridePrice is used. Set automatically.
}

// BeforeSave keeps the budget consistent.
//
// It defaults the status to draft, trims all strings and normalizes the
// Overridden flag of every line item so that it is true exactly when an
// override price is set.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Status == "" {
		b.Status = types.StatusDraft
	}

	b.PropertyAddress = strings.TrimSpace(b.PropertyAddress)
	b.ClientName = strings.TrimSpace(b.ClientName)
	b.AgentName = strings.TrimSpace(b.AgentName)
	b.Notes = strings.TrimSpace(b.Notes)

	for i := range b.LineItems {
		b.LineItems[i].ServiceName = strings.TrimSpace(b.LineItems[i].ServiceName)
		b.LineItems[i].VariantName = strings.TrimSpace(b.LineItems[i].VariantName)
		b.LineItems[i].Overridden = b.LineItems[i].OverridePrice != nil
	}

	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !b.Status.Valid() {
		return ErrBudgetStatusInvalid
	}

	if b.PropertyType != "" && !b.PropertyType.Valid() {
		return ErrPropertyTypeInvalid
	}

	if b.PropertySize != "" && !b.PropertySize.Valid() {
		return ErrPropertySizeInvalid
	}

	if b.Tier != "" && !b.Tier.Valid() {
		return ErrTierInvalid
	}

	for _, item := range b.LineItems {
		if item.ServiceID == uuid.Nil {
			return ErrLineItemServiceIDMissing
		}

		if item.SchedulePrice.IsNegative() {
			return ErrLineItemPriceNegative
		}

		if item.OverridePrice != nil && item.OverridePrice.IsNegative() {
			return ErrLineItemPriceNegative
		}
	}

	return nil
}

// Returns all budgets on this instance for export
func (Budget) Export() (json.RawMessage, error) {
	budgets := make([]Budget, 0)
	err := DB.Unscoped().Where(&Budget{}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&budgets)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
