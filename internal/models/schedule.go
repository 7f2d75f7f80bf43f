package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/listingspend/backend/internal/types"
	"gorm.io/gorm"
)

// Schedule is a reusable template of default line items for one combination
// of property type, size and tier. New budgets seed their line items from
// the matching schedule.
type Schedule struct {
	DefaultModel
	Name         string             `json:"name" example:"House Standard" default:""` // Name of the schedule
	PropertyType types.PropertyType `json:"propertyType" example:"house"`             // Property type this schedule applies to
	PropertySize types.PropertySize `json:"propertySize" example:"medium"`            // Property size this schedule applies to
	Tier         types.PricingTier  `json:"tier" example:"standard"`                  // Pricing tier this schedule applies to
	LineItems    []ScheduleLineItem `json:"lineItems" gorm:"serializer:json"`         // Ordered template line items
}

// ScheduleLineItem references a catalogue service with its default variant
// and selection state. It only exists embedded in its schedule.
//
// Service references are not enforced, a line item referencing a service
// that no longer exists resolves to a zero price.
type ScheduleLineItem struct {
	ServiceID uuid.UUID  `json:"serviceId" example:"0495b41a-5be2-4a1b-b2e0-0216e1a8d58c"` // ID of the referenced service
	VariantID *uuid.UUID `json:"variantId,omitempty"`                                      // ID of the default variant, if any
	Selected  bool       `json:"isSelected" example:"true"`                                // Whether the item is selected by default
}

func (s *Schedule) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)

	return nil
}

func (s *Schedule) AfterSave(_ *gorm.DB) error {
	if !s.PropertyType.Valid() {
		return ErrPropertyTypeInvalid
	}

	if !s.PropertySize.Valid() {
		return ErrPropertySizeInvalid
	}

	if !s.Tier.Valid() {
		return ErrTierInvalid
	}

	for _, item := range s.LineItems {
		if item.ServiceID == uuid.Nil {
			return ErrLineItemServiceIDMissing
		}
	}

	return nil
}

// Returns all schedules on this instance for export
func (Schedule) Export() (json.RawMessage, error) {
	schedules := make([]Schedule, 0)
	err := DB.Unscoped().Where(&Schedule{}).Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&schedules)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
