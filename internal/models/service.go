package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/listingspend/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service is a priced catalogue entry, e.g. "Professional Photography".
//
// A service either has a single implicit price (BasePrice) or a list of
// priced variants. If a variant selector is set, the variant is picked from
// the selection context, e.g. the property size of a budget.
type Service struct {
	DefaultModel
	Name      string                `json:"name" example:"Professional Photography" default:""`                                    // Name of the service
	Note      string                `json:"note" example:"Up to 20 edited images" default:""`                                      // Note about the service
	Category  types.ServiceCategory `json:"category" example:"photography"`                                                        // Category of the service
	VendorID  *uuid.UUID            `json:"vendorId" example:"d1b8ba0c-b8a8-4bc6-afcf-cd74a634a09c"`                               // ID of the vendor providing this service
	BasePrice decimal.Decimal       `json:"basePrice" gorm:"type:DECIMAL(20,8)" example:"450" minimum:"0" multipleOf:"0.00000001"` // Price when the service has no variants, GST inclusive
	Variants  []Variant             `json:"variants" gorm:"serializer:json"`                                                       // Priced variants of this service
	Selector  *VariantSelector      `json:"variantSelector" gorm:"serializer:json"`                                                // Rule describing how a variant is picked
}

// Variant is a priced sub-option of a service, e.g. "Premium" photography.
// Variants only exist embedded in their service.
type Variant struct {
	ID           uuid.UUID       `json:"id" example:"5b8dcc1d-fae5-4e50-a94e-a2e919067a36"` // UUID of the variant
	Name         string          `json:"name" example:"Premium"`                            // Name of the variant
	Price        decimal.Decimal `json:"price" example:"650"`                               // Price of the variant, GST inclusive
	GSTInclusive bool            `json:"gstInclusive" example:"true" default:"true"`        // Whether the price includes GST. Always true today.
}

// SelectByPropertySize resolves the variant from the property size of the
// budget. It is the only selector dimension currently supported.
const SelectByPropertySize = "propertySize"

// VariantSelector describes how the variant of a service is chosen.
//
// If Choices is empty, the variant is picked by the user. If Choices maps
// context values to variant IDs, the variant is resolved automatically from
// the selection context, e.g. "large" to the ID of the "Premium" variant.
type VariantSelector struct {
	By      string               `json:"by" example:"propertySize"` // The context value the selector inspects
	Choices map[string]uuid.UUID `json:"choices"`                   // Context value to variant ID. Empty for user-picked variants.
}

func (s *Service) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Note = strings.TrimSpace(s.Note)

	// Variants are embedded value objects, identity is assigned here
	for i := range s.Variants {
		if s.Variants[i].ID == uuid.Nil {
			s.Variants[i].ID = uuid.New()
		}
		s.Variants[i].Name = strings.TrimSpace(s.Variants[i].Name)
	}

	return nil
}

func (s *Service) AfterSave(_ *gorm.DB) error {
	if !s.Category.Valid() {
		return ErrServiceCategoryInvalid
	}

	if s.BasePrice.IsNegative() {
		return ErrPriceNegative
	}

	for _, variant := range s.Variants {
		if variant.Price.IsNegative() {
			return ErrPriceNegative
		}
	}

	if s.Selector != nil {
		if len(s.Variants) == 0 {
			return ErrServiceVariantsMissing
		}

		for _, id := range s.Selector.Choices {
			if s.Variant(id) == nil {
				return ErrSelectorChoiceInvalid
			}
		}
	}

	return nil
}

// Variant returns the variant with the given ID, nil if there is none.
func (s Service) Variant(id uuid.UUID) *Variant {
	for i := range s.Variants {
		if s.Variants[i].ID == id {
			return &s.Variants[i]
		}
	}

	return nil
}

// Returns all services on this instance for export
func (Service) Export() (json.RawMessage, error) {
	services := make([]Service, 0)
	err := DB.Unscoped().Where(&Service{}).Find(&services).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&services)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
