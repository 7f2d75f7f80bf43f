package models

import (
	"encoding/json"
	"strings"

	"github.com/listingspend/backend/internal/types"
	"gorm.io/gorm"
)

// Suburb maps a location to a pricing tier.
//
// The tier of a new budget is looked up by the suburb name or, when Match is
// set, by matching the glob pattern against the property address.
type Suburb struct {
	DefaultModel
	Name     string            `json:"name" example:"Paddington" default:""`     // Name of the suburb
	Match    string            `json:"match" example:"* Paddington*" default:""` // Glob pattern matched against property addresses
	Postcode string            `json:"postcode" example:"4064" default:""`       // Postcode of the suburb
	Tier     types.PricingTier `json:"tier" example:"premium"`                   // Pricing tier for properties in this suburb
}

func (s *Suburb) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Match = strings.TrimSpace(s.Match)
	s.Postcode = strings.TrimSpace(s.Postcode)

	return nil
}

func (s *Suburb) AfterSave(_ *gorm.DB) error {
	if !s.Tier.Valid() {
		return ErrTierInvalid
	}

	return nil
}

// Returns all suburbs on this instance for export
func (Suburb) Export() (json.RawMessage, error) {
	suburbs := make([]Suburb, 0)
	err := DB.Unscoped().Where(&Suburb{}).Find(&suburbs).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&suburbs)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
