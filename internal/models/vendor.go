package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// Vendor is a supplier of marketing services, e.g. a photography studio.
//
// Vendors are shared reference data. They are archived instead of being
// deleted when they are still referenced by services or budgets.
type Vendor struct {
	DefaultModel
	Name     string `json:"name" example:"Skyshot Media" default:""`                    // Name of the vendor
	Note     string `json:"note" example:"Preferred for aerial photography" default:""` // Note about the vendor
	Archived bool   `json:"archived" example:"true" default:"false"`                    // Is the vendor archived?
}

func (v *Vendor) BeforeSave(_ *gorm.DB) error {
	v.Name = strings.TrimSpace(v.Name)
	v.Note = strings.TrimSpace(v.Note)

	return nil
}

// Returns all vendors on this instance for export
func (Vendor) Export() (json.RawMessage, error) {
	vendors := make([]Vendor, 0)
	err := DB.Unscoped().Where(&Vendor{}).Find(&vendors).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&vendors)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
