package exchange

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// Version is the version of the export document format.
const Version = "1.0"

// CurrencyCode is the ISO 4217 code all prices are denominated in.
// Documents with a different currency are rejected on import.
const CurrencyCode = "AUD"

var (
	ErrInvalidEntityType   = errors.New("not a valid entity type")
	ErrCurrencyUnsupported = errors.New("only documents in AUD can be imported")
)

// EntityType names one exportable collection.
type EntityType string

const (
	TypeVendors   EntityType = "vendors"
	TypeServices  EntityType = "services"
	TypeSuburbs   EntityType = "suburbs"
	TypeSchedules EntityType = "schedules"
	TypeBudgets   EntityType = "budgets"
)

// EntityTypes returns all entity types in canonical order.
func EntityTypes() []EntityType {
	return []EntityType{TypeVendors, TypeServices, TypeSuburbs, TypeSchedules, TypeBudgets}
}

// ParseEntityTypes parses a comma separated list of entity types. The empty
// string selects all types.
func ParseEntityTypes(s string) ([]EntityType, error) {
	if strings.TrimSpace(s) == "" {
		return EntityTypes(), nil
	}

	requested := make([]EntityType, 0)
	for _, field := range strings.Split(s, ",") {
		t := EntityType(strings.TrimSpace(field))
		if !slices.Contains(EntityTypes(), t) {
			return nil, ErrInvalidEntityType
		}

		if !slices.Contains(requested, t) {
			requested = append(requested, t)
		}
	}

	return requested, nil
}

// Document is a portable export file.
//
// Each collection is optional: an absent key means the type was not
// exported, an empty array means it was exported with no records. Import
// and Analyse preserve that distinction. Collections are kept as raw JSON
// so that a document with one malformed collection stays usable, the
// malformed collection counts as absent.
type Document struct {
	Version    string          `json:"exportVersion" example:"1.0"`                    // Version of the document format
	Date       time.Time       `json:"exportDate" example:"2026-03-12T07:38:14.491Z"`  // Time the export was created
	AppVersion string          `json:"appVersion,omitempty" example:"1.4.0"`           // Version of the app that created the export
	Currency   string          `json:"currency,omitempty" example:"AUD"`               // ISO 4217 currency code of all prices
	Vendors    json.RawMessage `json:"vendors,omitempty" swaggertype:"array,object"`   // Exported vendors
	Services   json.RawMessage `json:"services,omitempty" swaggertype:"array,object"`  // Exported services
	Suburbs    json.RawMessage `json:"suburbs,omitempty" swaggertype:"array,object"`   // Exported suburbs
	Schedules  json.RawMessage `json:"schedules,omitempty" swaggertype:"array,object"` // Exported schedules
	Budgets    json.RawMessage `json:"budgets,omitempty" swaggertype:"array,object"`   // Exported budgets
}

// collection returns the raw records of one entity type.
func (d Document) collection(t EntityType) json.RawMessage {
	switch t {
	case TypeVendors:
		return d.Vendors
	case TypeServices:
		return d.Services
	case TypeSuburbs:
		return d.Suburbs
	case TypeSchedules:
		return d.Schedules
	case TypeBudgets:
		return d.Budgets
	}

	return nil
}

// setCollection sets the raw records of one entity type.
func (d *Document) setCollection(t EntityType, records json.RawMessage) {
	switch t {
	case TypeVendors:
		d.Vendors = records
	case TypeServices:
		d.Services = records
	case TypeSuburbs:
		d.Suburbs = records
	case TypeSchedules:
		d.Schedules = records
	case TypeBudgets:
		d.Budgets = records
	}
}

// Summary describes the content of a document without touching any data.
type Summary struct {
	Counts         map[EntityType]int `json:"counts"`         // Number of records per entity type, zero for absent collections
	AvailableTypes []EntityType       `json:"availableTypes"` // Types with at least one record, in canonical order
}

// Result reports what an import persisted, per requested entity type.
type Result struct {
	Imported map[EntityType]int `json:"imported"` // Number of records created per requested type
}
