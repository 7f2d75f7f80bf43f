// Package exchange moves reference data and budgets in and out of the app
// as versioned JSON documents, and projects budgets to CSV.
//
// Exports are selective: callers pick which collections to include. Imports
// are strictly additive, every record is created as a new one so that
// importing a document can never overwrite or delete existing data.
package exchange

import (
	"encoding/json"
	"time"

	"github.com/listingspend/backend/internal/models"
	"golang.org/x/text/currency"
)

// collections maps each entity type to the model that exports it.
// The content mirrors models.Registry.
var collections = map[EntityType]models.Model{
	TypeVendors:   models.Vendor{},
	TypeServices:  models.Service{},
	TypeSuburbs:   models.Suburb{},
	TypeSchedules: models.Schedule{},
	TypeBudgets:   models.Budget{},
}

// Repository persists imported records. Imported records never carry an ID,
// the repository assigns a fresh one on save.
type Repository interface {
	SaveVendor(*models.Vendor) error
	SaveService(*models.Service) error
	SaveSuburb(*models.Suburb) error
	SaveSchedule(*models.Schedule) error
	SaveBudget(*models.Budget) error
}

// Export builds a document containing the requested collections.
//
// Collections that are not requested are absent from the document, not
// empty. AppVersion is recorded so that support can tell which release
// wrote a file.
func Export(requested []EntityType, appVersion string) (Document, error) {
	document := Document{
		Version:    Version,
		Date:       time.Now(),
		AppVersion: appVersion,
		Currency:   CurrencyCode,
	}

	for _, t := range requested {
		model, ok := collections[t]
		if !ok {
			return Document{}, ErrInvalidEntityType
		}

		records, err := model.Export()
		if err != nil {
			return Document{}, err
		}

		document.setCollection(t, records)
	}

	return document, nil
}

// Analyse counts the records of every collection in a document without
// persisting anything.
//
// Documents written by other apps must stay analysable: collections that
// are absent or are not a JSON array count zero records, Analyse never
// fails.
func Analyse(document Document) Summary {
	summary := Summary{
		Counts:         make(map[EntityType]int, len(EntityTypes())),
		AvailableTypes: make([]EntityType, 0),
	}

	for _, t := range EntityTypes() {
		count := countRecords(document.collection(t))
		summary.Counts[t] = count

		if count > 0 {
			summary.AvailableTypes = append(summary.AvailableTypes, t)
		}
	}

	return summary
}

// Import persists the requested collections of a document.
//
// Import is additive: every record is saved as a new one with a fresh ID,
// nothing is updated or deleted. Importing the same document twice doubles
// the records. Entity types import independently: when one collection
// fails, records saved so far stay and the remaining types still import.
// The result counts what was persisted per type, the error is the first
// one encountered.
func Import(document Document, requested []EntityType, repo Repository) (Result, error) {
	result := Result{Imported: make(map[EntityType]int, len(requested))}

	if document.Currency != "" {
		unit, err := currency.ParseISO(document.Currency)
		if err != nil || unit != currency.AUD {
			return result, ErrCurrencyUnsupported
		}
	}

	var firstErr error
	collect := func(t EntityType, count int, err error) {
		result.Imported[t] = count
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, t := range requested {
		switch t {
		case TypeVendors:
			count, err := importRecords(document.Vendors, func(vendor *models.Vendor) error {
				vendor.DefaultModel = models.DefaultModel{}
				return repo.SaveVendor(vendor)
			})
			collect(t, count, err)
		case TypeServices:
			count, err := importRecords(document.Services, func(service *models.Service) error {
				service.DefaultModel = models.DefaultModel{}
				return repo.SaveService(service)
			})
			collect(t, count, err)
		case TypeSuburbs:
			count, err := importRecords(document.Suburbs, func(suburb *models.Suburb) error {
				suburb.DefaultModel = models.DefaultModel{}
				return repo.SaveSuburb(suburb)
			})
			collect(t, count, err)
		case TypeSchedules:
			count, err := importRecords(document.Schedules, func(schedule *models.Schedule) error {
				schedule.DefaultModel = models.DefaultModel{}
				return repo.SaveSchedule(schedule)
			})
			collect(t, count, err)
		case TypeBudgets:
			count, err := importRecords(document.Budgets, func(budget *models.Budget) error {
				budget.DefaultModel = models.DefaultModel{}
				return repo.SaveBudget(budget)
			})
			collect(t, count, err)
		default:
			collect(t, 0, ErrInvalidEntityType)
		}
	}

	return result, firstErr
}

// importRecords decodes one collection and saves every record as new.
// It stops at the first failing save and reports how many records made it.
func importRecords[T any](raw json.RawMessage, save func(*T) error) (int, error) {
	if len(raw) == 0 {
		return 0, nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return 0, err
	}

	for i := range records {
		if err := save(&records[i]); err != nil {
			return i, err
		}
	}

	return len(records), nil
}

// countRecords counts the elements of a JSON array, zero for anything that
// is not one.
func countRecords(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return 0
	}

	return len(records)
}
