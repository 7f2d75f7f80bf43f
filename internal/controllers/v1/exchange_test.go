package v1_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	v1 "github.com/listingspend/backend/internal/controllers/v1"
	"github.com/listingspend/backend/internal/exchange"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
	"github.com/listingspend/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExport verifies that the export works correctly
//
// Thorough checks are only executed for the non-data fields since
// the data fields are populated by the Export() methods of the models
func (suite *TestSuiteStandard) TestExport() {
	t := suite.T()

	vendor := createTestVendor(t, v1.VendorEditable{Name: "Skyshot Media"})
	_ = createTestBudget(t, v1.BudgetEditable{PropertyAddress: "12 Latrobe Terrace, Paddington"})

	recorder := test.Request(t, http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var document exchange.Document
	test.DecodeResponse(t, &recorder, &document)

	assert.Equal(t, exchange.Version, document.Version)
	assert.Equal(t, exchange.CurrencyCode, document.Currency)
	assert.Equal(t, "0.0.0", document.AppVersion)

	difference := document.Date.Sub(time.Now()).Seconds()
	assert.Less(t, difference, float64(1))

	// Basic tests for the data fields. Full testing is done in the
	// Export() methods of the models
	var vendors []models.Vendor
	require.Nil(t, json.Unmarshal(document.Vendors, &vendors))
	require.Len(t, vendors, 1, "Number of vendors in export must be 1")
	assert.Equal(t, vendor.Data.CreatedAt, vendors[0].CreatedAt)

	var budgets []models.Budget
	require.Nil(t, json.Unmarshal(document.Budgets, &budgets))
	require.Len(t, budgets, 1, "Number of budgets in export must be 1")

	// Collections without records are exported as empty arrays, not
	// omitted
	var services []models.Service
	require.Nil(t, json.Unmarshal(document.Services, &services))
	assert.Len(t, services, 0)
}

// TestExportSelective verifies that only the requested entity types are
// part of the document, everything else is absent.
func (suite *TestSuiteStandard) TestExportSelective() {
	t := suite.T()

	_ = createTestVendor(t, v1.VendorEditable{Name: "Skyshot Media"})
	_ = createTestBudget(t, v1.BudgetEditable{})

	recorder := test.Request(t, http.MethodGet, "http://example.com/v1/export?types=vendors,budgets", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var document exchange.Document
	test.DecodeResponse(t, &recorder, &document)

	assert.NotEmpty(t, document.Vendors)
	assert.NotEmpty(t, document.Budgets)

	assert.Nil(t, document.Services, "unrequested collections must be absent")
	assert.Nil(t, document.Suburbs, "unrequested collections must be absent")
	assert.Nil(t, document.Schedules, "unrequested collections must be absent")
}

func (suite *TestSuiteStandard) TestExportFails() {
	tests := []struct {
		name   string
		query  string
		status int // expected HTTP status
	}{
		{"Unknown entity type", "types=unicorns", http.StatusBadRequest},
		{"One unknown among known types", "types=vendors,unicorns", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/export?"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, "not a valid entity type", response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

// TestImportAnalyse verifies that analysing a document counts its records
// without persisting anything.
func (suite *TestSuiteStandard) TestImportAnalyse() {
	t := suite.T()

	document := exchange.Document{
		Version:  exchange.Version,
		Currency: exchange.CurrencyCode,
		Vendors:  json.RawMessage(`[{"name": "Skyshot Media"}, {"name": "Brisbane Sign Co"}]`),
		Suburbs:  json.RawMessage(`[]`),
		Budgets:  json.RawMessage(`{"not": "an array"}`),
	}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/import/analyse", document)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.AnalyseResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)

	assert.Equal(t, map[exchange.EntityType]int{
		exchange.TypeVendors:   2,
		exchange.TypeServices:  0,
		exchange.TypeSuburbs:   0,
		exchange.TypeSchedules: 0,
		exchange.TypeBudgets:   0,
	}, response.Data.Counts, "malformed and absent collections must count zero")

	assert.Equal(t, []exchange.EntityType{exchange.TypeVendors}, response.Data.AvailableTypes)

	// Analysing must not persist anything
	var vendors v1.VendorListResponse
	r := test.Request(t, http.MethodGet, "http://example.com/v1/vendors", "")
	test.DecodeResponse(t, &r, &vendors)
	assert.Len(t, vendors.Data, 0)
}

func (suite *TestSuiteStandard) TestImportAnalyseFails() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/analyse", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.AnalyseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "the request body must not be empty", *response.Error)
}

// TestImportRoundTrip exports everything and imports the document again,
// verifying that the import is additive.
func (suite *TestSuiteStandard) TestImportRoundTrip() {
	t := suite.T()

	vendor := createTestVendor(t, v1.VendorEditable{Name: "Skyshot Media"})
	_ = createTestService(t, v1.ServiceEditable{Name: "Professional Photography"})
	_ = createTestSuburb(t, v1.SuburbEditable{Name: "Paddington"})
	_ = createTestSchedule(t, v1.ScheduleEditable{Name: "House Medium"})
	_ = createTestBudget(t, v1.BudgetEditable{PropertyAddress: "12 Latrobe Terrace, Paddington"})

	recorder := test.Request(t, http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	recorder = test.Request(t, http.MethodPost, "http://example.com/v1/import", recorder.Body.String())
	test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)

	assert.Equal(t, map[exchange.EntityType]int{
		exchange.TypeVendors:   1,
		exchange.TypeServices:  1,
		exchange.TypeSuburbs:   1,
		exchange.TypeSchedules: 1,
		exchange.TypeBudgets:   1,
	}, response.Data.Imported)

	// Importing never updates records, the imported vendor is a copy with
	// a fresh ID
	var vendors v1.VendorListResponse
	r := test.Request(t, http.MethodGet, "http://example.com/v1/vendors", "")
	test.DecodeResponse(t, &r, &vendors)

	require.Len(t, vendors.Data, 2)
	assert.Equal(t, "Skyshot Media", vendors.Data[0].Name)
	assert.Equal(t, "Skyshot Media", vendors.Data[1].Name)
	assert.NotEqual(t, vendors.Data[0].ID, vendors.Data[1].ID)
	assert.Contains(t, []string{vendors.Data[0].ID.String(), vendors.Data[1].ID.String()}, vendor.Data.ID.String())
}

// TestImportSelective verifies that only the requested entity types are
// imported even when the document contains more.
func (suite *TestSuiteStandard) TestImportSelective() {
	t := suite.T()

	document := exchange.Document{
		Currency: exchange.CurrencyCode,
		Vendors:  json.RawMessage(`[{"name": "Imported Vendor"}]`),
		Budgets:  json.RawMessage(`[{"propertyAddress": "1 Imported Way"}]`),
	}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/import?types=vendors", document)
	test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, map[exchange.EntityType]int{exchange.TypeVendors: 1}, response.Data.Imported)

	var budgets v1.BudgetListResponse
	r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets", "")
	test.DecodeResponse(t, &r, &budgets)
	assert.Len(t, budgets.Data, 0, "unrequested types must not be imported")
}

// TestImportPartialFailure verifies that entity types import independently:
// a malformed collection does not prevent the others from importing.
func (suite *TestSuiteStandard) TestImportPartialFailure() {
	t := suite.T()

	document := exchange.Document{
		Currency: exchange.CurrencyCode,
		Vendors:  json.RawMessage(`{"not": "an array"}`),
		Suburbs:  json.RawMessage(`[{"name": "Paddington", "tier": "premium"}]`),
	}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/import", document)
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

	var response v1.ImportResponse
	test.DecodeResponse(t, &recorder, &response)

	require.NotNil(t, response.Error)

	// The result still counts what was persisted
	require.NotNil(t, response.Data)
	assert.Equal(t, 0, response.Data.Imported[exchange.TypeVendors])
	assert.Equal(t, 1, response.Data.Imported[exchange.TypeSuburbs])

	var suburbs v1.SuburbListResponse
	r := test.Request(t, http.MethodGet, "http://example.com/v1/suburbs", "")
	test.DecodeResponse(t, &r, &suburbs)

	require.Len(t, suburbs.Data, 1)
	assert.Equal(t, "Paddington", suburbs.Data[0].Name)
	assert.Equal(t, types.TierPremium, suburbs.Data[0].Tier)
}

func (suite *TestSuiteStandard) TestImportFails() {
	tests := []struct {
		name   string
		query  string
		body   any
		status int    // expected HTTP status
		error  string // expected error message, not checked when empty
	}{
		{
			"Unknown entity type",
			"?types=unicorns",
			exchange.Document{},
			http.StatusBadRequest,
			"not a valid entity type",
		},
		{
			"No body",
			"",
			"",
			http.StatusBadRequest,
			"the request body must not be empty",
		},
		{
			"Broken body",
			"",
			`{ "exportVersion": }`,
			http.StatusBadRequest,
			"the body of your request contains invalid or un-parseable data. Please check and try again",
		},
		{
			"Wrong currency",
			"",
			exchange.Document{Currency: "USD"},
			http.StatusBadRequest,
			"only documents in AUD can be imported",
		},
		{
			"Unknown currency",
			"",
			exchange.Document{Currency: "DOGE"},
			http.StatusBadRequest,
			"only documents in AUD can be imported",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/import"+tt.query, tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.error != "" {
				var response v1.ImportResponse
				test.DecodeResponse(t, &recorder, &response)

				require.NotNil(t, response.Error)
				assert.Equal(t, tt.error, *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestImportDBClosed() {
	suite.CloseDB()

	document := exchange.Document{
		Currency: exchange.CurrencyCode,
		Vendors:  json.RawMessage(`[{"name": "Skyshot Media"}]`),
	}

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", document)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}
