package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/listingspend/backend/internal/controllers/v1"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
	"github.com/listingspend/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSuburb(t *testing.T, s v1.SuburbEditable, expectedStatus ...int) v1.SuburbResponse {
	if s.Name == "" {
		s.Name = uuid.NewString()
	}

	if s.Tier == "" {
		s.Tier = types.TierStandard
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.SuburbEditable{s}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/suburbs", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var suburb v1.SuburbCreateResponse
	test.DecodeResponse(t, &r, &suburb)

	if r.Code == http.StatusCreated {
		return suburb.Data[0]
	}

	return v1.SuburbResponse{}
}

// TestSuburbsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestSuburbsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestSuburb(t, v1.SuburbEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/suburbs", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.SuburbListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestSuburbsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestSuburbsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Suburbs endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Suburb with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Suburb exists", createTestSuburb(suite.T(), v1.SuburbEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/suburbs", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestSuburbsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestSuburbsGetSingle() {
	s := createTestSuburb(suite.T(), v1.SuburbEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Suburb", s.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Suburb with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/suburbs/%s", tt.id), "")

			var suburb v1.SuburbResponse
			test.DecodeResponse(t, &r, &suburb)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestSuburbsGetFilter() {
	_ = createTestSuburb(suite.T(), v1.SuburbEditable{
		Name:     "Paddington",
		Match:    "* Paddington*",
		Postcode: "4064",
		Tier:     types.TierPremium,
	})

	_ = createTestSuburb(suite.T(), v1.SuburbEditable{
		Name:     "Chermside",
		Postcode: "4032",
		Tier:     types.TierStandard,
	})

	_ = createTestSuburb(suite.T(), v1.SuburbEditable{
		Name:     "Logan Central",
		Match:    "* Logan Central*",
		Postcode: "4114",
		Tier:     types.TierBasic,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Tier premium", "tier=premium", 1},
		{"Tier basic", "tier=basic", 1},
		{"Tier without suburbs", "tier=premium&postcode=4032", 0},
		{"Postcode", "postcode=4064", 1},
		{"Fuzzy name", "name=ton", 1},
		{"Empty name", "name=", 0},
		{"Fuzzy match", "match=Logan", 1},
		{"Empty match", "match=", 1},
		{"Offset 2", "offset=2", 1},
		{"Limit 2", "limit=2", 2},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.SuburbListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/suburbs?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestSuburbsCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                           // expected HTTP status
		testFunc func(t *testing.T, s v1.SuburbCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "name": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, s v1.SuburbCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field SuburbEditable.name of type string", *s.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, s v1.SuburbCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *s.Error)
			},
		},
		{
			"Invalid tier",
			[]v1.SuburbEditable{{Name: "Paddington", Tier: "platinum"}},
			http.StatusBadRequest,
			func(t *testing.T, s v1.SuburbCreateResponse) {
				assert.Equal(t, models.ErrTierInvalid.Error(), *s.Data[0].Error)
			},
		},
		{
			"Missing tier",
			[]v1.SuburbEditable{{Name: "Paddington"}},
			http.StatusBadRequest,
			func(t *testing.T, s v1.SuburbCreateResponse) {
				assert.Equal(t, models.ErrTierInvalid.Error(), *s.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/suburbs", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var s v1.SuburbCreateResponse
			test.DecodeResponse(t, &r, &s)

			if tt.testFunc != nil {
				tt.testFunc(t, s)
			}
		})
	}
}

// Verify that updating suburbs works as desired
func (suite *TestSuiteStandard) TestSuburbsUpdate() {
	suburb := createTestSuburb(suite.T(), v1.SuburbEditable{Name: "Name of the suburb"})

	tests := []struct {
		name     string                                  // name of the test
		suburb   map[string]any                          // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, s v1.SuburbResponse) // tests to perform against the updated suburb resource
	}{
		{
			"Name, Match",
			map[string]any{
				"name":  "Red Hill",
				"match": "* Red Hill*",
			},
			func(t *testing.T, s v1.SuburbResponse) {
				assert.Equal(t, "Red Hill", s.Data.Name)
				assert.Equal(t, "* Red Hill*", s.Data.Match)
			},
		},
		{
			"Postcode",
			map[string]any{
				"postcode": "4059",
			},
			func(t *testing.T, s v1.SuburbResponse) {
				assert.Equal(t, "4059", s.Data.Postcode)
			},
		},
		{
			"Tier",
			map[string]any{
				"tier": "premium",
			},
			func(t *testing.T, s v1.SuburbResponse) {
				assert.Equal(t, types.TierPremium, s.Data.Tier)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, suburb.Data.Links.Self, tt.suburb)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var s v1.SuburbResponse
			test.DecodeResponse(t, &r, &s)

			if tt.testFunc != nil {
				tt.testFunc(t, s)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSuburbsUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Invalid tier", "", `{"tier": "platinum"}`, http.StatusBadRequest},
		{"Non-existing Suburb", uuid.New().String(), `{"name": "Does not matter"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				suburb := createTestSuburb(suite.T(), v1.SuburbEditable{
					Name: "New suburb",
				})

				tt.id = suburb.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/suburbs/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestSuburbsDelete verifies all cases for Suburb deletions.
func (suite *TestSuiteStandard) TestSuburbsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Suburb", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				s := createTestSuburb(t, v1.SuburbEditable{})
				tt.id = s.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/suburbs/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestSuburbsGetSorted verifies that Suburbs are sorted by name.
func (suite *TestSuiteStandard) TestSuburbsGetSorted() {
	s2 := createTestSuburb(suite.T(), v1.SuburbEditable{
		Name: "Chermside",
	})

	s1 := createTestSuburb(suite.T(), v1.SuburbEditable{
		Name: "Ashgrove",
	})

	s3 := createTestSuburb(suite.T(), v1.SuburbEditable{
		Name: "Paddington",
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/suburbs", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var suburbs v1.SuburbListResponse
	test.DecodeResponse(suite.T(), &r, &suburbs)

	require.Len(suite.T(), suburbs.Data, 3, "Suburb list has wrong length")

	assert.Equal(suite.T(), s1.Data.Name, suburbs.Data[0].Name)
	assert.Equal(suite.T(), s2.Data.Name, suburbs.Data[1].Name)
	assert.Equal(suite.T(), s3.Data.Name, suburbs.Data[2].Name)
}
