package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/listingspend/backend/internal/controllers/v1"
	"github.com/listingspend/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	_ = createTestVendor(suite.T(), v1.VendorEditable{Name: "TestCleanup"})
	_ = createTestService(suite.T(), v1.ServiceEditable{})
	_ = createTestSuburb(suite.T(), v1.SuburbEditable{})
	_ = createTestSchedule(suite.T(), v1.ScheduleEditable{})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []string{
		"http://example.com/v1/budgets",
		"http://example.com/v1/schedules",
		"http://example.com/v1/services",
		"http://example.com/v1/suburbs",
		"http://example.com/v1/vendors",
	}

	// Delete
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodGet, tt, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Invalid path", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, "the confirmation for the cleanup API call was incorrect", response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
