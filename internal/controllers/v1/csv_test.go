package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/listingspend/backend/internal/controllers/v1"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsCSVDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

// TestBudgetsCSV verifies the CSV projection of the budget list.
func (suite *TestSuiteStandard) TestBudgetsCSV() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		PropertyAddress: "12 Latrobe Terrace, Paddington",
		ClientName:      "Jane Citizen",
		AgentName:       "Sam Agent",
		LineItems: []models.BudgetLineItem{
			{ServiceID: uuid.New(), ServiceName: "Photography", SchedulePrice: decimal.NewFromInt(450), Selected: true},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	assert.Equal(suite.T(), `attachment; filename="budgets.csv"`, r.Header().Get("Content-Disposition"))

	body := r.Body.String()
	assert.Contains(suite.T(), body, "Property Address,Property Type,Property Size,Tier,Status,Client,Agent,Selected Items,Total Items,Subtotal,GST,Total,Created At\n")

	// The address contains a comma, so it must be double quoted
	assert.Contains(suite.T(), body, `"12 Latrobe Terrace, Paddington"`)
	assert.Contains(suite.T(), body, "450.00,40.91,450.00")
}

// TestBudgetsCSVEmpty verifies that an empty budget list renders the
// header row only.
func (suite *TestSuiteStandard) TestBudgetsCSVEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "Property Address,Property Type,Property Size,Tier,Status,Client,Agent,Selected Items,Total Items,Subtotal,GST,Total,Created At\n", r.Body.String())
}

// TestBudgetsLineItemsCSV verifies the CSV projection of the line items of
// a single budget.
func (suite *TestSuiteStandard) TestBudgetsLineItemsCSV() {
	override := decimal.NewFromInt(150)

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		PropertyAddress: "12 Latrobe Terrace, Paddington",
		LineItems: []models.BudgetLineItem{
			{
				ServiceID:     uuid.New(),
				ServiceName:   "Professional Photography",
				SchedulePrice: decimal.NewFromInt(450),
				Selected:      true,
			},
			{
				ServiceID:     uuid.New(),
				ServiceName:   "Signboard",
				SchedulePrice: decimal.NewFromInt(200),
				OverridePrice: &override,
				Selected:      true,
			},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.LineItemsCSV, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	assert.Equal(suite.T(), fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("budget-%s-line-items.csv", budget.Data.ID)), r.Header().Get("Content-Disposition"))

	expected := "Service,Variant,Selected,Schedule Price,Override Price,Effective Price\n" +
		"Professional Photography,,true,450.00,,450.00\n" +
		"Signboard,,true,200.00,150.00,150.00\n"
	assert.Equal(suite.T(), expected, r.Body.String())
}

func (suite *TestSuiteStandard) TestBudgetsLineItemsCSVFails() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Invalid ID", "notaUUID", http.StatusBadRequest},
		{"Non-existing Budget", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s/line-items/csv", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestBudgetsLineItemsCSVOptions verifies that OPTIONS requests for the
// line item CSV endpoint are handled correctly.
func (suite *TestSuiteStandard) TestBudgetsLineItemsCSVOptions() {
	tests := []struct {
		name   string
		id     string // ID of the budget
		status int    // Expected HTTP status code
	}{
		{"No Budget with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Budget exists", createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/budgets/%s/line-items/csv", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
			}
		})
	}
}
