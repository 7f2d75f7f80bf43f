package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/listingspend/backend/internal/controllers/v1"
	"github.com/listingspend/backend/internal/lifecycle"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
	"github.com/listingspend/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createApprovableBudget creates a budget that passes all approval rules:
// it has an address and is seeded from a schedule with a selected, priced
// line item.
func createApprovableBudget(t *testing.T) v1.BudgetResponse {
	service := createTestService(t, v1.ServiceEditable{
		Name:      "Professional Photography",
		Category:  types.CategoryPhotography,
		BasePrice: decimal.NewFromInt(450),
	})

	schedule := createTestSchedule(t, v1.ScheduleEditable{
		LineItems: []models.ScheduleLineItem{
			{ServiceID: service.Data.ID, Selected: true},
		},
	})

	return createTestBudget(t, v1.BudgetEditable{
		PropertyAddress: "12 Latrobe Terrace, Paddington",
		ScheduleID:      &schedule.Data.ID,
	})
}

func (suite *TestSuiteStandard) TestBudgetsTransitionDBClosed() {
	budget := createApprovableBudget(suite.T())

	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, budget.Data.Links.Transition, v1.BudgetTransition{Status: types.StatusApproved})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.BudgetTransitionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}

// TestBudgetsTransitionOptions verifies that OPTIONS requests for the
// transition endpoint are handled correctly.
func (suite *TestSuiteStandard) TestBudgetsTransitionOptions() {
	tests := []struct {
		name   string
		id     string // ID of the budget to transition
		status int    // Expected HTTP status code
	}{
		{"No Budget with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Budget exists", createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/budgets/%s/transition", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, POST", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsTransitionFails() {
	tests := []struct {
		name   string
		id     string // ID of the budget, defaults to a fresh draft
		body   any
		status int    // expected HTTP status
		error  string // expected error message, not checked when empty
	}{
		{
			"Invalid ID",
			"notaUUID",
			v1.BudgetTransition{Status: types.StatusApproved},
			http.StatusBadRequest,
			"",
		},
		{
			"Non-existing Budget",
			uuid.New().String(),
			v1.BudgetTransition{Status: types.StatusApproved},
			http.StatusNotFound,
			"there is no budget matching your query",
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
			`{ "status": 2 }`,
			http.StatusBadRequest,
			"json: cannot unmarshal number into Go struct field BudgetTransition.status of type types.BudgetStatus",
		},
		{
			"Unknown status",
			"",
			`{ "status": "Approved" }`,
			http.StatusBadRequest,
			`not a valid budget status: "Approved"`,
		},
		{
			"Draft cannot be sent",
			"",
			v1.BudgetTransition{Status: types.StatusSent},
			http.StatusBadRequest,
			lifecycle.ErrTransitionNotAllowed.Error(),
		},
		{
			"Draft cannot be archived",
			"",
			v1.BudgetTransition{Status: types.StatusArchived},
			http.StatusBadRequest,
			lifecycle.ErrTransitionNotAllowed.Error(),
		},
		{
			"Draft cannot transition to itself",
			"",
			v1.BudgetTransition{Status: types.StatusDraft},
			http.StatusBadRequest,
			lifecycle.ErrTransitionNotAllowed.Error(),
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			if tt.id == "" {
				budget := createTestBudget(t, v1.BudgetEditable{})
				tt.id = budget.Data.ID.String()
			}

			r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/budgets/%s/transition", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.error != "" {
				var response v1.BudgetTransitionResponse
				test.DecodeResponse(t, &r, &response)

				require.NotNil(t, response.Error)
				assert.Equal(t, tt.error, *response.Error)
			}
		})
	}
}

// TestBudgetsTransitionValidation verifies that approving an incomplete
// draft reports all violations at once and does not change the status.
func (suite *TestSuiteStandard) TestBudgetsTransitionValidation() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodPost, budget.Data.Links.Transition, v1.BudgetTransition{Status: types.StatusApproved})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.BudgetTransitionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "the budget did not pass the validation for this transition", *response.Error)

	require.NotNil(suite.T(), response.Validation)
	assert.False(suite.T(), response.Validation.Valid)

	rules := make([]string, 0, len(response.Validation.Errors))
	for _, e := range response.Validation.Errors {
		rules = append(rules, e.Rule)
		assert.NotEmpty(suite.T(), e.Message)
	}

	assert.ElementsMatch(suite.T(), []string{
		lifecycle.RuleLineItemsRequired,
		lifecycle.RuleSelectedItemsRequired,
		lifecycle.RuleScheduleRequired,
	}, rules)

	// The failed validation must not change the status
	var after v1.BudgetResponse
	g := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &g, http.StatusOK)
	test.DecodeResponse(suite.T(), &g, &after)

	assert.Equal(suite.T(), types.StatusDraft, after.Data.Status)
}

// TestBudgetsTransitionLifecycle walks a budget through its full lifecycle.
func (suite *TestSuiteStandard) TestBudgetsTransitionLifecycle() {
	budget := createApprovableBudget(suite.T())

	steps := []types.BudgetStatus{
		types.StatusApproved,
		types.StatusSent,
		types.StatusArchived,
	}

	for _, status := range steps {
		r := test.Request(suite.T(), http.MethodPost, budget.Data.Links.Transition, v1.BudgetTransition{Status: status})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.BudgetTransitionResponse
		test.DecodeResponse(suite.T(), &r, &response)

		require.NotNil(suite.T(), response.Data, "transition to %s did not return the budget", status)
		assert.Equal(suite.T(), status, response.Data.Status)

		require.NotNil(suite.T(), response.Validation)
		assert.True(suite.T(), response.Validation.Valid)
		assert.Empty(suite.T(), response.Validation.Errors)
	}

	// Archived budgets cannot be reopened
	r := test.Request(suite.T(), http.MethodPost, budget.Data.Links.Transition, v1.BudgetTransition{Status: types.StatusDraft})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestBudgetsTransitionReopen verifies that an approved budget can be
// reopened for editing.
func (suite *TestSuiteStandard) TestBudgetsTransitionReopen() {
	budget := createApprovableBudget(suite.T())

	r := test.Request(suite.T(), http.MethodPost, budget.Data.Links.Transition, v1.BudgetTransition{Status: types.StatusApproved})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, budget.Data.Links.Transition, v1.BudgetTransition{Status: types.StatusDraft})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetTransitionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), types.StatusDraft, response.Data.Status)

	// A reopened budget is editable again
	p := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{
		"notes": "Client asked for a second twilight shoot",
	})
	test.AssertHTTPStatus(suite.T(), &p, http.StatusOK)
}
