package v1_test

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	v1 "github.com/listingspend/backend/internal/controllers/v1"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
	"github.com/listingspend/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboardDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestDashboardOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

// TestDashboardEmpty verifies that the dashboard renders with every enum
// bucket present even when there are no budgets at all.
func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	data := *response.Data

	assert.Equal(suite.T(), 0, data.Summary.Budgets)
	assert.True(suite.T(), data.Summary.TotalSpend.IsZero())
	assert.True(suite.T(), data.Summary.MeanSpend.IsZero(), "the mean spend of zero budgets is zero")

	require.Len(suite.T(), data.ByStatus, 4)
	for _, status := range types.BudgetStatuses() {
		assert.Equal(suite.T(), 0, data.ByStatus[status])
	}

	require.Len(suite.T(), data.SpendByCategory, len(types.ServiceCategories()))
	for _, category := range types.ServiceCategories() {
		assert.True(suite.T(), data.SpendByCategory[category].IsZero())
	}

	require.Len(suite.T(), data.SpendByTier, len(types.PricingTiers()))
	for _, tier := range types.PricingTiers() {
		assert.True(suite.T(), data.SpendByTier[tier].IsZero())
	}

	assert.NotNil(suite.T(), data.MonthlyTrend, "the trend must encode as [] and not null")
	assert.Empty(suite.T(), data.MonthlyTrend)
}

// TestDashboard verifies the rollups over a populated database.
func (suite *TestSuiteStandard) TestDashboard() {
	photography := createTestService(suite.T(), v1.ServiceEditable{
		Name:      "Professional Photography",
		Category:  types.CategoryPhotography,
		BasePrice: decimal.NewFromInt(450),
	})

	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		PropertyAddress: "12 Latrobe Terrace, Paddington",
		Tier:            types.TierPremium,
		LineItems: []models.BudgetLineItem{
			{ServiceID: photography.Data.ID, SchedulePrice: decimal.NewFromInt(450), Selected: true},
			{ServiceID: uuid.New(), SchedulePrice: decimal.NewFromInt(100)},
		},
	})

	// The service of this line item is not in the catalogue, its spend
	// lands in the "other" bucket
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		PropertyAddress: "8 Ocean St, Chermside",
		Tier:            types.TierBasic,
		LineItems: []models.BudgetLineItem{
			{ServiceID: uuid.New(), SchedulePrice: decimal.NewFromInt(99), Selected: true},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	data := *response.Data

	assert.Equal(suite.T(), 2, data.Summary.Budgets)
	assert.True(suite.T(), data.Summary.TotalSpend.Equal(decimal.NewFromInt(549)), "total spend is %s", data.Summary.TotalSpend)
	assert.True(suite.T(), data.Summary.MeanSpend.Equal(decimal.NewFromFloat(274.5)), "mean spend is %s", data.Summary.MeanSpend)

	assert.Equal(suite.T(), 2, data.ByStatus[types.StatusDraft])
	assert.Equal(suite.T(), 0, data.ByStatus[types.StatusApproved])

	assert.True(suite.T(), data.SpendByCategory[types.CategoryPhotography].Equal(decimal.NewFromInt(450)))
	assert.True(suite.T(), data.SpendByCategory[types.CategoryOther].Equal(decimal.NewFromInt(99)))
	assert.True(suite.T(), data.SpendByCategory[types.CategoryVideo].IsZero())

	assert.True(suite.T(), data.SpendByTier[types.TierPremium].Equal(decimal.NewFromInt(450)))
	assert.True(suite.T(), data.SpendByTier[types.TierBasic].Equal(decimal.NewFromInt(99)))
	assert.True(suite.T(), data.SpendByTier[types.TierStandard].IsZero())

	require.Len(suite.T(), data.MonthlyTrend, 1)
	assert.Equal(suite.T(), types.MonthOf(time.Now().UTC()).String(), data.MonthlyTrend[0].Month.String())
	assert.Equal(suite.T(), 2, data.MonthlyTrend[0].Budgets)
	assert.True(suite.T(), data.MonthlyTrend[0].Spend.Equal(decimal.NewFromInt(549)))
}
