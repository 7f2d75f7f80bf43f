// Package dashboard rolls collections of budgets up into the numbers the
// dashboard shows.
//
// All functions are read-only and total: an empty input returns the zero
// valued shape of the result with every enum bucket present, so clients can
// render charts without guarding against missing keys.
package dashboard

import (
	"github.com/google/uuid"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/pricing"
	"github.com/listingspend/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MonthlySpend is the spend of all budgets created in one month.
type MonthlySpend struct {
	Month   types.Month     `json:"month" example:"2026-03"` // Month the budgets were created in
	Spend   decimal.Decimal `json:"spend" example:"2150"`    // Selected spend of all budgets of the month
	Budgets int             `json:"budgets" example:"3"`     // Number of budgets created in the month
}

// Summary are the overall numbers across all budgets.
type Summary struct {
	Budgets    int             `json:"budgets" example:"12"`      // Total number of budgets
	TotalSpend decimal.Decimal `json:"totalSpend" example:"9600"` // Selected spend across all budgets
	MeanSpend  decimal.Decimal `json:"meanSpend" example:"800"`   // Arithmetic mean spend per budget, zero without budgets
}

// spend is the selected, GST inclusive spend of a single budget.
func spend(budget models.Budget) decimal.Decimal {
	return pricing.Summarize(budget.LineItems).Total
}

// CountByStatus counts budgets per lifecycle status. Every status is
// present in the result, statuses without budgets count zero.
func CountByStatus(budgets []models.Budget) map[types.BudgetStatus]int {
	counts := make(map[types.BudgetStatus]int, len(types.BudgetStatuses()))
	for _, status := range types.BudgetStatuses() {
		counts[status] = 0
	}

	for _, budget := range budgets {
		counts[budget.Status]++
	}

	return counts
}

// SpendByCategory sums the prices of all selected line items per service
// category. Line items whose service is not in the catalogue anymore fall
// into the "other" bucket. Every category is present in the result.
func SpendByCategory(budgets []models.Budget, services []models.Service) map[types.ServiceCategory]decimal.Decimal {
	categories := make(map[uuid.UUID]types.ServiceCategory, len(services))
	for _, service := range services {
		categories[service.ID] = service.Category
	}

	spend := make(map[types.ServiceCategory]decimal.Decimal, len(types.ServiceCategories()))
	for _, category := range types.ServiceCategories() {
		spend[category] = decimal.Zero
	}

	for _, budget := range budgets {
		for _, item := range budget.LineItems {
			if !item.Selected {
				continue
			}

			category, ok := categories[item.ServiceID]
			if !ok {
				category = types.CategoryOther
			}

			spend[category] = spend[category].Add(pricing.LineItemPrice(item))
		}
	}

	return spend
}

// SpendByTier sums the selected spend of each budget into the bucket of the
// budget's pricing tier. Every tier is present in the result, budgets
// without a tier are skipped.
func SpendByTier(budgets []models.Budget) map[types.PricingTier]decimal.Decimal {
	spendByTier := make(map[types.PricingTier]decimal.Decimal, len(types.PricingTiers()))
	for _, tier := range types.PricingTiers() {
		spendByTier[tier] = decimal.Zero
	}

	for _, budget := range budgets {
		if budget.Tier == "" {
			continue
		}

		spendByTier[budget.Tier] = spendByTier[budget.Tier].Add(spend(budget))
	}

	return spendByTier
}

// MonthlyTrend buckets budgets by the month they were created in, summing
// their selected spend. The result is sorted ascending by month.
func MonthlyTrend(budgets []models.Budget) []MonthlySpend {
	buckets := make(map[string]*MonthlySpend)

	for _, budget := range budgets {
		month := types.MonthOf(budget.CreatedAt)

		bucket, ok := buckets[month.String()]
		if !ok {
			bucket = &MonthlySpend{Month: month}
			buckets[month.String()] = bucket
		}

		bucket.Spend = bucket.Spend.Add(spend(budget))
		bucket.Budgets++
	}

	// YYYY-MM sorts chronologically
	keys := maps.Keys(buckets)
	slices.Sort(keys)

	trend := make([]MonthlySpend, 0, len(keys))
	for _, key := range keys {
		trend = append(trend, *buckets[key])
	}

	return trend
}

// Summarize computes the overall spend numbers. The mean is zero when there
// are no budgets.
func Summarize(budgets []models.Budget) Summary {
	summary := Summary{Budgets: len(budgets)}

	for _, budget := range budgets {
		summary.TotalSpend = summary.TotalSpend.Add(spend(budget))
	}

	if summary.Budgets > 0 {
		summary.MeanSpend = summary.TotalSpend.Div(decimal.NewFromInt(int64(summary.Budgets)))
	}

	return summary
}
