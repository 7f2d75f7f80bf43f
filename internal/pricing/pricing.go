// Package pricing resolves the effective price of budget line items and
// aggregates them into GST inclusive totals.
//
// All functions are pure. Catalogue lookups happen on collections the
// caller passes in, a missing service or variant resolves to a zero price
// instead of an error so that historical budgets stay usable after the
// catalogue changed.
package pricing

import (
	"github.com/listingspend/backend/internal/models"
	"github.com/shopspring/decimal"
)

// A GST inclusive price is 11 times the GST it contains at the fixed
// Australian rate of 10%.
var gstDivisor = decimal.NewFromInt(11)

// Summary contains the aggregated totals of a budget. All prices are GST
// inclusive, GST is the tax component already contained in the subtotal.
type Summary struct {
	Subtotal      decimal.Decimal `json:"subtotal" example:"500"`    // Sum of the effective prices of all selected line items
	GST           decimal.Decimal `json:"gst" example:"45.45"`       // GST component contained in the subtotal
	Total         decimal.Decimal `json:"total" example:"500"`       // Equal to the subtotal since prices are GST inclusive
	SelectedCount int             `json:"selectedCount" example:"1"` // Number of selected line items
	TotalCount    int             `json:"totalCount" example:"2"`    // Number of line items, selected or not
}

// LineItemPrice returns the effective price of a line item: the override
// price when the item is overridden, the schedule price otherwise.
func LineItemPrice(item models.BudgetLineItem) decimal.Decimal {
	if item.Overridden && item.OverridePrice != nil {
		return *item.OverridePrice
	}

	return item.SchedulePrice
}

// EffectivePrice returns the price of a line item, falling back to the
// catalogue when the item does not carry a price snapshot yet.
//
// The fallback uses the price of the item's variant, or of the variant the
// selector resolves for the given context, or the base price for services
// without variants. References that cannot be resolved price at zero.
// For items that carry a snapshot this is identical to LineItemPrice.
func EffectivePrice(item models.BudgetLineItem, service *models.Service, context VariantContext) decimal.Decimal {
	if item.Overridden && item.OverridePrice != nil {
		return *item.OverridePrice
	}

	if !item.SchedulePrice.IsZero() {
		return item.SchedulePrice
	}

	if service == nil {
		return decimal.Zero
	}

	if item.VariantID != nil {
		if variant := service.Variant(*item.VariantID); variant != nil {
			return variant.Price
		}

		return decimal.Zero
	}

	if variant := ResolveVariant(*service, context); variant != nil {
		return variant.Price
	}

	if len(service.Variants) == 0 {
		return service.BasePrice
	}

	return decimal.Zero
}

// Summarize aggregates the effective prices of all selected line items of a
// budget. Deselected items contribute nothing to the totals, but count
// towards TotalCount.
//
// The GST division keeps full precision, rounding happens at display time.
func Summarize(items []models.BudgetLineItem) Summary {
	summary := Summary{TotalCount: len(items)}

	for _, item := range items {
		if !item.Selected {
			continue
		}

		summary.Subtotal = summary.Subtotal.Add(LineItemPrice(item))
		summary.SelectedCount++
	}

	summary.GST = summary.Subtotal.Div(gstDivisor)
	summary.Total = summary.Subtotal

	return summary
}
