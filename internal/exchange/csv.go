package exchange

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/pricing"
)

// BudgetListCSV renders one row per budget with its aggregated totals.
// Currency values carry exactly two decimal places.
func BudgetListCSV(budgets []models.Budget) ([]byte, error) {
	rows := make([][]string, 0, len(budgets)+1)
	rows = append(rows, []string{
		"Property Address", "Property Type", "Property Size", "Tier", "Status",
		"Client", "Agent", "Selected Items", "Total Items", "Subtotal", "GST", "Total", "Created At",
	})

	for _, budget := range budgets {
		summary := pricing.Summarize(budget.LineItems)

		rows = append(rows, []string{
			budget.PropertyAddress,
			string(budget.PropertyType),
			string(budget.PropertySize),
			string(budget.Tier),
			string(budget.Status),
			budget.ClientName,
			budget.AgentName,
			strconv.Itoa(summary.SelectedCount),
			strconv.Itoa(summary.TotalCount),
			summary.Subtotal.StringFixed(2),
			summary.GST.StringFixed(2),
			summary.Total.StringFixed(2),
			budget.CreatedAt.Format(time.RFC3339),
		})
	}

	return renderCSV(rows)
}

// BudgetLineItemsCSV renders one row per line item of a budget. The
// override price column is empty for items without an override.
func BudgetLineItemsCSV(budget models.Budget) ([]byte, error) {
	rows := make([][]string, 0, len(budget.LineItems)+1)
	rows = append(rows, []string{
		"Service", "Variant", "Selected", "Schedule Price", "Override Price", "Effective Price",
	})

	for _, item := range budget.LineItems {
		override := ""
		if item.OverridePrice != nil {
			override = item.OverridePrice.StringFixed(2)
		}

		rows = append(rows, []string{
			item.ServiceName,
			item.VariantName,
			strconv.FormatBool(item.Selected),
			item.SchedulePrice.StringFixed(2),
			override,
			pricing.LineItemPrice(item).StringFixed(2),
		})
	}

	return renderCSV(rows)
}

// renderCSV writes rows as RFC 4180 CSV. Fields are quoted where needed
// and records end with "\n".
func renderCSV(rows [][]string) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
