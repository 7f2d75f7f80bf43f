package pricing

import (
	"github.com/google/uuid"
	"github.com/listingspend/backend/internal/models"
)

// SeedLineItems builds the initial line items of a budget from a schedule.
//
// Every template item becomes one line item with the service name and price
// snapshotted from the catalogue. The variant is the template default or,
// when the template has none, the one the service selector resolves for the
// given context. Template items whose service or variant no longer exists
// are kept with a zero price so that the schedule stays usable while the
// catalogue drifts.
func SeedLineItems(schedule models.Schedule, services []models.Service, context VariantContext) []models.BudgetLineItem {
	items := make([]models.BudgetLineItem, 0, len(schedule.LineItems))

	for _, template := range schedule.LineItems {
		item := models.BudgetLineItem{
			ServiceID: template.ServiceID,
			VariantID: template.VariantID,
			Selected:  template.Selected,
		}

		service := serviceByID(services, template.ServiceID)
		if service == nil {
			items = append(items, item)
			continue
		}

		item.ServiceName = service.Name

		var variant *models.Variant
		if template.VariantID != nil {
			variant = service.Variant(*template.VariantID)
		} else {
			variant = ResolveVariant(*service, context)
		}

		if variant != nil {
			id := variant.ID
			item.VariantID = &id
			item.VariantName = variant.Name
			item.SchedulePrice = variant.Price
		} else if template.VariantID == nil && len(service.Variants) == 0 {
			item.SchedulePrice = service.BasePrice
		}

		items = append(items, item)
	}

	return items
}

func serviceByID(services []models.Service, id uuid.UUID) *models.Service {
	for i := range services {
		if services[i].ID == id {
			return &services[i]
		}
	}

	return nil
}
