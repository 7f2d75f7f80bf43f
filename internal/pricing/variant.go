package pricing

import (
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
)

// VariantContext carries the values a variant selector can inspect.
// Currently the only supported dimension is the property size of the
// budget.
type VariantContext struct {
	PropertySize types.PropertySize
}

// ResolveVariant picks the variant of a service for the given context.
//
// It returns nil when the service has no selector with choices, when the
// selector inspects an unknown dimension or when the context value has no
// mapping. Callers treat nil as "no price available", never as an error.
func ResolveVariant(service models.Service, context VariantContext) *models.Variant {
	if service.Selector == nil || len(service.Selector.Choices) == 0 {
		return nil
	}

	var value string
	switch service.Selector.By {
	case models.SelectByPropertySize:
		value = string(context.PropertySize)
	default:
		return nil
	}

	id, ok := service.Selector.Choices[value]
	if !ok {
		return nil
	}

	return service.Variant(id)
}

// HasSelectableVariants reports whether the variant of this service is
// picked by the user. This is the case when the service has variants and no
// selector with choices resolves them automatically.
func HasSelectableVariants(service models.Service) bool {
	if len(service.Variants) == 0 {
		return false
	}

	return service.Selector == nil || len(service.Selector.Choices) == 0
}

// HasAutoVariants reports whether the variant of this service is resolved
// automatically from the selection context.
func HasAutoVariants(service models.Service) bool {
	return service.Selector != nil && len(service.Selector.Choices) > 0
}
