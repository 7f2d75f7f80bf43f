package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Integrity violations, returned by model hooks.
var (
	ErrServiceCategoryInvalid   = errors.New("the service category is invalid")
	ErrServiceVariantsMissing   = errors.New("a service with a variant selector must have at least one variant")
	ErrSelectorChoiceInvalid    = errors.New("all variant selector choices must reference a variant of the service")
	ErrPriceNegative            = errors.New("prices must not be negative")
	ErrTierInvalid              = errors.New("the pricing tier is invalid")
	ErrPropertyTypeInvalid      = errors.New("the property type is invalid")
	ErrPropertySizeInvalid      = errors.New("the property size is invalid")
	ErrBudgetStatusInvalid      = errors.New("the budget status is invalid")
	ErrLineItemServiceIDMissing = errors.New("every line item must reference a service")
	ErrLineItemPriceNegative    = errors.New("line item prices must not be negative")
)
