// Package lifecycle gates budgets through their status transitions.
//
// It owns the transition table for budget statuses and the validation rules
// that guard the approval of a draft. Validation never short-circuits, all
// violations are collected so that a user sees everything that needs fixing
// at once.
package lifecycle

import (
	"fmt"
	"strings"

	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/pricing"
)

// Rule names identifying the approval rules. They are stable API values,
// clients key help texts and form highlighting off them.
const (
	RuleAddressRequired       = "address_required"
	RuleLineItemsRequired     = "line_items_required"
	RuleSelectedItemsRequired = "selected_items_required"
	RuleItemPricesRequired    = "item_prices_required"
	RuleScheduleRequired      = "schedule_required"
)

// ValidationError is a single violated approval rule.
type ValidationError struct {
	Rule    string `json:"rule" example:"address_required"`                       // Name of the violated rule
	Message string `json:"message" example:"the budget needs a property address"` // Human readable description of the violation
}

// Result is the outcome of validating a budget.
type Result struct {
	Valid  bool              `json:"isValid" example:"false"` // Whether the budget passed all rules
	Errors []ValidationError `json:"errors"`                  // All violated rules, empty when valid
}

// valid is the result of a validation without violations.
func valid() Result {
	return Result{Valid: true, Errors: make([]ValidationError, 0)}
}

// ValidateForApproval checks whether a draft budget is complete enough to
// be approved. Every rule is evaluated independently and all violations are
// returned.
func ValidateForApproval(budget models.Budget) Result {
	errs := make([]ValidationError, 0)

	if strings.TrimSpace(budget.PropertyAddress) == "" {
		errs = append(errs, ValidationError{
			Rule:    RuleAddressRequired,
			Message: "the budget needs a property address",
		})
	}

	if len(budget.LineItems) == 0 {
		errs = append(errs, ValidationError{
			Rule:    RuleLineItemsRequired,
			Message: "the budget needs at least one line item",
		})
	}

	selected := 0
	unpriced := 0
	for _, item := range budget.LineItems {
		if !item.Selected {
			continue
		}

		selected++
		if !pricing.LineItemPrice(item).IsPositive() {
			unpriced++
		}
	}

	if selected == 0 {
		errs = append(errs, ValidationError{
			Rule:    RuleSelectedItemsRequired,
			Message: "at least one line item must be selected",
		})
	}

	if unpriced > 0 {
		message := fmt.Sprintf("%d selected line items have no price", unpriced)
		if unpriced == 1 {
			message = "1 selected line item has no price"
		}

		errs = append(errs, ValidationError{
			Rule:    RuleItemPricesRequired,
			Message: message,
		})
	}

	if budget.ScheduleID == nil {
		errs = append(errs, ValidationError{
			Rule:    RuleScheduleRequired,
			Message: "the budget must be based on a schedule",
		})
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
