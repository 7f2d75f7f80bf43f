package lifecycle

import (
	"errors"
	"time"

	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
)

// ErrTransitionNotAllowed is returned when the requested edge does not
// exist in the transition table.
var ErrTransitionNotAllowed = errors.New("this status transition is not allowed")

type edge struct {
	from types.BudgetStatus
	to   types.BudgetStatus
}

// transitions is the table of legal status transitions. The validator of an
// edge guards its admission, edges with a nil validator are admitted
// unconditionally.
//
// Budgets move forward draft -> approved -> sent -> archived. The only
// reverse edge is approved -> draft, which reopens a budget for editing.
var transitions = map[edge]func(models.Budget) Result{
	{types.StatusDraft, types.StatusApproved}: ValidateForApproval,
	{types.StatusApproved, types.StatusSent}:  nil,
	{types.StatusSent, types.StatusArchived}:  nil,
	{types.StatusApproved, types.StatusDraft}: nil,
}

// Allowed reports whether the transition between the two statuses exists in
// the transition table.
func Allowed(from, to types.BudgetStatus) bool {
	_, ok := transitions[edge{from, to}]
	return ok
}

// ValidateTransition evaluates the rules guarding a legal transition.
//
// Only draft -> approved runs the full approval validation, every other
// legal edge is admitted unconditionally. Callers reject illegal edges via
// Allowed before validating, for unknown edges this returns a valid result.
func ValidateTransition(budget models.Budget, from, to types.BudgetStatus) Result {
	validate, ok := transitions[edge{from, to}]
	if !ok || validate == nil {
		return valid()
	}

	return validate(budget)
}

// Apply transitions a budget to a new status.
//
// Illegal edges return ErrTransitionNotAllowed, legal ones return the
// validation result. The budget is mutated when the transition is admitted:
// the status changes and UpdatedAt is refreshed, nothing else.
func Apply(budget *models.Budget, to types.BudgetStatus) (Result, error) {
	if !Allowed(budget.Status, to) {
		return Result{}, ErrTransitionNotAllowed
	}

	result := ValidateTransition(*budget, budget.Status, to)
	if !result.Valid {
		return result, nil
	}

	budget.Status = to
	budget.UpdatedAt = time.Now()

	return result, nil
}
