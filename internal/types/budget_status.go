package types

import (
	"errors"
	"fmt"
)

// ErrInvalidBudgetStatus occurs when a string does not name a budget status.
var ErrInvalidBudgetStatus = errors.New("not a valid budget status")

// BudgetStatus is the position of a budget in its lifecycle.
//
// swagger:enum BudgetStatus
type BudgetStatus string

const (
	StatusDraft    BudgetStatus = "draft"
	StatusApproved BudgetStatus = "approved"
	StatusSent     BudgetStatus = "sent"
	StatusArchived BudgetStatus = "archived"
)

// BudgetStatuses returns all statuses in lifecycle order.
func BudgetStatuses() []BudgetStatus {
	return []BudgetStatus{StatusDraft, StatusApproved, StatusSent, StatusArchived}
}

// ParseBudgetStatus parses the string representation of a budget status.
func ParseBudgetStatus(s string) (BudgetStatus, error) {
	status := BudgetStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBudgetStatus, s)
	}

	return status, nil
}

// Valid reports whether the status is one of the defined lifecycle statuses.
func (s BudgetStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusApproved, StatusSent, StatusArchived:
		return true
	}

	return false
}
