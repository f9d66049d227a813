package models

import "github.com/settleup/backend/internal/money"

// Expense represents a shared cost within a group.
//
// PaidBy and SplitBetween are independent sets: the people who fronted the
// money need not be the people responsible for it, and a user may appear in
// both. The storage layer deduplicates both sets on write so the engine
// never sees repeated IDs.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is a short human-readable label (e.g., "Dinner", "Gas").
	Description string

	// Amount is the total cost in minor currency units. Always positive.
	Amount money.Amount

	// PaidBy is the set of user IDs who fronted the money.
	// May be empty for imported or incomplete records.
	PaidBy []string

	// SplitBetween is the set of user IDs responsible for the cost.
	// May be empty for imported or incomplete records.
	SplitBetween []string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64

	// CreatedBy is the user ID that recorded the expense.
	CreatedBy string
}
