package models

// Group represents a set of users who share expenses.
// Expenses and payments belong to exactly one group, and settlement is
// always computed per group.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string

	// Members is the list of user IDs in this group.
	Members []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// CreatedBy is the user ID that created the group.
	CreatedBy string
}
