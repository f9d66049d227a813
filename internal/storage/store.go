// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/settleup/backend/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
// Implementations wrap it with the record's kind and ID.
var ErrNotFound = errors.New("not found")

// Store defines the interface for SettleUp storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateGroup persists a new group. The group's ID and CreatedAt fields
	// are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its members.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups the given user is a member of.
	ListGroups(ctx context.Context, userID string) ([]*models.Group, error)

	// UpdateGroup replaces a group's name and member list.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// DeleteGroup removes a group and everything that belongs to it.
	DeleteGroup(ctx context.Context, groupID string) error

	// AddGroupMembers adds the given user IDs to a group, ignoring those
	// already present.
	AddGroupMembers(ctx context.Context, groupID string, userIDs []string) error

	// CreateExpense persists a new expense. ID and CreatedAt are populated
	// by the store; payer and split sets are deduplicated on write.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense with its payer and split sets.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByGroup retrieves all expenses of a group, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// UpdateExpense replaces an existing expense.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreatePayment persists a new payment. ID and CreatedAt are populated
	// by the store.
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// GetPayment retrieves a payment by ID.
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)

	// ListPaymentsByGroup retrieves all payments of a group, newest first.
	ListPaymentsByGroup(ctx context.Context, groupID string) ([]*models.Payment, error)

	// CompletePayment marks a pending payment as completed.
	CompletePayment(ctx context.Context, paymentID string) error

	// Close releases any resources held by the store.
	Close() error
}
