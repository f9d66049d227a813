package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/storage"
)

var (
	// ErrInvalidAmount is returned for zero or negative expense amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrNoParticipants is returned when an expense names nobody at all.
	ErrNoParticipants = errors.New("expense needs at least one payer or split participant")
)

// ExpenseService manages shared expenses within groups.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// AddExpense validates and persists a new expense. Anyone named in the
// expense who is not yet a group member is added automatically, so the
// settlement always covers everyone involved.
func (s *ExpenseService) AddExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if err := s.validate(ctx, expense); err != nil {
		return nil, err
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "group_id", expense.GroupID, "error", err)
		return nil, err
	}

	s.autoAddParticipants(ctx, expense)

	slog.Info("Expense added",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"amount", expense.Amount,
	)
	return s.store.GetExpense(ctx, expense.ID)
}

// GetExpense retrieves an expense; the requesting user must be in the group.
func (s *ExpenseService) GetExpense(ctx context.Context, expenseID, userID string) (*models.Expense, error) {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, expense.GroupID, userID); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses retrieves a group's expenses for one of its members.
func (s *ExpenseService) ListExpenses(ctx context.Context, groupID, userID string) ([]*models.Expense, error) {
	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.store.ListExpensesByGroup(ctx, groupID)
}

// UpdateExpense replaces an existing expense after revalidation.
func (s *ExpenseService) UpdateExpense(ctx context.Context, expense *models.Expense, userID string) (*models.Expense, error) {
	existing, err := s.store.GetExpense(ctx, expense.ID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, existing.GroupID, userID); err != nil {
		return nil, err
	}

	expense.GroupID = existing.GroupID
	if err := s.validate(ctx, expense); err != nil {
		return nil, err
	}
	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", expense.ID, "error", err)
		return nil, err
	}

	s.autoAddParticipants(ctx, expense)
	return s.store.GetExpense(ctx, expense.ID)
}

// DeleteExpense removes an expense; the acting user must be in the group.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID, userID string) error {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return err
	}
	if err := s.requireMember(ctx, expense.GroupID, userID); err != nil {
		return err
	}
	return s.store.DeleteExpense(ctx, expenseID)
}

func (s *ExpenseService) validate(ctx context.Context, expense *models.Expense) error {
	if expense.Amount <= 0 {
		return ErrInvalidAmount
	}
	if len(expense.PaidBy) == 0 && len(expense.SplitBetween) == 0 {
		return ErrNoParticipants
	}
	if expense.GroupID == "" {
		return fmt.Errorf("group_id required")
	}
	if _, err := s.store.GetGroup(ctx, expense.GroupID); err != nil {
		return err
	}
	return nil
}

func (s *ExpenseService) requireMember(ctx context.Context, groupID, userID string) error {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if !contains(group.Members, userID) {
		return ErrNotMember
	}
	return nil
}

// autoAddParticipants adds anyone named on the expense to the group.
// Failures are logged, not returned: the expense itself is already saved.
func (s *ExpenseService) autoAddParticipants(ctx context.Context, expense *models.Expense) {
	group, err := s.store.GetGroup(ctx, expense.GroupID)
	if err != nil {
		slog.Warn("autoAddParticipants: failed to get group", "group_id", expense.GroupID, "error", err)
		return
	}

	var missing []string
	for _, id := range append(append([]string{}, expense.PaidBy...), expense.SplitBetween...) {
		if !contains(group.Members, id) && !contains(missing, id) {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return
	}

	if err := s.store.AddGroupMembers(ctx, expense.GroupID, missing); err != nil {
		slog.Error("autoAddParticipants: failed to add members", "group_id", expense.GroupID, "error", err)
		return
	}
	slog.Info("Auto-added participants to group", "group_id", expense.GroupID, "new_members", missing)
}
