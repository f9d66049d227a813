package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/money"
	"github.com/settleup/backend/internal/storage"
)

// CreateExpense persists a new expense with its payer and split sets.
// The INSERT OR IGNORE on the set tables deduplicates participant IDs, so
// the settlement engine never sees repeated users.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, description, amount_cents, created_at, created_by)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.Description, int64(expense.Amount),
		expense.CreatedAt, expense.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertExpenseSets(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID, including payer and split sets.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	var cents int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, group_id, description, amount_cents, created_at, COALESCE(created_by, '')
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.GroupID, &expense.Description, &cents,
		&expense.CreatedAt, &expense.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	expense.Amount = money.Amount(cents)

	if err := s.loadExpenseSets(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpensesByGroup retrieves all expenses of a group, newest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, description, amount_cents, created_at, COALESCE(created_by, '')
		 FROM expenses WHERE group_id = ? ORDER BY created_at DESC, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var cents int64
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.Description,
			&cents, &expense.CreatedAt, &expense.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount = money.Amount(cents)
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		if err := s.loadExpenseSets(ctx, expense); err != nil {
			return nil, err
		}
	}
	return expenses, nil
}

// UpdateExpense replaces an expense and its participant sets.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE expenses SET description = ?, amount_cents = ? WHERE id = ?",
		expense.Description, int64(expense.Amount), expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("expense %s: %w", expense.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_payers WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear expense payers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear expense splits: %w", err)
	}
	if err := insertExpenseSets(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense; its sets cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	return nil
}

func insertExpenseSets(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	for _, userID := range expense.PaidBy {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO expense_payers (expense_id, user_id) VALUES (?, ?)",
			expense.ID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense payer: %w", err)
		}
	}
	for _, userID := range expense.SplitBetween {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO expense_splits (expense_id, user_id) VALUES (?, ?)",
			expense.ID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadExpenseSets(ctx context.Context, expense *models.Expense) error {
	payers, err := s.expenseSet(ctx, "expense_payers", expense.ID)
	if err != nil {
		return err
	}
	splits, err := s.expenseSet(ctx, "expense_splits", expense.ID)
	if err != nil {
		return err
	}
	expense.PaidBy = payers
	expense.SplitBetween = splits
	return nil
}

func (s *SQLiteStore) expenseSet(ctx context.Context, table, expenseID string) ([]string, error) {
	query := fmt.Sprintf(
		"SELECT user_id FROM %s WHERE expense_id = ? ORDER BY user_id", table)
	rows, err := s.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", table, err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", table, err)
	}
	return userIDs, nil
}
