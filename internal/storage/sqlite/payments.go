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

// CreatePayment persists a new payment to the database.
func (s *SQLiteStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}

	var note interface{}
	if payment.Note != "" {
		note = payment.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, group_id, from_user_id, to_user_id, amount_cents, status, created_at, created_by, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID, payment.GroupID, payment.FromUserID, payment.ToUserID,
		int64(payment.Amount), string(payment.Status), payment.CreatedAt,
		payment.CreatedBy, note,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetPayment retrieves a payment by ID.
func (s *SQLiteStore) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment := &models.Payment{}
	var cents int64
	var status string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, group_id, from_user_id, to_user_id, amount_cents, status, created_at,
		        COALESCE(created_by, ''), COALESCE(note, '')
		 FROM payments WHERE id = ?`,
		paymentID,
	).Scan(&payment.ID, &payment.GroupID, &payment.FromUserID, &payment.ToUserID,
		&cents, &status, &payment.CreatedAt, &payment.CreatedBy, &payment.Note)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("payment %s: %w", paymentID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	payment.Amount = money.Amount(cents)
	payment.Status = models.PaymentStatus(status)
	return payment, nil
}

// ListPaymentsByGroup retrieves all payments of a group, newest first.
func (s *SQLiteStore) ListPaymentsByGroup(ctx context.Context, groupID string) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, from_user_id, to_user_id, amount_cents, status, created_at,
		        COALESCE(created_by, ''), COALESCE(note, '')
		 FROM payments WHERE group_id = ? ORDER BY created_at DESC, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		var cents int64
		var status string
		if err := rows.Scan(&payment.ID, &payment.GroupID, &payment.FromUserID,
			&payment.ToUserID, &cents, &status, &payment.CreatedAt,
			&payment.CreatedBy, &payment.Note); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payment.Amount = money.Amount(cents)
		payment.Status = models.PaymentStatus(status)
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}

// CompletePayment marks a pending payment as completed.
func (s *SQLiteStore) CompletePayment(ctx context.Context, paymentID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE payments SET status = ? WHERE id = ?",
		string(models.PaymentCompleted), paymentID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete payment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("payment %s: %w", paymentID, storage.ErrNotFound)
	}
	return nil
}
