package models

import "github.com/settleup/backend/internal/money"

// PaymentStatus tracks whether a payment has actually happened.
type PaymentStatus string

const (
	// PaymentPending means the payment was recorded but not yet confirmed.
	// Pending payments do not affect balances.
	PaymentPending PaymentStatus = "pending"

	// PaymentCompleted means the money changed hands. Completed payments
	// are netted into balances on the next settlement computation.
	PaymentCompleted PaymentStatus = "completed"
)

// Payment represents money moved between two group members to clear debt.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// GroupID is the group this payment belongs to.
	GroupID string

	// FromUserID is the user who paid (debtor settling up).
	FromUserID string

	// ToUserID is the user who received payment (creditor being paid).
	ToUserID string

	// Amount is the payment amount in minor currency units. Always positive.
	Amount money.Amount

	// Status is pending until the recipient confirms receipt.
	Status PaymentStatus

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64

	// CreatedBy is the user ID that recorded the payment.
	CreatedBy string

	// Note is an optional description for the payment.
	Note string
}
