package models

import "github.com/settleup/backend/internal/money"

// Transfer is a recommended payment from a debtor to a creditor that drives
// both balances toward zero. Transfers are engine output only: they are
// never persisted, and a caller that wants to record one as accepted does so
// by creating a Payment.
type Transfer struct {
	// From is the user ID who owes (net debtor).
	From string

	// To is the user ID who is owed (net creditor).
	To string

	// Amount is the recommended payment in minor currency units. Always positive.
	Amount money.Amount
}

// Balance is one user's net position across a group.
// Positive = the group owes this user money; negative = this user owes the
// group. Like Transfer, it is recomputed on every request and never stored.
type Balance struct {
	UserID string
	Net    money.Amount
}
