package engine

import (
	"log/slog"

	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/money"
)

// AggregateBalances folds the shares of all expenses, plus completed
// payments, into one net balance per user. Positive = the group owes this
// user money, negative = this user owes the group.
//
// Payments are optional; pass nil when only expenses matter. Only payments
// with status completed affect balances. A completed payment credits the
// sender (they have already paid out) and debits the receiver.
//
// Expenses or payments with negative amounts are skipped with a warning:
// they come from bad upstream data and would break the zero-sum invariant
// if netted in. Users whose balance nets to exactly zero are omitted from
// the result.
func AggregateBalances(expenses []models.Expense, payments []models.Payment) map[string]money.Amount {
	balances := make(map[string]money.Amount)

	for _, e := range expenses {
		if e.Amount < 0 {
			slog.Warn("skipping expense with negative amount",
				"expense_id", e.ID, "amount", e.Amount)
			continue
		}
		for id, share := range ResolveShares(e) {
			balances[id] -= share
		}
	}

	for _, p := range payments {
		if p.Status != models.PaymentCompleted {
			continue
		}
		if p.Amount < 0 {
			slog.Warn("skipping payment with negative amount",
				"payment_id", p.ID, "amount", p.Amount)
			continue
		}
		balances[p.FromUserID] += p.Amount
		balances[p.ToUserID] -= p.Amount
	}

	for id, b := range balances {
		if b == 0 {
			delete(balances, id)
		}
	}

	return balances
}
