package engine

import (
	"sort"

	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/money"
)

// Epsilon is the minimum magnitude treated as a real debt: one minor unit
// (0.01 currency units). Anything smaller is considered settled. Because
// balances are integers, residues below Epsilon can only arise from
// unbalanced input data, never from rounding.
const Epsilon money.Amount = 1

// party is one side of the settlement matching, with the magnitude still
// outstanding.
type party struct {
	user   string
	amount money.Amount
}

// PlanSettlement turns a net-balance map into an ordered list of pairwise
// transfers that drives every balance to zero.
//
// Greedy largest-first matching: debtors and creditors are each sorted
// descending by outstanding magnitude (ties broken by ascending user ID for
// reproducible output), and the largest debtor repeatedly pays the largest
// creditor min(owed, credit) until one side is exhausted. For n non-zero
// balances this emits at most n-1 transfers in O(n log n). It is a
// heuristic, not a minimum-transaction-count solver.
func PlanSettlement(balances map[string]money.Amount) []models.Transfer {
	var debtors, creditors []party
	for id, b := range balances {
		switch {
		case b <= -Epsilon:
			debtors = append(debtors, party{user: id, amount: -b})
		case b >= Epsilon:
			creditors = append(creditors, party{user: id, amount: b})
		}
	}
	sortParties(debtors)
	sortParties(creditors)

	var transfers []models.Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := &debtors[i], &creditors[j]

		amount := d.amount
		if c.amount < amount {
			amount = c.amount
		}
		if amount >= Epsilon {
			transfers = append(transfers, models.Transfer{
				From:   d.user,
				To:     c.user,
				Amount: amount,
			})
		}

		d.amount -= amount
		c.amount -= amount
		if d.amount < Epsilon {
			i++
		}
		if c.amount < Epsilon {
			j++
		}
	}

	return transfers
}

// sortParties orders by outstanding magnitude descending, then user ID
// ascending.
func sortParties(ps []party) {
	sort.Slice(ps, func(a, b int) bool {
		if ps[a].amount != ps[b].amount {
			return ps[a].amount > ps[b].amount
		}
		return ps[a].user < ps[b].user
	})
}
