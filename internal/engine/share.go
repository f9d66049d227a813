// Package engine computes group debt settlement: per-expense shares, net
// balances across expenses and payments, and a greedy settlement plan.
//
// Every function is pure: the engine holds no state, performs no I/O, and
// never mutates its inputs, so callers may run it concurrently (e.g., once
// per group) without synchronization. All arithmetic is on integer minor
// currency units, which keeps balance sums exact regardless of iteration
// order.
package engine

import (
	"sort"

	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/money"
)

// ResolveShares computes each involved user's signed contribution for one
// expense: positive = this expense increases what the user owes, negative =
// it increases what the user is owed.
//
// Each member of SplitBetween is debited an equal part of the amount; each
// member of PaidBy is credited an equal part. A user present in both sets
// gets the algebraic sum. An empty set contributes nothing for its side, so
// no division by zero can occur.
//
// Integer division cannot always be exact, so the remainder is spread one
// minor unit at a time over the members in ascending ID order. The debits
// therefore always sum to exactly the amount, and likewise the credits,
// which is what keeps the aggregate balance zero-sum.
func ResolveShares(e models.Expense) map[string]money.Amount {
	shares := make(map[string]money.Amount, len(e.PaidBy)+len(e.SplitBetween))

	if members := sortedUnique(e.SplitBetween); len(members) > 0 {
		parts := money.Split(e.Amount, len(members))
		for i, id := range members {
			shares[id] += parts[i]
		}
	}

	if payers := sortedUnique(e.PaidBy); len(payers) > 0 {
		parts := money.Split(e.Amount, len(payers))
		for i, id := range payers {
			shares[id] -= parts[i]
		}
	}

	return shares
}

// sortedUnique returns the distinct IDs in ascending order.
// Upstream layers already deduplicate participant sets; sorting here is what
// makes remainder distribution deterministic.
func sortedUnique(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	n := 0
	for i, id := range out {
		if i == 0 || id != out[i-1] {
			out[n] = id
			n++
		}
	}
	return out[:n]
}
