package engine

import (
	"testing"

	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/money"
)

func TestAggregateBalances(t *testing.T) {
	tests := []struct {
		name     string
		expenses []models.Expense
		payments []models.Payment
		want     map[string]money.Amount
	}{
		{
			name:     "empty inputs give empty map",
			expenses: nil,
			payments: nil,
			want:     map[string]money.Amount{},
		},
		{
			name: "scenario A: single payer, equal split",
			expenses: []models.Expense{
				{Amount: 30000, PaidBy: []string{"alice"}, SplitBetween: []string{"alice", "bob", "carol"}},
			},
			want: map[string]money.Amount{
				"alice": 20000,
				"bob":   -10000,
				"carol": -10000,
			},
		},
		{
			name: "scenario B: multi-payer",
			expenses: []models.Expense{
				{Amount: 9000, PaidBy: []string{"alice", "bob"}, SplitBetween: []string{"alice", "bob", "carol"}},
			},
			want: map[string]money.Amount{
				"alice": 1500,
				"bob":   1500,
				"carol": -3000,
			},
		},
		{
			name: "scenario C: completed payment reduces debt",
			expenses: []models.Expense{
				{Amount: 30000, PaidBy: []string{"alice"}, SplitBetween: []string{"alice", "bob", "carol"}},
			},
			payments: []models.Payment{
				{FromUserID: "bob", ToUserID: "alice", Amount: 10000, Status: models.PaymentCompleted},
			},
			want: map[string]money.Amount{
				"alice": 10000,
				"carol": -10000,
				// bob nets to zero and is omitted
			},
		},
		{
			name: "pending payments are ignored",
			expenses: []models.Expense{
				{Amount: 30000, PaidBy: []string{"alice"}, SplitBetween: []string{"alice", "bob", "carol"}},
			},
			payments: []models.Payment{
				{FromUserID: "bob", ToUserID: "alice", Amount: 10000, Status: models.PaymentPending},
			},
			want: map[string]money.Amount{
				"alice": 20000,
				"bob":   -10000,
				"carol": -10000,
			},
		},
		{
			name: "negative amounts are excluded",
			expenses: []models.Expense{
				{ID: "bad", Amount: -5000, PaidBy: []string{"alice"}, SplitBetween: []string{"bob"}},
				{Amount: 2000, PaidBy: []string{"alice"}, SplitBetween: []string{"bob"}},
			},
			payments: []models.Payment{
				{ID: "bad", FromUserID: "bob", ToUserID: "alice", Amount: -100, Status: models.PaymentCompleted},
			},
			want: map[string]money.Amount{
				"alice": 2000,
				"bob":   -2000,
			},
		},
		{
			name: "expenses accumulate across the group",
			expenses: []models.Expense{
				{Amount: 30000, PaidBy: []string{"alice"}, SplitBetween: []string{"alice", "bob", "carol"}},
				{Amount: 9000, PaidBy: []string{"bob"}, SplitBetween: []string{"alice", "bob", "carol"}},
			},
			want: map[string]money.Amount{
				"alice": 17000,
				"bob":   -4000,
				"carol": -13000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateBalances(tt.expenses, tt.payments)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d balances, want %d: %v", len(got), len(tt.want), got)
			}
			for id, want := range tt.want {
				if got[id] != want {
					t.Errorf("balance[%s] = %d, want %d", id, got[id], want)
				}
			}
		})
	}
}

func TestAggregateBalances_ZeroSum(t *testing.T) {
	// For any closed input set the balances must sum to zero exactly: every
	// debited minor unit is credited to a payer, and every payment moves
	// value between two members.
	expenses := []models.Expense{
		{Amount: 10000, PaidBy: []string{"a"}, SplitBetween: []string{"a", "b", "c"}},
		{Amount: 7777, PaidBy: []string{"b", "c"}, SplitBetween: []string{"a", "d"}},
		{Amount: 1, PaidBy: []string{"d"}, SplitBetween: []string{"a", "b", "c", "d"}},
		{Amount: 99999, PaidBy: []string{"c"}, SplitBetween: []string{"a", "b"}},
	}
	payments := []models.Payment{
		{FromUserID: "a", ToUserID: "c", Amount: 1234, Status: models.PaymentCompleted},
		{FromUserID: "b", ToUserID: "d", Amount: 55, Status: models.PaymentCompleted},
		{FromUserID: "d", ToUserID: "a", Amount: 999, Status: models.PaymentPending},
	}

	var sum money.Amount
	for _, b := range AggregateBalances(expenses, payments) {
		sum += b
	}
	if sum != 0 {
		t.Errorf("balances sum to %d, want 0", sum)
	}
}

func TestAggregateBalances_OrderIndependent(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 10000, PaidBy: []string{"a"}, SplitBetween: []string{"a", "b", "c"}},
		{Amount: 7777, PaidBy: []string{"b"}, SplitBetween: []string{"a", "c"}},
		{Amount: 355, PaidBy: []string{"c"}, SplitBetween: []string{"a", "b", "c"}},
	}
	reversed := []models.Expense{expenses[2], expenses[1], expenses[0]}

	forward := AggregateBalances(expenses, nil)
	backward := AggregateBalances(reversed, nil)

	if len(forward) != len(backward) {
		t.Fatalf("balance counts differ: %d vs %d", len(forward), len(backward))
	}
	for id, b := range forward {
		if backward[id] != b {
			t.Errorf("balance[%s] differs by order: %d vs %d", id, b, backward[id])
		}
	}
}
