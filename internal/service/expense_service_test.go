package service

import (
	"context"
	"errors"
	"testing"

	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/storage"
)

func TestAddExpense_Validation(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)
	ctx := context.Background()

	group := seedGroup(t, store, "alice", "bob")

	tests := []struct {
		name    string
		expense models.Expense
		wantErr error
	}{
		{
			name: "zero amount",
			expense: models.Expense{
				GroupID: group.ID,
				Amount:  0,
				PaidBy:  []string{"alice"},
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			expense: models.Expense{
				GroupID: group.ID,
				Amount:  -100,
				PaidBy:  []string{"alice"},
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "no participants",
			expense: models.Expense{
				GroupID: group.ID,
				Amount:  100,
			},
			wantErr: ErrNoParticipants,
		},
		{
			name: "missing group",
			expense: models.Expense{
				GroupID: "missing",
				Amount:  100,
				PaidBy:  []string{"alice"},
			},
			wantErr: storage.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddExpense(ctx, &tt.expense)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddExpense_AutoAddsParticipants(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)
	ctx := context.Background()

	group := seedGroup(t, store, "alice")

	expense := &models.Expense{
		GroupID:      group.ID,
		Description:  "Taxi",
		Amount:       2400,
		PaidBy:       []string{"alice"},
		SplitBetween: []string{"alice", "bob", "carol"},
	}
	saved, err := svc.AddExpense(ctx, expense)
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected expense ID to be set")
	}

	got, err := store.GetGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if len(got.Members) != 3 {
		t.Errorf("Members = %v, want alice, bob and carol", got.Members)
	}
}

func TestGetExpense_RequiresMembership(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)
	ctx := context.Background()

	group := seedGroup(t, store, "alice")
	expense := &models.Expense{
		GroupID: group.ID,
		Amount:  1000,
		PaidBy:  []string{"alice"},
	}
	if _, err := svc.AddExpense(ctx, expense); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	if _, err := svc.GetExpense(ctx, expense.ID, "mallory"); !errors.Is(err, ErrNotMember) {
		t.Errorf("error = %v, want ErrNotMember", err)
	}
	if _, err := svc.GetExpense(ctx, expense.ID, "alice"); err != nil {
		t.Errorf("GetExpense as member failed: %v", err)
	}
}

func TestUpdateExpense_KeepsGroup(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)
	ctx := context.Background()

	group := seedGroup(t, store, "alice", "bob")
	expense := &models.Expense{
		GroupID:      group.ID,
		Description:  "Lunch",
		Amount:       2000,
		PaidBy:       []string{"alice"},
		SplitBetween: []string{"alice", "bob"},
	}
	if _, err := svc.AddExpense(ctx, expense); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	update := &models.Expense{
		ID:           expense.ID,
		GroupID:      "should-be-ignored",
		Description:  "Brunch",
		Amount:       2600,
		PaidBy:       []string{"bob"},
		SplitBetween: []string{"alice", "bob"},
	}
	saved, err := svc.UpdateExpense(ctx, update, "alice")
	if err != nil {
		t.Fatalf("UpdateExpense failed: %v", err)
	}
	if saved.GroupID != group.ID {
		t.Errorf("GroupID = %s, want original group %s", saved.GroupID, group.ID)
	}
	if saved.Description != "Brunch" || saved.Amount != 2600 {
		t.Errorf("got %s/%d, want Brunch/2600", saved.Description, saved.Amount)
	}
}

func TestDeleteExpense(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)
	ctx := context.Background()

	group := seedGroup(t, store, "alice")
	expense := &models.Expense{GroupID: group.ID, Amount: 500, PaidBy: []string{"alice"}}
	if _, err := svc.AddExpense(ctx, expense); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	if err := svc.DeleteExpense(ctx, expense.ID, "mallory"); !errors.Is(err, ErrNotMember) {
		t.Errorf("error = %v, want ErrNotMember", err)
	}
	if err := svc.DeleteExpense(ctx, expense.ID, "alice"); err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}
	if _, err := store.GetExpense(ctx, expense.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
