package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/settleup/backend/internal/engine"
	"github.com/settleup/backend/internal/metrics"
	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/money"
	"github.com/settleup/backend/internal/storage"
)

var (
	// ErrInvalidTransfer is returned when a recorded settlement does not
	// name two distinct users and a positive amount.
	ErrInvalidTransfer = errors.New("transfer needs two distinct users and a positive amount")

	// ErrNotPaymentParty is returned when someone other than the payer or
	// recipient tries to confirm a payment.
	ErrNotPaymentParty = errors.New("only the payer or recipient can confirm a payment")
)

// SettlementPlan is the full engine output for one group: the net-balance
// mapping (diagnostics) and the recommended transfers.
type SettlementPlan struct {
	Balances  []models.Balance
	Transfers []models.Transfer
}

// SettlementService runs the settlement engine over a group's stored
// expenses and payments. The service itself is stateless; every computation
// starts from a fresh snapshot.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a new SettlementService with the given
// storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// ComputeSettlement loads the group's expenses and completed payments and
// runs the full pipeline: shares -> balances -> transfers.
func (s *SettlementService) ComputeSettlement(ctx context.Context, groupID, userID string) (*SettlementPlan, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !contains(group.Members, userID) {
		return nil, ErrNotMember
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	payments, err := s.store.ListPaymentsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	timer := prometheus.NewTimer(metrics.SettlementDuration)
	balances := engine.AggregateBalances(deref(expenses), deref(payments))
	transfers := engine.PlanSettlement(balances)
	timer.ObserveDuration()
	metrics.SettlementsComputed.Inc()
	metrics.TransfersPlanned.Observe(float64(len(transfers)))

	slog.Info("Settlement computed",
		"group_id", groupID,
		"expenses_count", len(expenses),
		"payments_count", len(payments),
		"transfers_count", len(transfers),
	)

	return &SettlementPlan{
		Balances:  sortedBalances(balances),
		Transfers: transfers,
	}, nil
}

// DebtsForUser computes the plan and filters it to one user's incoming and
// outgoing transfers.
func (s *SettlementService) DebtsForUser(ctx context.Context, groupID, targetUserID, userID string) (incoming, outgoing []models.Transfer, err error) {
	plan, err := s.ComputeSettlement(ctx, groupID, userID)
	if err != nil {
		return nil, nil, err
	}
	return engine.IncomingTransfers(plan.Transfers, targetUserID),
		engine.OutgoingTransfers(plan.Transfers, targetUserID),
		nil
}

// RecordSettlement materializes an accepted transfer as a pending payment.
// The payment only affects balances once completed.
func (s *SettlementService) RecordSettlement(ctx context.Context, groupID string, transfer models.Transfer, createdBy, note string) (*models.Payment, error) {
	if transfer.From == "" || transfer.To == "" || transfer.From == transfer.To || transfer.Amount <= 0 {
		return nil, ErrInvalidTransfer
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !contains(group.Members, createdBy) {
		return nil, ErrNotMember
	}

	payment := &models.Payment{
		GroupID:    groupID,
		FromUserID: transfer.From,
		ToUserID:   transfer.To,
		Amount:     transfer.Amount,
		Status:     models.PaymentPending,
		CreatedBy:  createdBy,
		Note:       note,
	}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		slog.Error("RecordSettlement failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("Settlement recorded as payment",
		"payment_id", payment.ID,
		"group_id", groupID,
		"amount", payment.Amount,
	)
	return payment, nil
}

// ListPayments retrieves a group's payments for one of its members.
func (s *SettlementService) ListPayments(ctx context.Context, groupID, userID string) ([]*models.Payment, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !contains(group.Members, userID) {
		return nil, ErrNotMember
	}
	return s.store.ListPaymentsByGroup(ctx, groupID)
}

// CompletePayment marks a pending payment as completed so the next
// settlement computation nets it out. Only the sender or receiver may
// confirm.
func (s *SettlementService) CompletePayment(ctx context.Context, paymentID, userID string) (*models.Payment, error) {
	payment, err := s.store.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.FromUserID != userID && payment.ToUserID != userID {
		return nil, ErrNotPaymentParty
	}

	if err := s.store.CompletePayment(ctx, paymentID); err != nil {
		return nil, err
	}
	slog.Info("Payment completed", "payment_id", paymentID)
	return s.store.GetPayment(ctx, paymentID)
}

// deref flattens a slice of pointers for the engine, which works on values.
func deref[T any](items []*T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = *item
	}
	return out
}

// sortedBalances converts the balance map to a slice ordered by user ID.
func sortedBalances(balances map[string]money.Amount) []models.Balance {
	out := make([]models.Balance, 0, len(balances))
	for id, net := range balances {
		out = append(out, models.Balance{UserID: id, Net: net})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}
