package server

import (
	"net/http"

	"github.com/settleup/backend/internal/middleware"
	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/service"
)

type balanceEntry struct {
	UserID string `json:"user_id"`
	Net    string `json:"net"`
}

type transferEntry struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type settlementResponse struct {
	GroupID   string          `json:"group_id"`
	Balances  []balanceEntry  `json:"balances"`
	Transfers []transferEntry `json:"transfers"`
}

func toTransferEntries(transfers []models.Transfer) []transferEntry {
	out := make([]transferEntry, len(transfers))
	for i, t := range transfers {
		out[i] = transferEntry{From: t.From, To: t.To, Amount: t.Amount.String()}
	}
	return out
}

func toSettlementResponse(groupID string, plan *service.SettlementPlan) settlementResponse {
	balances := make([]balanceEntry, len(plan.Balances))
	for i, b := range plan.Balances {
		balances[i] = balanceEntry{UserID: b.UserID, Net: b.Net.String()}
	}
	return settlementResponse{
		GroupID:   groupID,
		Balances:  balances,
		Transfers: toTransferEntries(plan.Transfers),
	}
}

func (s *Server) handleSettlement(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	plan, err := s.settlementSvc.ComputeSettlement(r.Context(), groupID, middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettlementResponse(groupID, plan))
}

func (s *Server) handleUserDebts(w http.ResponseWriter, r *http.Request) {
	incoming, outgoing, err := s.settlementSvc.DebtsForUser(
		r.Context(),
		r.PathValue("id"),
		r.PathValue("userID"),
		middleware.GetUserID(r.Context()),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":  r.PathValue("userID"),
		"incoming": toTransferEntries(incoming),
		"outgoing": toTransferEntries(outgoing),
	})
}
