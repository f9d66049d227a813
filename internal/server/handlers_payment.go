package server

import (
	"net/http"

	"github.com/settleup/backend/internal/middleware"
	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/money"
)

type paymentRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
	Note   string `json:"note"`
}

type paymentResponse struct {
	ID        string `json:"id"`
	GroupID   string `json:"group_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
	Note      string `json:"note,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

func toPaymentResponse(p *models.Payment) paymentResponse {
	return paymentResponse{
		ID:        p.ID,
		GroupID:   p.GroupID,
		From:      p.FromUserID,
		To:        p.ToUserID,
		Amount:    p.Amount.String(),
		Status:    string(p.Status),
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
}

func (s *Server) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	payment, err := s.settlementSvc.RecordSettlement(
		r.Context(),
		r.PathValue("id"),
		models.Transfer{From: req.From, To: req.To, Amount: amount},
		middleware.GetUserID(r.Context()),
		req.Note,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentResponse(payment))
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.settlementSvc.ListPayments(r.Context(), r.PathValue("id"), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]paymentResponse, len(payments))
	for i, p := range payments {
		out[i] = toPaymentResponse(p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"payments": out})
}

func (s *Server) handleCompletePayment(w http.ResponseWriter, r *http.Request) {
	payment, err := s.settlementSvc.CompletePayment(r.Context(), r.PathValue("id"), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}
