package server

import (
	"net/http"

	"github.com/settleup/backend/internal/middleware"
	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/money"
)

// Amounts cross the wire as decimal strings ("12.34") and are converted to
// minor units at this boundary; nothing past the handlers touches floats.
type expenseRequest struct {
	Description  string   `json:"description"`
	Amount       string   `json:"amount"`
	PaidBy       []string `json:"paid_by"`
	SplitBetween []string `json:"split_between"`
}

type expenseResponse struct {
	ID           string   `json:"id"`
	GroupID      string   `json:"group_id"`
	Description  string   `json:"description"`
	Amount       string   `json:"amount"`
	PaidBy       []string `json:"paid_by"`
	SplitBetween []string `json:"split_between"`
	CreatedAt    int64    `json:"created_at"`
	CreatedBy    string   `json:"created_by"`
}

func toExpenseResponse(e *models.Expense) expenseResponse {
	paidBy, splitBetween := e.PaidBy, e.SplitBetween
	if paidBy == nil {
		paidBy = []string{}
	}
	if splitBetween == nil {
		splitBetween = []string{}
	}
	return expenseResponse{
		ID:           e.ID,
		GroupID:      e.GroupID,
		Description:  e.Description,
		Amount:       e.Amount.String(),
		PaidBy:       paidBy,
		SplitBetween: splitBetween,
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
	}
}

func (req *expenseRequest) toModel(groupID, createdBy string) (*models.Expense, error) {
	amount, err := money.Parse(req.Amount)
	if err != nil {
		return nil, err
	}
	return &models.Expense{
		GroupID:      groupID,
		Description:  req.Description,
		Amount:       amount,
		PaidBy:       req.PaidBy,
		SplitBetween: req.SplitBetween,
		CreatedBy:    createdBy,
	}, nil
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	userID := middleware.GetUserID(r.Context())
	expense, err := req.toModel(r.PathValue("id"), userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := s.expenseSvc.AddExpense(r.Context(), expense)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseResponse(created))
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenseSvc.ListExpenses(r.Context(), r.PathValue("id"), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseResponse(e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"expenses": out})
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	userID := middleware.GetUserID(r.Context())
	expense, err := req.toModel("", userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	expense.ID = r.PathValue("id")

	updated, err := s.expenseSvc.UpdateExpense(r.Context(), expense, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseResponse(updated))
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.expenseSvc.DeleteExpense(r.Context(), r.PathValue("id"), middleware.GetUserID(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
