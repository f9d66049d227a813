// Package server exposes the application services over JSON/HTTP.
package server

import (
	"net/http"

	"github.com/settleup/backend/internal/auth"
	"github.com/settleup/backend/internal/metrics"
	"github.com/settleup/backend/internal/middleware"
	"github.com/settleup/backend/internal/service"
)

// Server wires the application services to HTTP routes.
type Server struct {
	authSvc       *service.AuthService
	groupSvc      *service.GroupService
	expenseSvc    *service.ExpenseService
	settlementSvc *service.SettlementService
	tokens        *auth.JWTManager
}

// New creates a Server over the given services.
func New(
	authSvc *service.AuthService,
	groupSvc *service.GroupService,
	expenseSvc *service.ExpenseService,
	settlementSvc *service.SettlementService,
	tokens *auth.JWTManager,
) *Server {
	return &Server{
		authSvc:       authSvc,
		groupSvc:      groupSvc,
		expenseSvc:    expenseSvc,
		settlementSvc: settlementSvc,
		tokens:        tokens,
	}
}

// Handler builds the full HTTP handler: routes wrapped in the middleware
// chain (metrics outermost so it observes everything, then logging, CORS
// and per-route auth).
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", metrics.Handler())

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	authed := http.NewServeMux()
	authed.HandleFunc("POST /api/groups", s.handleCreateGroup)
	authed.HandleFunc("GET /api/groups", s.handleListGroups)
	authed.HandleFunc("GET /api/groups/{id}", s.handleGetGroup)
	authed.HandleFunc("PUT /api/groups/{id}", s.handleUpdateGroup)
	authed.HandleFunc("DELETE /api/groups/{id}", s.handleDeleteGroup)

	authed.HandleFunc("POST /api/groups/{id}/expenses", s.handleAddExpense)
	authed.HandleFunc("GET /api/groups/{id}/expenses", s.handleListExpenses)
	authed.HandleFunc("PUT /api/expenses/{id}", s.handleUpdateExpense)
	authed.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)

	authed.HandleFunc("POST /api/groups/{id}/payments", s.handleRecordPayment)
	authed.HandleFunc("GET /api/groups/{id}/payments", s.handleListPayments)
	authed.HandleFunc("POST /api/payments/{id}/complete", s.handleCompletePayment)

	authed.HandleFunc("GET /api/groups/{id}/settlement", s.handleSettlement)
	authed.HandleFunc("GET /api/groups/{id}/debts/{userID}", s.handleUserDebts)

	mux.Handle("/api/", middleware.RequireAuth(s.tokens)(authed))

	return middleware.Metrics(middleware.RequestLogger(middleware.CORS(mux)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
