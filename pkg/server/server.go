package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"fabu/pkg/models"
	"fabu/pkg/service"
)

// Server is a thin local facade over the remote budget store. Listings and
// mutations pass through the service layer, so every budget that leaves this
// server is normalized and paired with a locally recomputed summary.
type Server struct {
	service  *service.Service
	logger   *log.Logger
	mux      *http.ServeMux
	template *template.Template
}

// New creates a server using the default template location.
func New(svc *service.Service, logger *log.Logger) *Server {
	return NewWithTemplates(svc, logger, "templates/*.html")
}

// NewWithTemplates creates a server with an explicit template glob.
func NewWithTemplates(svc *service.Service, logger *log.Logger, glob string) *Server {
	tmpl := template.Must(template.ParseGlob(glob))
	return &Server{
		service:  svc,
		logger:   logger,
		mux:      http.NewServeMux(),
		template: tmpl,
	}
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	s.setupRoutes()
	return http.ListenAndServe(addr, s.mux)
}

// Handler returns the routed mux without binding a listener.
func (s *Server) Handler() http.Handler {
	s.setupRoutes()
	return s.mux
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/", s.withLogging(s.handleHome))
	s.mux.HandleFunc("/api/budgets", s.withLogging(s.handleBudgets))
	s.mux.HandleFunc("/api/budgets/", s.withLogging(s.handleBudgetSubtree))
}

// ---------------- dashboard ----------------

type categoryRow struct {
	Category string
	Amount   float64
}

type dashboardData struct {
	Title         string
	PlannedIncome float64
	Summary       models.BudgetSummary
	Categories    []categoryRow
	Items         []models.BudgetItem
	Empty         bool
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.respondError(w, r, http.StatusNotFound, "not found", nil)
		return
	}

	overview, err := s.service.Overview(r.Context(), time.Now())
	if errors.Is(err, service.ErrNoBudgets) {
		if err := s.template.ExecuteTemplate(w, "index.html", dashboardData{Empty: true}); err != nil {
			s.respondError(w, r, http.StatusInternalServerError, "failed to render page", err)
		}
		return
	}
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to fetch budgets", err)
		return
	}

	categories := make([]categoryRow, 0, len(overview.Summary.ExpensesByCategory))
	for category, amount := range overview.Summary.ExpensesByCategory {
		categories = append(categories, categoryRow{Category: category, Amount: amount})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Amount > categories[j].Amount })

	data := dashboardData{
		Title:         fmt.Sprintf("Budget for %s %d", time.Month(overview.Current.Month), overview.Current.Year),
		PlannedIncome: overview.Current.Income,
		Summary:       overview.Summary,
		Categories:    categories,
		Items:         overview.Current.Items,
	}
	if err := s.template.ExecuteTemplate(w, "index.html", data); err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to render page", err)
	}
}

// ---------------- budget collection ----------------

func (s *Server) handleBudgets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		budgets, err := s.service.Budgets(r.Context())
		if err != nil {
			s.respondError(w, r, http.StatusBadGateway, "failed to fetch budgets", err)
			return
		}
		s.respond(w, map[string]any{"status": "success", "budgets": budgets})

	case http.MethodPost:
		var b models.Budget
		if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
			s.respondError(w, r, http.StatusBadRequest, "invalid budget payload", err)
			return
		}
		view, err := s.service.CreateBudget(r.Context(), b)
		if err != nil {
			s.respondMutationError(w, r, "failed to create budget", err)
			return
		}
		s.respond(w, map[string]any{"status": "success", "budget": view.Budget, "summary": view.Summary})

	default:
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
	}
}

// handleBudgetSubtree routes /api/budgets/{id}[/summary|/items[/{itemID}]].
func (s *Server) handleBudgetSubtree(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/budgets/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		s.respondError(w, r, http.StatusBadRequest, "budget_id required", nil)
		return
	}
	budgetID := parts[0]

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		view, err := s.service.Budget(r.Context(), budgetID)
		if err != nil {
			s.respondMutationError(w, r, "failed to fetch budget", err)
			return
		}
		s.respond(w, map[string]any{"status": "success", "budget": view.Budget, "summary": view.Summary})

	case len(parts) == 1 && r.Method == http.MethodDelete:
		if err := s.service.DeleteBudget(r.Context(), budgetID); err != nil {
			s.respondMutationError(w, r, "failed to delete budget", err)
			return
		}
		s.respond(w, map[string]any{"status": "deleted"})

	case len(parts) == 2 && parts[1] == "summary" && r.Method == http.MethodGet:
		view, err := s.service.Budget(r.Context(), budgetID)
		if err != nil {
			s.respondMutationError(w, r, "failed to fetch budget", err)
			return
		}
		s.respond(w, view.Summary)

	case len(parts) == 2 && parts[1] == "items" && r.Method == http.MethodPost:
		var in models.ItemInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			s.respondError(w, r, http.StatusBadRequest, "invalid item payload", err)
			return
		}
		view, err := s.service.AddItem(r.Context(), budgetID, in)
		if err != nil {
			s.respondMutationError(w, r, "failed to add item", err)
			return
		}
		s.respond(w, map[string]any{"status": "success", "budget": view.Budget, "summary": view.Summary})

	case len(parts) == 3 && parts[1] == "items" && r.Method == http.MethodDelete:
		view, err := s.service.RemoveItem(r.Context(), budgetID, parts[2])
		if err != nil {
			s.respondMutationError(w, r, "failed to remove item", err)
			return
		}
		s.respond(w, map[string]any{"status": "success", "budget": view.Budget, "summary": view.Summary})

	default:
		s.respondError(w, r, http.StatusNotFound, "not found", nil)
	}
}

// --- helpers ---

func (s *Server) respond(w http.ResponseWriter, v any) {
	if err := s.writeJSON(w, http.StatusOK, v); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// respondMutationError maps the error taxonomy onto HTTP statuses:
// validation failures are the caller's fault, everything else is the
// upstream store's.
func (s *Server) respondMutationError(w http.ResponseWriter, r *http.Request, message string, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		s.logger.Warn("validation error", "fields", verr.Fields, "method", r.Method, "path", r.URL.Path)
		_ = s.writeJSON(w, http.StatusBadRequest, map[string]any{
			"status": "error",
			"error":  message,
			"fields": verr.Fields,
		})
		return
	}
	s.respondError(w, r, http.StatusBadGateway, message, err)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log request start and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
