package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ledgerd/internal/core"
)

type addExpenseRequest struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Note        string  `json:"note"`
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.ledger.Add(r.Context(), core.Expense{
		Date:        req.Date,
		Amount:      req.Amount,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Note:        req.Note,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Add expense failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	expenses, err := s.ledger.List(r.Context(), startDate, endDate)
	if err != nil {
		slog.ErrorContext(r.Context(), "List expenses failed", "error", err,
			"start_date", startDate, "end_date", endDate)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	res, err := s.ledger.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.ErrorContext(r.Context(), "Delete expense failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, resultStatus(res.Status), res)
}

type deleteExpensesRequest struct {
	// ExpenseIDs accepts a delimited string, an array, or a single
	// scalar; normalization happens in the service.
	ExpenseIDs any  `json:"expense_ids"`
	DeleteAll  bool `json:"delete_all"`
}

func (s *Server) handleDeleteExpenses(w http.ResponseWriter, r *http.Request) {
	var req deleteExpensesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.ledger.DeleteMany(r.Context(), req.ExpenseIDs, req.DeleteAll)
	if err != nil {
		slog.ErrorContext(r.Context(), "Delete expenses failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, resultStatus(res.Status), res)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	var patch core.ExpensePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.ledger.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		slog.ErrorContext(r.Context(), "Update expense failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, resultStatus(res.Status), res)
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	startDate := q.Get("start_date")
	endDate := q.Get("end_date")
	category := q.Get("category")

	summaries, err := s.ledger.Summarize(r.Context(), startDate, endDate, category)
	if err != nil {
		slog.ErrorContext(r.Context(), "Summarize failed", "error", err,
			"start_date", startDate, "end_date", endDate, "category", category)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	data, err := s.catalog.Read()
	if err != nil {
		slog.ErrorContext(r.Context(), "Read categories failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
