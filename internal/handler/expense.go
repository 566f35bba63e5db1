package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/roamhq/roam-backend/internal/domain"
)

// expenseResponse is the wire shape of an expense. Amount is in minor
// currency units (cents).
type expenseResponse struct {
	ID        int64  `json:"id"`
	TripID    int64  `json:"trip_id"`
	Title     string `json:"title"`
	Amount    int64  `json:"amount"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}

// CreateExpense handles POST /trips/{tripID}/expenses.
// The amount arrives as a decimal string in major units ("12.50").
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var body struct {
		Title    string `json:"title"`
		Amount   string `json:"amount"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}

	created, err := s.expenses.Create(r.Context(), id, body.Title, body.Amount, body.Category)
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusCreated, expenseToResponse(created))
}

// ListExpenses handles GET /trips/{tripID}/expenses. Newest first.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	expenses, err := s.expenses.ListByTrip(r.Context(), id)
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	data := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		data[i] = expenseToResponse(e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// DeleteExpense handles DELETE /trips/{tripID}/expenses/{expenseID}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}
	expenseID, ok := pathID(w, r, "expenseID")
	if !ok {
		return
	}

	if err := s.expenses.Delete(r.Context(), id, expenseID); err != nil {
		respondError(w, "expense", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func expenseToResponse(e domain.Expense) expenseResponse {
	return expenseResponse{
		ID:        e.ID,
		TripID:    e.TripID,
		Title:     e.Title,
		Amount:    e.Amount,
		Category:  e.Category,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
