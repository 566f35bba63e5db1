package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roamhq/roam-backend/internal/planner"
)

// GetCalendar handles GET /calendar.
// The response maps YYYY-MM-DD days to the mark that owns them; when trip
// ranges overlap, the most recently created trip wins.
func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	marks, err := s.calendar.Schedule(r.Context())
	if err != nil {
		respondError(w, "calendar", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"days": marks})
}

// GetCalendarDay handles GET /calendar/days/{day}.
// It resolves a tapped day to the trip owning it, or 404 when unmarked.
func (s *Server) GetCalendarDay(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")

	id, err := s.calendar.TripForDay(r.Context(), day)
	if err != nil {
		respondError(w, "day", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"trip_id": id})
}

// SelectCalendarDay handles POST /calendar/selection.
// It runs one step of the two-tap range picker: the client sends its
// pending selection plus the tapped day and gets the next pending state
// and a preview of the days the selection spans.
func (s *Server) SelectCalendarDay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Pending planner.PendingRange `json:"pending"`
		Day     string               `json:"day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}

	next, preview, err := s.calendar.SelectDay(body.Pending, body.Day)
	if err != nil {
		respondError(w, "day", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"pending": next,
		"preview": preview,
	})
}
