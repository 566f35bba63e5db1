package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/roamhq/roam-backend/internal/domain"
)

// tripResponse is the wire shape of a trip. Dates are nullable: both are
// null until the user picks a range, never just one of them.
type tripResponse struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	Destination string              `json:"destination"`
	Status      string              `json:"status"`
	StartDate   *openapi_types.Date `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date"`
	Budget      int64               `json:"budget"`
	Notes       string              `json:"notes,omitempty"`
	CoverImage  string              `json:"cover_image,omitempty"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

type tripRequest struct {
	Title       string              `json:"title"`
	Destination string              `json:"destination"`
	StartDate   *openapi_types.Date `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date"`
	Notes       *string             `json:"notes"`
	CoverImage  *string             `json:"cover_image"`
}

// CreateTrip handles POST /trips.
// New trips always start in the "ideated" status regardless of the body.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := requestToTrip(r)
	if err != nil {
		requestError(w, err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips. Trips come back oldest first.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripID}.
// Status and budget are not updatable here; use the dedicated
// /advance and /budget endpoints.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	trip, err := requestToTrip(r)
	if err != nil {
		requestError(w, err.Error())
		return
	}
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
// Expenses, documents, and photos go with the trip.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		respondError(w, "trip", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdvanceTripStatus handles POST /trips/{tripID}/advance.
// The body names the status the client expects to land on; anything but
// the single legal next step is a 409.
func (s *Server) AdvanceTripStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}
	requested := domain.Status(body.Status)
	if !requested.Valid() {
		requestError(w, "unknown status "+strconv.Quote(body.Status))
		return
	}

	updated, err := s.trips.AdvanceStatus(r.Context(), id, requested)
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// SetTripBudget handles PUT /trips/{tripID}/budget.
// The amount arrives as a decimal string in major units ("42.50") and is
// stored in cents. On a bad amount the stored budget is untouched.
func (s *Server) SetTripBudget(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var body struct {
		Amount string `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}

	budget, err := s.trips.SetBudget(r.Context(), id, body.Amount)
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"budget": budget})
}

// GetTripSummary handles GET /trips/{tripID}/summary.
func (s *Server) GetTripSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	summary, err := s.trips.Summary(r.Context(), id)
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// --- mapping helpers --------------------------------------------------------

// tripID extracts and parses the {tripID} path parameter. On failure it
// writes a 422 and returns ok=false.
func tripID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	return pathID(w, r, "tripID")
}

// pathID parses an int64 path parameter, writing a 422 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		requestError(w, "invalid "+name+" "+strconv.Quote(raw))
		return 0, false
	}
	return id, true
}

// requestToTrip decodes a trip body into a domain.Trip.
// Dates must come as a pair: one without the other is rejected.
func requestToTrip(r *http.Request) (domain.Trip, error) {
	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return domain.Trip{}, errors.New("request body is required")
	}

	t := domain.Trip{
		Title:       body.Title,
		Destination: body.Destination,
	}
	if body.Notes != nil {
		t.Notes = *body.Notes
	}
	if body.CoverImage != nil {
		t.CoverImage = *body.CoverImage
	}

	switch {
	case body.StartDate == nil && body.EndDate == nil:
		// no dates yet
	case body.StartDate != nil && body.EndDate != nil:
		dates, err := domain.NewDateRange(body.StartDate.Time, body.EndDate.Time)
		if err != nil {
			return domain.Trip{}, errors.New("end_date must not be before start_date")
		}
		t.Dates = &dates
	default:
		return domain.Trip{}, errors.New("start_date and end_date must be set together")
	}

	return t, nil
}

// tripToResponse converts a domain.Trip into its wire shape.
func tripToResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:          t.ID,
		Title:       t.Title,
		Destination: t.Destination,
		Status:      string(t.Status),
		Budget:      t.Budget,
		Notes:       t.Notes,
		CoverImage:  t.CoverImage,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if t.Dates != nil {
		sd := openapi_types.Date{Time: t.Dates.StartTime()}
		ed := openapi_types.Date{Time: t.Dates.EndTime()}
		resp.StartDate = &sd
		resp.EndDate = &ed
	}
	return resp
}
