package handler

import (
	"encoding/json"
	"net/http"

	"github.com/roamhq/roam-backend/internal/domain"
)

type documentResponse struct {
	ID       int64  `json:"id"`
	TripID   int64  `json:"trip_id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Link     string `json:"link,omitempty"`
}

// CreateDocument handles POST /trips/{tripID}/documents.
func (s *Server) CreateDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var body struct {
		Type     string `json:"type"`
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
		Link     string `json:"link"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}

	created, err := s.documents.Create(r.Context(), domain.Document{
		TripID:   id,
		Type:     domain.DocumentType(body.Type),
		Title:    body.Title,
		Subtitle: body.Subtitle,
		Link:     body.Link,
	})
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusCreated, documentToResponse(created))
}

// ListDocuments handles GET /trips/{tripID}/documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	docs, err := s.documents.ListByTrip(r.Context(), id)
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	data := make([]documentResponse, len(docs))
	for i, d := range docs {
		data[i] = documentToResponse(d)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// DeleteDocument handles DELETE /trips/{tripID}/documents/{documentID}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}
	documentID, ok := pathID(w, r, "documentID")
	if !ok {
		return
	}

	if err := s.documents.Delete(r.Context(), id, documentID); err != nil {
		respondError(w, "document", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func documentToResponse(d domain.Document) documentResponse {
	return documentResponse{
		ID:       d.ID,
		TripID:   d.TripID,
		Type:     string(d.Type),
		Title:    d.Title,
		Subtitle: d.Subtitle,
		Link:     d.Link,
	}
}
