package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/roamhq/roam-backend/internal/domain"
)

type photoResponse struct {
	ID        int64  `json:"id"`
	TripID    int64  `json:"trip_id"`
	URI       string `json:"uri"`
	Caption   string `json:"caption,omitempty"`
	CreatedAt string `json:"created_at"`
}

// CreatePhoto handles POST /trips/{tripID}/photos.
func (s *Server) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var body struct {
		URI     string `json:"uri"`
		Caption string `json:"caption"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}

	created, err := s.photos.Create(r.Context(), domain.Photo{
		TripID:  id,
		URI:     body.URI,
		Caption: body.Caption,
	})
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusCreated, photoToResponse(created))
}

// ListPhotos handles GET /trips/{tripID}/photos. Newest first.
func (s *Server) ListPhotos(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	photos, err := s.photos.ListByTrip(r.Context(), id)
	if err != nil {
		respondError(w, "trip", err)
		return
	}

	data := make([]photoResponse, len(photos))
	for i, p := range photos {
		data[i] = photoToResponse(p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// DeletePhoto handles DELETE /trips/{tripID}/photos/{photoID}.
func (s *Server) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}
	photoID, ok := pathID(w, r, "photoID")
	if !ok {
		return
	}

	if err := s.photos.Delete(r.Context(), id, photoID); err != nil {
		respondError(w, "photo", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func photoToResponse(p domain.Photo) photoResponse {
	return photoResponse{
		ID:        p.ID,
		TripID:    p.TripID,
		URI:       p.URI,
		Caption:   p.Caption,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
