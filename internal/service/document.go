package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/roamhq/roam-backend/internal/domain"
	"github.com/roamhq/roam-backend/internal/repo"
)

// DocumentService implements business logic for Document operations.
type DocumentService struct {
	trips     repo.TripRepo
	documents repo.DocumentRepo
}

// NewDocumentService constructs a DocumentService backed by the provided repos.
func NewDocumentService(trips repo.TripRepo, documents repo.DocumentRepo) *DocumentService {
	return &DocumentService{trips: trips, documents: documents}
}

// Create validates a new document, verifies the parent trip exists, then persists.
// Returns domain.ErrValidation for a blank title or unknown type,
// domain.ErrNotFound if the trip does not exist.
func (s *DocumentService) Create(ctx context.Context, doc domain.Document) (domain.Document, error) {
	if _, err := s.trips.GetByID(ctx, doc.TripID); err != nil {
		return domain.Document{}, fmt.Errorf("service.DocumentService.Create: %w", err)
	}
	if strings.TrimSpace(doc.Title) == "" {
		return domain.Document{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !doc.Type.Valid() {
		return domain.Document{}, fmt.Errorf("%w: type must be transport, stay, or activity", domain.ErrValidation)
	}

	result, err := s.documents.Create(ctx, doc)
	if err != nil {
		return domain.Document{}, fmt.Errorf("service.DocumentService.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns all documents for a trip in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DocumentService) ListByTrip(ctx context.Context, tripID int64) ([]domain.Document, error) {
	docs, err := s.documents.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.DocumentService.ListByTrip: %w", err)
	}
	if docs == nil {
		return []domain.Document{}, nil
	}
	return docs, nil
}

// Delete removes a document by ID, scoped to the given trip.
func (s *DocumentService) Delete(ctx context.Context, tripID, documentID int64) error {
	if err := s.documents.Delete(ctx, tripID, documentID); err != nil {
		return fmt.Errorf("service.DocumentService.Delete: %w", err)
	}
	return nil
}
