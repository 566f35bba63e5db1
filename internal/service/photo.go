package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/roamhq/roam-backend/internal/domain"
	"github.com/roamhq/roam-backend/internal/repo"
)

// PhotoService implements business logic for Photo operations.
// The backend only records URIs; image capture and storage live elsewhere.
type PhotoService struct {
	trips  repo.TripRepo
	photos repo.PhotoRepo
}

// NewPhotoService constructs a PhotoService backed by the provided repos.
func NewPhotoService(trips repo.TripRepo, photos repo.PhotoRepo) *PhotoService {
	return &PhotoService{trips: trips, photos: photos}
}

// Create validates a new photo record, verifies the parent trip exists, then persists.
func (s *PhotoService) Create(ctx context.Context, photo domain.Photo) (domain.Photo, error) {
	if _, err := s.trips.GetByID(ctx, photo.TripID); err != nil {
		return domain.Photo{}, fmt.Errorf("service.PhotoService.Create: %w", err)
	}
	if strings.TrimSpace(photo.URI) == "" {
		return domain.Photo{}, fmt.Errorf("%w: uri is required", domain.ErrValidation)
	}

	result, err := s.photos.Create(ctx, photo)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("service.PhotoService.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns all photos for a trip, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PhotoService) ListByTrip(ctx context.Context, tripID int64) ([]domain.Photo, error) {
	photos, err := s.photos.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PhotoService.ListByTrip: %w", err)
	}
	if photos == nil {
		return []domain.Photo{}, nil
	}
	return photos, nil
}

// Delete removes a photo by ID, scoped to the given trip.
func (s *PhotoService) Delete(ctx context.Context, tripID, photoID int64) error {
	if err := s.photos.Delete(ctx, tripID, photoID); err != nil {
		return fmt.Errorf("service.PhotoService.Delete: %w", err)
	}
	return nil
}
