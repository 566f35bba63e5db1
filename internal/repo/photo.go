package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/roamhq/roam-backend/internal/domain"
)

// PhotoRepo defines the persistence operations for Photos.
type PhotoRepo interface {
	// Create inserts a new photo and returns the persisted record.
	Create(ctx context.Context, photo domain.Photo) (domain.Photo, error)

	// ListByTripID returns all photos for a trip, newest first.
	ListByTripID(ctx context.Context, tripID int64) ([]domain.Photo, error)

	// Delete removes a photo by ID, scoped to the given trip.
	// Returns domain.ErrNotFound if no such photo exists under that trip.
	Delete(ctx context.Context, tripID, photoID int64) error
}

type pgPhotoRepo struct {
	db db
}

// NewPhotoRepo constructs a PhotoRepo backed by the provided db connection.
func NewPhotoRepo(db db) PhotoRepo {
	return &pgPhotoRepo{db: db}
}

func (r *pgPhotoRepo) Create(ctx context.Context, photo domain.Photo) (domain.Photo, error) {
	const q = `
		INSERT INTO photos (trip_id, uri, caption)
		VALUES (@trip_id, @uri, @caption)
		RETURNING id, trip_id, uri, caption, created_at`

	args := pgx.NamedArgs{
		"trip_id": photo.TripID,
		"uri":     photo.URI,
		"caption": photo.Caption,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPhoto(row)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("repo.PhotoRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgPhotoRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.Photo, error) {
	const q = `
		SELECT id, trip_id, uri, caption, created_at
		FROM photos
		WHERE trip_id = @trip_id
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.PhotoRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var photos []domain.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PhotoRepo.ListByTripID: scan: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PhotoRepo.ListByTripID: rows: %w", err)
	}

	return photos, nil
}

func (r *pgPhotoRepo) Delete(ctx context.Context, tripID, photoID int64) error {
	const q = `DELETE FROM photos WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": photoID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.PhotoRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PhotoRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanPhoto(s scanner) (domain.Photo, error) {
	var p domain.Photo
	err := s.Scan(&p.ID, &p.TripID, &p.URI, &p.Caption, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Photo{}, domain.ErrNotFound
		}
		return domain.Photo{}, err
	}
	return p, nil
}
