// Package repo contains all database access logic for the Roam API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/roamhq/roam-backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Trip, error)

	// List returns all trips ordered by creation time ascending. The most
	// recently created trip comes last, which is the order the calendar
	// expansion relies on for its overlap rule.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites the descriptive fields of an existing trip (title,
	// destination, dates, notes, cover image) and returns the updated
	// record. Status and budget change only through UpdateStatus and
	// UpdateBudget. Returns domain.ErrNotFound if the trip does not exist.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// UpdateStatus sets only the status field.
	// Returns domain.ErrNotFound if the trip does not exist.
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error

	// UpdateBudget sets only the budget field (minor units).
	// Returns domain.ErrNotFound if the trip does not exist.
	UpdateBudget(ctx context.Context, id int64, budget int64) error

	// Delete removes a trip by ID; expenses, documents, and photos cascade.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, title, destination, status, start_date, end_date, budget, notes, cover_image, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	q := `
		INSERT INTO trips (title, destination, status, start_date, end_date, budget, notes, cover_image)
		VALUES (@title, @destination, @status, @start_date, @end_date, @budget, @notes, @cover_image)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"title":       trip.Title,
		"destination": trip.Destination,
		"status":      trip.Status,
		"budget":      trip.Budget,
		"notes":       trip.Notes,
		"cover_image": trip.CoverImage,
	}
	args["start_date"], args["end_date"] = rangeArgs(trip.Dates)

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	q := `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips, oldest first.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	q := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

// Update overwrites the descriptive fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	q := `
		UPDATE trips
		SET title       = @title,
		    destination = @destination,
		    start_date  = @start_date,
		    end_date    = @end_date,
		    notes       = @notes,
		    cover_image = @cover_image,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":          trip.ID,
		"title":       trip.Title,
		"destination": trip.Destination,
		"notes":       trip.Notes,
		"cover_image": trip.CoverImage,
	}
	args["start_date"], args["end_date"] = rangeArgs(trip.Dates)

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// UpdateStatus sets only the trip's status.
func (r *pgTripRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	const q = `UPDATE trips SET status = @status, updated_at = now() WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": status})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.UpdateStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.UpdateStatus: %w", domain.ErrNotFound)
	}
	return nil
}

// UpdateBudget sets only the trip's budget (minor units).
func (r *pgTripRepo) UpdateBudget(ctx context.Context, id int64, budget int64) error {
	const q = `UPDATE trips SET budget = @budget, updated_at = now() WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "budget": budget})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.UpdateBudget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.UpdateBudget: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a trip by primary key. Child rows cascade via FK.
func (r *pgTripRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// rangeArgs converts an optional DateRange into the two nullable date
// columns. Both nil (NULL) when the trip has no dates.
func rangeArgs(r *domain.DateRange) (start, end any) {
	if r == nil {
		return nil, nil
	}
	return r.StartTime(), r.EndTime()
}

// scanTrip maps a single database row into a domain.Trip.
// The two nullable date columns are either both NULL or both set (enforced
// by a table CHECK constraint) and collapse into the optional DateRange.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		startDate pgtype.Date
		endDate   pgtype.Date
		createdAt time.Time
		updatedAt time.Time
	)

	err := s.Scan(&t.ID, &t.Title, &t.Destination, &t.Status, &startDate, &endDate,
		&t.Budget, &t.Notes, &t.CoverImage, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.CreatedAt = createdAt
	t.UpdatedAt = updatedAt
	if startDate.Valid && endDate.Valid {
		r, err := domain.NewDateRange(startDate.Time, endDate.Time)
		if err != nil {
			return domain.Trip{}, err
		}
		t.Dates = &r
	}

	return t, nil
}
