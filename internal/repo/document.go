package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/roamhq/roam-backend/internal/domain"
)

// DocumentRepo defines the persistence operations for Documents.
type DocumentRepo interface {
	// Create inserts a new document and returns the persisted record.
	Create(ctx context.Context, doc domain.Document) (domain.Document, error)

	// ListByTripID returns all documents for a trip in insertion order.
	ListByTripID(ctx context.Context, tripID int64) ([]domain.Document, error)

	// Delete removes a document by ID, scoped to the given trip.
	// Returns domain.ErrNotFound if no such document exists under that trip.
	Delete(ctx context.Context, tripID, documentID int64) error
}

type pgDocumentRepo struct {
	db db
}

// NewDocumentRepo constructs a DocumentRepo backed by the provided db connection.
func NewDocumentRepo(db db) DocumentRepo {
	return &pgDocumentRepo{db: db}
}

func (r *pgDocumentRepo) Create(ctx context.Context, doc domain.Document) (domain.Document, error) {
	const q = `
		INSERT INTO documents (trip_id, type, title, subtitle, link)
		VALUES (@trip_id, @type, @title, @subtitle, @link)
		RETURNING id, trip_id, type, title, subtitle, link`

	args := pgx.NamedArgs{
		"trip_id":  doc.TripID,
		"type":     doc.Type,
		"title":    doc.Title,
		"subtitle": doc.Subtitle,
		"link":     doc.Link,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDocument(row)
	if err != nil {
		return domain.Document{}, fmt.Errorf("repo.DocumentRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDocumentRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.Document, error) {
	const q = `
		SELECT id, trip_id, type, title, subtitle, link
		FROM documents
		WHERE trip_id = @trip_id
		ORDER BY id ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DocumentRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DocumentRepo.ListByTripID: scan: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DocumentRepo.ListByTripID: rows: %w", err)
	}

	return docs, nil
}

func (r *pgDocumentRepo) Delete(ctx context.Context, tripID, documentID int64) error {
	const q = `DELETE FROM documents WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": documentID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.DocumentRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DocumentRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanDocument(s scanner) (domain.Document, error) {
	var d domain.Document
	err := s.Scan(&d.ID, &d.TripID, &d.Type, &d.Title, &d.Subtitle, &d.Link)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Document{}, domain.ErrNotFound
		}
		return domain.Document{}, err
	}
	return d, nil
}
