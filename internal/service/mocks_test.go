package service_test

import (
	"context"

	"github.com/roamhq/roam-backend/internal/domain"
	"github.com/roamhq/roam-backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.

type mockTripRepo struct {
	create       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID      func(ctx context.Context, id int64) (domain.Trip, error)
	list         func(ctx context.Context) ([]domain.Trip, error)
	update       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	updateStatus func(ctx context.Context, id int64, status domain.Status) error
	updateBudget func(ctx context.Context, id int64, budget int64) error
	delete       func(ctx context.Context, id int64) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return m.updateStatus(ctx, id, status)
}
func (m *mockTripRepo) UpdateBudget(ctx context.Context, id int64, budget int64) error {
	return m.updateBudget(ctx, id, budget)
}
func (m *mockTripRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockExpenseRepo struct {
	create       func(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	listByTripID func(ctx context.Context, tripID int64) ([]domain.Expense, error)
	delete       func(ctx context.Context, tripID, expenseID int64) error
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	return m.create(ctx, expense)
}
func (m *mockExpenseRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.Expense, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockExpenseRepo) Delete(ctx context.Context, tripID, expenseID int64) error {
	return m.delete(ctx, tripID, expenseID)
}

var _ repo.ExpenseRepo = (*mockExpenseRepo)(nil)

type mockDocumentRepo struct {
	create       func(ctx context.Context, doc domain.Document) (domain.Document, error)
	listByTripID func(ctx context.Context, tripID int64) ([]domain.Document, error)
	delete       func(ctx context.Context, tripID, documentID int64) error
}

func (m *mockDocumentRepo) Create(ctx context.Context, doc domain.Document) (domain.Document, error) {
	return m.create(ctx, doc)
}
func (m *mockDocumentRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.Document, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockDocumentRepo) Delete(ctx context.Context, tripID, documentID int64) error {
	return m.delete(ctx, tripID, documentID)
}

var _ repo.DocumentRepo = (*mockDocumentRepo)(nil)

type mockPhotoRepo struct {
	create       func(ctx context.Context, photo domain.Photo) (domain.Photo, error)
	listByTripID func(ctx context.Context, tripID int64) ([]domain.Photo, error)
	delete       func(ctx context.Context, tripID, photoID int64) error
}

func (m *mockPhotoRepo) Create(ctx context.Context, photo domain.Photo) (domain.Photo, error) {
	return m.create(ctx, photo)
}
func (m *mockPhotoRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.Photo, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockPhotoRepo) Delete(ctx context.Context, tripID, photoID int64) error {
	return m.delete(ctx, tripID, photoID)
}

var _ repo.PhotoRepo = (*mockPhotoRepo)(nil)

// tripInStore returns a mockTripRepo whose GetByID always finds the given trip.
func tripInStore(trip domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id int64) (domain.Trip, error) {
			if id != trip.ID {
				return domain.Trip{}, domain.ErrNotFound
			}
			return trip, nil
		},
	}
}
