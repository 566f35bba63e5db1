package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roamhq/roam-backend/internal/domain"
	"github.com/roamhq/roam-backend/internal/handler"
	"github.com/roamhq/roam-backend/internal/planner"
	"github.com/roamhq/roam-backend/internal/service"
)

// Test doubles for the handler servicer interfaces.
// Set only the method fields your test needs.

type mockTripServicer struct {
	create        func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID       func(ctx context.Context, id int64) (domain.Trip, error)
	list          func(ctx context.Context) ([]domain.Trip, error)
	update        func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete        func(ctx context.Context, id int64) error
	advanceStatus func(ctx context.Context, id int64, requested domain.Status) (domain.Trip, error)
	setBudget     func(ctx context.Context, id int64, amount string) (int64, error)
	summary       func(ctx context.Context, id int64) (planner.Summary, error)
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockTripServicer) AdvanceStatus(ctx context.Context, id int64, requested domain.Status) (domain.Trip, error) {
	return m.advanceStatus(ctx, id, requested)
}
func (m *mockTripServicer) SetBudget(ctx context.Context, id int64, amount string) (int64, error) {
	return m.setBudget(ctx, id, amount)
}
func (m *mockTripServicer) Summary(ctx context.Context, id int64) (planner.Summary, error) {
	return m.summary(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockExpenseServicer struct {
	create     func(ctx context.Context, tripID int64, title, amount, category string) (domain.Expense, error)
	listByTrip func(ctx context.Context, tripID int64) ([]domain.Expense, error)
	delete     func(ctx context.Context, tripID, expenseID int64) error
}

func (m *mockExpenseServicer) Create(ctx context.Context, tripID int64, title, amount, category string) (domain.Expense, error) {
	return m.create(ctx, tripID, title, amount, category)
}
func (m *mockExpenseServicer) ListByTrip(ctx context.Context, tripID int64) ([]domain.Expense, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockExpenseServicer) Delete(ctx context.Context, tripID, expenseID int64) error {
	return m.delete(ctx, tripID, expenseID)
}

var _ handler.ExpenseServicer = (*mockExpenseServicer)(nil)

type mockDocumentServicer struct {
	create     func(ctx context.Context, doc domain.Document) (domain.Document, error)
	listByTrip func(ctx context.Context, tripID int64) ([]domain.Document, error)
	delete     func(ctx context.Context, tripID, documentID int64) error
}

func (m *mockDocumentServicer) Create(ctx context.Context, doc domain.Document) (domain.Document, error) {
	return m.create(ctx, doc)
}
func (m *mockDocumentServicer) ListByTrip(ctx context.Context, tripID int64) ([]domain.Document, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockDocumentServicer) Delete(ctx context.Context, tripID, documentID int64) error {
	return m.delete(ctx, tripID, documentID)
}

var _ handler.DocumentServicer = (*mockDocumentServicer)(nil)

type mockPhotoServicer struct {
	create     func(ctx context.Context, photo domain.Photo) (domain.Photo, error)
	listByTrip func(ctx context.Context, tripID int64) ([]domain.Photo, error)
	delete     func(ctx context.Context, tripID, photoID int64) error
}

func (m *mockPhotoServicer) Create(ctx context.Context, photo domain.Photo) (domain.Photo, error) {
	return m.create(ctx, photo)
}
func (m *mockPhotoServicer) ListByTrip(ctx context.Context, tripID int64) ([]domain.Photo, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockPhotoServicer) Delete(ctx context.Context, tripID, photoID int64) error {
	return m.delete(ctx, tripID, photoID)
}

var _ handler.PhotoServicer = (*mockPhotoServicer)(nil)

type mockCalendarServicer struct {
	schedule   func(ctx context.Context) (map[string]planner.Mark, error)
	tripForDay func(ctx context.Context, day string) (int64, error)
	selectDay  func(pending planner.PendingRange, day string) (planner.PendingRange, map[string]planner.SpanFlags, error)
}

func (m *mockCalendarServicer) Schedule(ctx context.Context) (map[string]planner.Mark, error) {
	return m.schedule(ctx)
}
func (m *mockCalendarServicer) TripForDay(ctx context.Context, day string) (int64, error) {
	return m.tripForDay(ctx, day)
}
func (m *mockCalendarServicer) SelectDay(pending planner.PendingRange, day string) (planner.PendingRange, map[string]planner.SpanFlags, error) {
	return m.selectDay(pending, day)
}

var _ handler.CalendarServicer = (*mockCalendarServicer)(nil)

type mockAssistantServicer struct {
	ask func(ctx context.Context, question string) (service.Message, error)
}

func (m *mockAssistantServicer) Ask(ctx context.Context, question string) (service.Message, error) {
	return m.ask(ctx, question)
}

var _ handler.AssistantServicer = (*mockAssistantServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// servicers groups the mocks a test wires in; zero fields stay nil and must
// not be reached by the request under test.
type servicers struct {
	trips     handler.TripServicer
	expenses  handler.ExpenseServicer
	documents handler.DocumentServicer
	photos    handler.PhotoServicer
	calendar  handler.CalendarServicer
	assistant handler.AssistantServicer
}

// newHTTPHandler wires a Server with the given mocks into its chi router.
// This mirrors exactly how main.go wires it in production.
func newHTTPHandler(s servicers) http.Handler {
	return handler.NewServer(s.trips, s.expenses, s.documents, s.photos, s.calendar, s.assistant).Routes()
}

func tripFixture(t *testing.T) domain.Trip {
	t.Helper()
	r, err := domain.ParseDateRange("2024-06-01", "2024-06-05")
	require.NoError(t, err)
	return domain.Trip{
		ID:          1,
		Title:       "Weekend in Rome",
		Destination: "Rome, Italy",
		Status:      domain.StatusPlanned,
		Dates:       &r,
		Budget:      50000,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
