// Package handler implements the HTTP handlers for the Roam API.
// All handlers are methods on Server. Methods are split into
// resource-specific files (trip.go, expense.go, etc.) but all share the
// same Server struct so they can access its dependencies.
//
// The interfaces below are defined here, in the consumer package, following
// the Go convention: "accept interfaces, return concrete types". Handler
// tests inject mocks without touching the database or service layer.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/roamhq/roam-backend/internal/domain"
	"github.com/roamhq/roam-backend/internal/planner"
	"github.com/roamhq/roam-backend/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id int64) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id int64) error
	AdvanceStatus(ctx context.Context, id int64, requested domain.Status) (domain.Trip, error)
	SetBudget(ctx context.Context, id int64, amount string) (int64, error)
	Summary(ctx context.Context, id int64) (planner.Summary, error)
}

// ExpenseServicer defines the business operations the expense handlers depend on.
type ExpenseServicer interface {
	Create(ctx context.Context, tripID int64, title, amount, category string) (domain.Expense, error)
	ListByTrip(ctx context.Context, tripID int64) ([]domain.Expense, error)
	Delete(ctx context.Context, tripID, expenseID int64) error
}

// DocumentServicer defines the business operations the document handlers depend on.
type DocumentServicer interface {
	Create(ctx context.Context, doc domain.Document) (domain.Document, error)
	ListByTrip(ctx context.Context, tripID int64) ([]domain.Document, error)
	Delete(ctx context.Context, tripID, documentID int64) error
}

// PhotoServicer defines the business operations the photo handlers depend on.
type PhotoServicer interface {
	Create(ctx context.Context, photo domain.Photo) (domain.Photo, error)
	ListByTrip(ctx context.Context, tripID int64) ([]domain.Photo, error)
	Delete(ctx context.Context, tripID, photoID int64) error
}

// CalendarServicer defines the calendar operations the handlers depend on.
type CalendarServicer interface {
	Schedule(ctx context.Context) (map[string]planner.Mark, error)
	TripForDay(ctx context.Context, day string) (int64, error)
	SelectDay(pending planner.PendingRange, day string) (planner.PendingRange, map[string]planner.SpanFlags, error)
}

// AssistantServicer defines the assistant operations the handlers depend on.
type AssistantServicer interface {
	Ask(ctx context.Context, question string) (service.Message, error)
}

// Server implements all API endpoints.
// Wire it in main.go via Routes(). Methods are in resource-specific files
// but all operate on this struct.
type Server struct {
	trips     TripServicer
	expenses  ExpenseServicer
	documents DocumentServicer
	photos    PhotoServicer
	calendar  CalendarServicer
	assistant AssistantServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, expenses ExpenseServicer, documents DocumentServicer, photos PhotoServicer, calendar CalendarServicer, assistant AssistantServicer) *Server {
	return &Server{
		trips:     trips,
		expenses:  expenses,
		documents: documents,
		photos:    photos,
		calendar:  calendar,
		assistant: assistant,
	}
}

// Routes registers every endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Post("/advance", s.AdvanceTripStatus)
			r.Put("/budget", s.SetTripBudget)
			r.Get("/summary", s.GetTripSummary)

			r.Post("/expenses", s.CreateExpense)
			r.Get("/expenses", s.ListExpenses)
			r.Delete("/expenses/{expenseID}", s.DeleteExpense)

			r.Post("/documents", s.CreateDocument)
			r.Get("/documents", s.ListDocuments)
			r.Delete("/documents/{documentID}", s.DeleteDocument)

			r.Post("/photos", s.CreatePhoto)
			r.Get("/photos", s.ListPhotos)
			r.Delete("/photos/{photoID}", s.DeletePhoto)
		})
	})

	r.Get("/calendar", s.GetCalendar)
	r.Get("/calendar/days/{day}", s.GetCalendarDay)
	r.Post("/calendar/selection", s.SelectCalendarDay)

	r.Post("/assistant", s.AskAssistant)

	return r
}
