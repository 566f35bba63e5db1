package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roamhq/roam-backend/internal/assistant"
	"github.com/roamhq/roam-backend/internal/domain"
	"github.com/roamhq/roam-backend/internal/repo"
)

// Message is one assistant conversation turn.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"` // "user" or "ai"
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// AssistantService answers free-form travel questions using a snapshot of
// the user's trips as context. Conversation state lives on the client; the
// server treats every question independently.
type AssistantService struct {
	trips     repo.TripRepo
	generator assistant.Generator
}

// NewAssistantService constructs an AssistantService backed by the provided
// trip repo and text generator.
func NewAssistantService(trips repo.TripRepo, generator assistant.Generator) *AssistantService {
	return &AssistantService{trips: trips, generator: generator}
}

// Ask builds a prompt from all trips plus the question and returns the
// generated reply. Returns domain.ErrValidation for a blank question.
func (s *AssistantService) Ask(ctx context.Context, question string) (Message, error) {
	if strings.TrimSpace(question) == "" {
		return Message{}, fmt.Errorf("%w: question is required", domain.ErrValidation)
	}

	trips, err := s.trips.List(ctx)
	if err != nil {
		return Message{}, fmt.Errorf("service.AssistantService.Ask: %w", err)
	}

	reply, err := s.generator.Generate(ctx, assistant.BuildPrompt(trips, question))
	if err != nil {
		return Message{}, fmt.Errorf("service.AssistantService.Ask: %w", err)
	}

	return Message{
		ID:        uuid.New(),
		Role:      "ai",
		Text:      reply,
		CreatedAt: time.Now().UTC(),
	}, nil
}
