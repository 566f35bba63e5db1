// Package assistant builds the travel-assistant prompt from trip data and
// talks to an external OpenAI-compatible text-generation service. The
// service is a pure collaborator: context string in, text out. No trip
// logic lives here.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/roamhq/roam-backend/internal/domain"
)

// ErrDisabled is returned by Client when no endpoint is configured.
// Handlers should map this to HTTP 503.
var ErrDisabled = errors.New("assistant is not configured")

// Generator produces a reply for a fully built prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const systemPreamble = `You are Roam AI, a helpful travel assistant for a study abroad student.

Here are the user's current trips:
%s

When answering:
- Be concise and friendly.
- Use their specific trip details (dates, locations) in your advice.
- If they ask about a location not in the list, help them plan it as a new "ideated" trip.`

// BuildPrompt renders the user's trips and question into a single prompt.
// One line per trip; unset dates render as "?". Pure — safe to unit test
// without any client.
func BuildPrompt(trips []domain.Trip, question string) string {
	lines := make([]string, 0, len(trips))
	for _, t := range trips {
		start, end := "?", "?"
		if t.Dates != nil {
			start, end = t.Dates.Start(), t.Dates.End()
		}
		lines = append(lines, fmt.Sprintf("- %s to %s (%s) from %s to %s", t.Title, t.Destination, t.Status, start, end))
	}
	tripContext := "(no trips yet)"
	if len(lines) > 0 {
		tripContext = strings.Join(lines, "\n")
	}
	return fmt.Sprintf(systemPreamble, tripContext) + "\n\nUser: " + question + "\nAI:"
}

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
}

// NewClient constructs a Client. An empty endpoint yields a disabled client
// whose Generate always returns ErrDisabled, so the rest of the app needs
// no special casing.
func NewClient(endpoint, apiKey, model string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt as a single user message and returns the first
// choice's content.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.endpoint == "" {
		return "", ErrDisabled
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("assistant.Client.Generate: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assistant.Client.Generate: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant.Client.Generate: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("assistant.Client.Generate: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant.Client.Generate: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("assistant.Client.Generate: decode: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("assistant.Client.Generate: empty response")
	}
	return parsed.Choices[0].Message.Content, nil
}
