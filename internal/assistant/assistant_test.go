package assistant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamhq/roam-backend/internal/assistant"
	"github.com/roamhq/roam-backend/internal/domain"
)

func TestBuildPrompt_RendersTripsAndQuestion(t *testing.T) {
	r, err := domain.ParseDateRange("2024-06-01", "2024-06-05")
	require.NoError(t, err)

	trips := []domain.Trip{
		{Title: "Weekend in Rome", Destination: "Rome, Italy", Status: domain.StatusPlanned, Dates: &r},
		{Title: "Someday Lisbon", Destination: "Lisbon, Portugal", Status: domain.StatusIdeated},
	}

	prompt := assistant.BuildPrompt(trips, "What should I pack?")

	assert.Contains(t, prompt, "- Weekend in Rome to Rome, Italy (planned) from 2024-06-01 to 2024-06-05")
	assert.Contains(t, prompt, "- Someday Lisbon to Lisbon, Portugal (ideated) from ? to ?")
	assert.Contains(t, prompt, "User: What should I pack?")
}

func TestBuildPrompt_NoTrips(t *testing.T) {
	prompt := assistant.BuildPrompt(nil, "Where should I go?")

	assert.Contains(t, prompt, "(no trips yet)")
}

func TestClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Pack light!"}},
			},
		})
	}))
	defer srv.Close()

	c := assistant.NewClient(srv.URL, "test-key", "test-model")

	got, err := c.Generate(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "Pack light!", got)
}

func TestClient_Generate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := assistant.NewClient(srv.URL, "", "test-model")

	_, err := c.Generate(context.Background(), "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Generate_Disabled(t *testing.T) {
	c := assistant.NewClient("", "", "")

	_, err := c.Generate(context.Background(), "hello")

	assert.ErrorIs(t, err, assistant.ErrDisabled)
}
