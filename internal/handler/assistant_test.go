package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamhq/roam-backend/internal/assistant"
	"github.com/roamhq/roam-backend/internal/service"
)

func TestAskAssistant_200(t *testing.T) {
	svc := &mockAssistantServicer{
		ask: func(_ context.Context, question string) (service.Message, error) {
			assert.Equal(t, "What should I pack?", question)
			return service.Message{ID: uuid.New(), Role: "ai", Text: "Pack light!", CreatedAt: time.Now().UTC()}, nil
		},
	}

	body := jsonBody(t, map[string]string{"question": "What should I pack?"})
	req := httptest.NewRequest(http.MethodPost, "/assistant", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(servicers{assistant: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ai", resp["role"])
	assert.Equal(t, "Pack light!", resp["text"])
}

func TestAskAssistant_503_Disabled(t *testing.T) {
	svc := &mockAssistantServicer{
		ask: func(_ context.Context, _ string) (service.Message, error) {
			return service.Message{}, assistant.ErrDisabled
		},
	}

	body := jsonBody(t, map[string]string{"question": "hello"})
	req := httptest.NewRequest(http.MethodPost, "/assistant", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(servicers{assistant: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "assistant_unavailable")
}
