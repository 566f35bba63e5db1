package handler

import (
	"encoding/json"
	"net/http"
)

// AskAssistant handles POST /assistant.
// Conversation state lives on the client; every question is answered
// independently against the current trip list.
func (s *Server) AskAssistant(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}

	msg, err := s.assistant.Ask(r.Context(), body.Question)
	if err != nil {
		respondError(w, "assistant", err)
		return
	}

	writeJSON(w, http.StatusOK, msg)
}
