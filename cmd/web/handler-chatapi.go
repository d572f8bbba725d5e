package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/parkdui/LG-Thingo/internal/ai"
	"github.com/parkdui/LG-Thingo/internal/errors"
	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/parkdui/LG-Thingo/internal/reply"
)

type chatAPIRequest struct {
	CardID   string        `json:"cardId"`
	Messages []models.Turn `json:"messages"`
}

type chatAPIResponse struct {
	Message string `json:"message"`
}

type chatAPIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// chatAPI is the JSON chat completion endpoint. The transcript comes from the
// request body; the system prompt is resolved server-side from the card id
// and never crosses the wire.
func (app *application) chatAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		app.writeJSON(w, r, http.StatusMethodNotAllowed, chatAPIError{Error: "Method not allowed"})
		return
	}

	var req chatAPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.writeJSON(w, r, http.StatusBadRequest, chatAPIError{Error: "Invalid request"})
		return
	}
	if req.CardID == "" || req.Messages == nil {
		app.writeJSON(w, r, http.StatusBadRequest, chatAPIError{Error: "Invalid request"})
		return
	}

	text, err := app.replies.GetReply(r.Context(), req.CardID, models.Transcript(req.Messages))
	if err != nil {
		switch {
		case errors.Is(err, reply.ErrEmptyTranscript):
			app.writeJSON(w, r, http.StatusBadRequest, chatAPIError{Error: "Invalid request"})
		case errors.Is(err, ai.ErrServiceUnavailable):
			app.writeJSON(w, r, http.StatusInternalServerError, chatAPIError{
				Error:   "OpenAI API key not configured",
				Details: "Please check your .env file contains OPENAI_API_KEY",
			})
		default:
			app.logger.LogAttrs(r.Context(), slog.LevelError, "chat completion failed",
				slog.String("card_id", req.CardID), errors.SlogError(err))
			app.writeJSON(w, r, http.StatusInternalServerError, chatAPIError{
				Error:   "OpenAI API 호출 중 오류가 발생했습니다.",
				Details: err.Error(),
			})
		}
		return
	}

	app.writeJSON(w, r, http.StatusOK, chatAPIResponse{Message: text})
}
