package messages

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kino-avatar/kino/internal/model/avatar"
	"github.com/kino-avatar/kino/internal/service/ai"
	"github.com/kino-avatar/kino/pkg/utils"
)

// Generator produces avatar messages for user text.
type Generator interface {
	Generate(ctx context.Context, userInput string) (avatar.Payload, error)
}

// Handler serves avatar messages over HTTP.
type Handler struct {
	generator Generator
}

// New creates a messages handler. generator may be nil when AI is not configured.
func New(generator Generator) *Handler {
	return &Handler{generator: generator}
}

// RegisterRoutes mounts POST /messages.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/messages", h.handleGenerate)
}

// handleGenerate always answers with a payload; only an unreadable body is a 400.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondJSON(w, http.StatusBadRequest, avatar.Placeholder())
		return
	}

	if h.generator == nil {
		utils.RespondJSON(w, http.StatusOK, avatar.Fallback("ai service unavailable"))
		return
	}

	result, err := h.generator.Generate(r.Context(), payload.Text)
	if err != nil && ai.KindOf(err) != ai.KindEmptyInput {
		log.Printf("[messages] request=%s fell back: %v", middleware.GetReqID(r.Context()), err)
	}
	utils.RespondJSON(w, http.StatusOK, result)
}
