// Package diagnose exposes the alternate, stateless diagnosis path: the
// symptom text is forwarded to a chat-completion endpoint and the reply is
// relayed verbatim. Engine session state is never touched here.
package diagnose

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Client is the upstream chat-completion call this boundary depends on.
type Client interface {
	Diagnose(ctx context.Context, symptoms string) (string, error)
}

type Handler struct {
	client Client
}

func NewHandler(client Client) *Handler {
	return &Handler{client: client}
}

type diagnoseRequest struct {
	Symptoms string `json:"symptoms"`
}

// HandleDiagnose preserves the historical boundary behavior exactly: missing
// input is a 400 with a fixed message, any upstream failure is logged and
// surfaced as a uniform 500, success relays the completion verbatim.
func (h *Handler) HandleDiagnose(w http.ResponseWriter, r *http.Request) {
	var req diagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Symptoms == "" {
		http.Error(w, "Symptoms are required.", http.StatusBadRequest)
		return
	}

	result, err := h.client.Diagnose(r.Context(), req.Symptoms)
	if err != nil {
		log.Printf("diagnose upstream error: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"diagnosis": result})
}

// RegisterRoutes registers POST only; chi answers other verbs with 405.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/diagnose", h.HandleDiagnose)
}
