// Package handlers wires the HTTP surface: the signed interactions endpoint
// and the unauthenticated health check.
package handlers

import (
	"encoding/json"
	"net/http"

	"interactions-gateway/internal/common/logging"
	"interactions-gateway/internal/interactions"
	"interactions-gateway/internal/signature"
)

type Handlers struct {
	verifier   *signature.Verifier
	dispatcher *interactions.Dispatcher
	logger     logging.Logger
}

func New(verifier *signature.Verifier, dispatcher *interactions.Dispatcher, logger logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Handlers{
		verifier:   verifier,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// HandleInteraction runs the full request pipeline: verify the signature over
// the literal body bytes, parse, dispatch. Verification failures return 401
// with no detail about which check failed.
func (h *Handlers) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	body, err := signature.PreserveRequestBody(r)
	if err != nil {
		h.logger.Error("Failed to read request body", err)
		writeJSON(w, http.StatusBadRequest, interactions.ErrorResponse{Error: "invalid request body"})
		return
	}

	if !h.verifier.VerifyRequest(r, body) {
		writeJSON(w, http.StatusUnauthorized, interactions.ErrorResponse{Error: "invalid signature"})
		return
	}

	interaction, err := interactions.ParseInteraction(body)
	if err != nil {
		h.logger.Warn("Rejected unparseable interaction body",
			logging.Field{"error", err.Error()},
		)
		writeJSON(w, http.StatusBadRequest, interactions.ErrorResponse{Error: "invalid request body"})
		return
	}

	status, response := h.dispatcher.Dispatch(r.Context(), interaction)
	writeJSON(w, status, response)
}

// HealthCheck reports liveness. It requires no authentication and never
// touches the bus.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
