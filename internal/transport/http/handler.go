package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"loadguard/internal/verification"
	dErrors "loadguard/pkg/domain-errors"
)

// Verifier is the engine contract the transport depends on. Both methods
// always resolve to decisions; the HTTP layer never sees an engine failure.
type Verifier interface {
	Verify(ctx context.Context, offer verification.LoadOffer) *verification.Result
	VerifyBatch(ctx context.Context, offers []verification.LoadOffer) []verification.BatchResult
}

// Handler is the thin HTTP layer. It validates payloads and delegates to the
// verification service; no business logic lives here.
type Handler struct {
	verifier Verifier
	logger   *slog.Logger
}

// NewHandler creates the HTTP handler.
func NewHandler(verifier Verifier, logger *slog.Logger) *Handler {
	return &Handler{
		verifier: verifier,
		logger:   logger,
	}
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	var offer verification.LoadOffer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed JSON body"))
		return
	}
	if err := validateOffer(offer); err != nil {
		writeError(w, err)
		return
	}

	result := h.verifier.Verify(r.Context(), offer)
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleVerifyBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	results := h.verifier.VerifyBatch(r.Context(), req.Offers)
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError centralizes domain error translation to HTTP responses, keeping
// JSON error envelopes consistent across handlers.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := dErrors.CodeInternal

	var de *dErrors.Error
	if errors.As(err, &de) {
		code = de.Code
		status = toHTTPStatus(de.Code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             string(code),
		"error_description": err.Error(),
	})
}

func toHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput, dErrors.CodeValidation:
		return http.StatusBadRequest
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
