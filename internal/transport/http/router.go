// Package httptransport is the thin HTTP layer. It delegates to domain
// services without embedding business logic so transport concerns remain
// isolated.
package httptransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blocktrust/internal/platform/metrics"
	"blocktrust/internal/platform/middleware"
	dErrors "blocktrust/pkg/domain-errors"
)

const requestTimeout = 30 * time.Second

// NewRouter wires all public endpoints behind the standard middleware chain.
// Everything under /api/v1 requires a bearer token.
func NewRouter(
	wallet *WalletHandler,
	failsafe *FailsafeHandler,
	validator middleware.JWTValidator,
	m *metrics.Metrics,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(requestTimeout))
	if m != nil {
		r.Use(middleware.LatencyMiddleware(m))
	}

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, logger))
		r.Use(middleware.ContentTypeJSON)

		wallet.Register(r)
		failsafe.Register(r)
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError centralizes domain error translation to HTTP responses.
// Keeping it here ensures consistent JSON error envelopes.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	writeJSON(w, statusOf(code), map[string]string{
		"error":             string(code),
		"error_description": publicMessage(err, code),
	})
}

// statusOf is the exhaustive error-code-to-status mapping. New codes must be
// added here; the default deliberately hides anything unmapped behind a 500.
func statusOf(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeUnauthorized, dErrors.CodeAuthentication:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeChainUnavailable:
		return http.StatusServiceUnavailable
	case dErrors.CodeInvariantViolation, dErrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the error text for client-safe codes and a generic
// line for server-side ones, so internals never leak through the envelope.
func publicMessage(err error, code dErrors.Code) string {
	switch code {
	case dErrors.CodeInternal, dErrors.CodeInvariantViolation:
		return "internal error"
	default:
		var de *dErrors.Error
		if errors.As(err, &de) {
			return de.Message
		}
		return "internal error"
	}
}
