package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"blocktrust/internal/failsafe/service"
	walletModels "blocktrust/internal/wallet/models"
	id "blocktrust/pkg/domain"
	dErrors "blocktrust/pkg/domain-errors"
)

// FailsafeService is the slice of the orchestrator the failsafe handler needs.
type FailsafeService interface {
	ConfigureDuress(ctx context.Context, userID id.UserID, currentPassword, duressPassword string) error
	GetFailsafeStatus(ctx context.Context, userID id.UserID) (*service.Status, error)
	Sign(ctx context.Context, userID id.UserID, req walletModels.SigningRequest) (walletModels.SignatureResult, error)
}

type FailsafeHandler struct {
	svc FailsafeService
}

func NewFailsafeHandler(svc FailsafeService) *FailsafeHandler {
	return &FailsafeHandler{svc: svc}
}

func (h *FailsafeHandler) Register(r chi.Router) {
	r.Post("/failsafe/configure", h.handleConfigure)
	r.Get("/failsafe/status", h.handleStatus)
	r.Post("/panic", h.handlePanic)
}

type configureDuressRequest struct {
	CurrentPassword string `json:"current_password"`
	DuressPassword  string `json:"duress_password"`
}

func (h *FailsafeHandler) handleConfigure(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req configureDuressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if !govalidator.StringLength(req.DuressPassword, "8", "256") {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "duress password must be 8-256 characters"))
		return
	}

	if err := h.svc.ConfigureDuress(r.Context(), userID, req.CurrentPassword, req.DuressPassword); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"duress_configured": true})
}

type failsafeEventResponse struct {
	ID              string     `json:"id"`
	TriggeredAt     time.Time  `json:"triggered_at"`
	Reason          string     `json:"reason"`
	IdentityRevoked bool       `json:"identity_revoked"`
	RevocationTxRef *string    `json:"revocation_tx_ref,omitempty"`
	SettledAt       *time.Time `json:"settled_at,omitempty"`
}

type failsafeStatusResponse struct {
	DuressConfigured    bool                    `json:"duress_configured"`
	LastDuressTriggerAt *time.Time              `json:"last_duress_trigger_at,omitempty"`
	IdentityActive      bool                    `json:"identity_active"`
	Events              []failsafeEventResponse `json:"events"`
}

func (h *FailsafeHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	status, err := h.svc.GetFailsafeStatus(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	events := make([]failsafeEventResponse, 0, len(status.Events))
	for _, event := range status.Events {
		events = append(events, failsafeEventResponse{
			ID:              event.ID.String(),
			TriggeredAt:     event.TriggeredAt,
			Reason:          event.Reason,
			IdentityRevoked: event.IdentityRevoked,
			RevocationTxRef: event.RevocationTxRef,
			SettledAt:       event.SettledAt,
		})
	}
	writeJSON(w, http.StatusOK, failsafeStatusResponse{
		DuressConfigured:    status.DuressConfigured,
		LastDuressTriggerAt: status.LastDuressTriggerAt,
		IdentityActive:      status.IdentityActive,
		Events:              events,
	})
}

type panicRequest struct {
	Payload string `json:"payload"`
}

// handlePanic is the explicit emergency trigger: no password classification,
// the duress path runs unconditionally for the authenticated caller.
func (h *FailsafeHandler) handlePanic(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req panicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	payload := req.Payload
	if payload == "" {
		payload = "emergency trigger"
	}

	result, err := h.svc.Sign(r.Context(), userID, walletModels.SigningRequest{
		Payload:          []byte(payload),
		FailsafeOverride: true,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
