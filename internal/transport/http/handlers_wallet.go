package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	historyModels "blocktrust/internal/history/models"
	"blocktrust/internal/platform/middleware"
	walletModels "blocktrust/internal/wallet/models"
	id "blocktrust/pkg/domain"
	dErrors "blocktrust/pkg/domain-errors"
)

// WalletService is the slice of the orchestrator the wallet handler needs.
type WalletService interface {
	CreateWallet(ctx context.Context, userID id.UserID, password string) (*walletModels.WalletRecord, error)
	GetWallet(ctx context.Context, userID id.UserID) (*walletModels.WalletRecord, error)
	Sign(ctx context.Context, userID id.UserID, req walletModels.SigningRequest) (walletModels.SignatureResult, error)
	Verify(ctx context.Context, payload []byte, signature, address string) bool
	History(ctx context.Context, userID id.UserID) ([]*historyModels.SignatureRecord, error)
}

type WalletHandler struct {
	svc WalletService
}

func NewWalletHandler(svc WalletService) *WalletHandler {
	return &WalletHandler{svc: svc}
}

func (h *WalletHandler) Register(r chi.Router) {
	r.Post("/wallet", h.handleCreate)
	r.Get("/wallet", h.handleGet)
	r.Post("/wallet/sign", h.handleSign)
	r.Post("/wallet/verify", h.handleVerify)
	r.Get("/wallet/history", h.handleHistory)
}

type createWalletRequest struct {
	Password string `json:"password"`
}

type walletResponse struct {
	WalletID  string    `json:"wallet_id"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *WalletHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req createWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if !govalidator.StringLength(req.Password, "8", "256") {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "password must be 8-256 characters"))
		return
	}

	rec, err := h.svc.CreateWallet(r.Context(), userID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, walletResponse{
		WalletID:  rec.WalletID,
		Address:   rec.Address,
		CreatedAt: rec.CreatedAt,
	})
}

func (h *WalletHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	rec, err := h.svc.GetWallet(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, walletResponse{
		WalletID:  rec.WalletID,
		Address:   rec.Address,
		CreatedAt: rec.CreatedAt,
	})
}

type signRequest struct {
	Payload          string `json:"payload"`
	Password         string `json:"password"`
	FailsafeOverride bool   `json:"failsafe_override"`
	DocumentName     string `json:"document_name"`
	DocumentURL      string `json:"document_url"`
}

func (h *WalletHandler) handleSign(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req signRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if req.Payload == "" {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "payload cannot be empty"))
		return
	}
	if req.DocumentURL != "" && !govalidator.IsURL(req.DocumentURL) {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid document_url"))
		return
	}

	result, err := h.svc.Sign(r.Context(), userID, walletModels.SigningRequest{
		Payload:          []byte(req.Payload),
		Password:         req.Password,
		FailsafeOverride: req.FailsafeOverride,
		DocumentName:     req.DocumentName,
		DocumentURL:      req.DocumentURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	// Exhaustive on purpose: a new signature mode must be routed here
	// explicitly, not fall through to some default response shape.
	switch result.Mode {
	case walletModels.ModeNormal, walletModels.ModeDuress:
		writeJSON(w, http.StatusOK, result)
	default:
		writeError(w, dErrors.New(dErrors.CodeInvariantViolation, "unknown signature mode"))
	}
}

type verifyRequest struct {
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
	Address   string `json:"address"`
}

func (h *WalletHandler) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if req.Payload == "" || req.Signature == "" || req.Address == "" {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "payload, signature and address are required"))
		return
	}

	valid := h.svc.Verify(r.Context(), []byte(req.Payload), req.Signature, req.Address)
	writeJSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

type historyEntry struct {
	ID           string    `json:"id"`
	PayloadHash  string    `json:"payload_hash"`
	Signature    string    `json:"signature"`
	DocumentName string    `json:"document_name,omitempty"`
	DocumentURL  string    `json:"document_url,omitempty"`
	Mode         string    `json:"mode"`
	TxRef        *string   `json:"tx_ref,omitempty"`
	SignedAt     time.Time `json:"signed_at"`
}

func (h *WalletHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	records, err := h.svc.History(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	entries := make([]historyEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, historyEntry{
			ID:           rec.ID.String(),
			PayloadHash:  rec.PayloadHash,
			Signature:    rec.Signature,
			DocumentName: rec.DocumentName,
			DocumentURL:  rec.DocumentURL,
			Mode:         string(rec.Mode),
			TxRef:        rec.TxRef,
			SignedAt:     rec.SignedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"signatures": entries})
}

// callerID resolves the authenticated user from the request context. The auth
// middleware guarantees presence; a miss here is a programming error.
func callerID(r *http.Request) (id.UserID, error) {
	raw := middleware.GetUserID(r.Context())
	userID, err := id.ParseUserID(raw)
	if err != nil {
		return userID, dErrors.New(dErrors.CodeUnauthorized, "invalid caller identity")
	}
	return userID, nil
}
