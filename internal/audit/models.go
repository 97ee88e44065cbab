package audit

import (
	"time"

	id "blocktrust/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies, storage backends, and routing.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance.
	// These require tamper-proof storage and long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to security monitoring and
	// forensics. These feed into SIEM systems and alerting pipelines.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers events useful for debugging and operational
	// visibility. These can be sampled with shorter retention.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	UserID    id.UserID     `json:"user_id"`
	Action    AuditEvent    `json:"action"`
	Decision  string        `json:"decision,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
	// PayloadHash traces which document a signing event concerned without
	// storing the payload itself.
	PayloadHash string `json:"payload_hash,omitempty"`
	// TxRef links chain-side effects (revocation, proof registration).
	TxRef string `json:"tx_ref,omitempty"`
}

type AuditEvent string

const (
	// Wallet events
	EventWalletCreated AuditEvent = "wallet_created"

	// Signing events
	EventSignatureIssued AuditEvent = "signature_issued"
	EventAuthFailed      AuditEvent = "auth_failed"

	// Failsafe events
	EventFailsafeTriggered  AuditEvent = "failsafe_triggered"
	EventDuressConfigured   AuditEvent = "duress_configured"
	EventPanicOverride      AuditEvent = "panic_override"
	EventRevocationSettled  AuditEvent = "revocation_settled"
	EventRevocationDeferred AuditEvent = "revocation_deferred"
)

// eventCategories maps each audit event to its category.
var eventCategories = map[AuditEvent]EventCategory{
	// Compliance events - require tamper-proof storage. Every fact about a
	// duress trigger is compliance-grade: it documents coercion.
	EventFailsafeTriggered: CategoryCompliance,
	EventRevocationSettled: CategoryCompliance,
	EventWalletCreated:     CategoryCompliance,

	// Security events - feed into SIEM and alerting
	EventAuthFailed:         CategorySecurity,
	EventDuressConfigured:   CategorySecurity,
	EventPanicOverride:      CategorySecurity,
	EventRevocationDeferred: CategorySecurity,

	// Operations events - routine activity, can be sampled
	EventSignatureIssued: CategoryOperations,
}

// CategoryOf returns the category for an event, defaulting to operations.
func CategoryOf(action AuditEvent) EventCategory {
	if category, ok := eventCategories[action]; ok {
		return category
	}
	return CategoryOperations
}
