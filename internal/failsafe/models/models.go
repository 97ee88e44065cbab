package models

import (
	"time"

	id "blocktrust/pkg/domain"
)

// FailsafeEvent is the append-only audit record of one duress-classified
// signing attempt. Created exactly once per duress request; after creation
// only the revocation outcome fields are backfilled, and only once.
//
// The two-phase write matters: the event is persisted before the registry
// call, so a crash mid-revocation leaves an auditable pending row instead of
// silence.
type FailsafeEvent struct {
	ID              id.EventID
	UserID          id.UserID
	TriggeredAt     time.Time
	Reason          string
	IdentityRevoked bool
	RevocationTxRef *string
	SettledAt       *time.Time
}

// Pending reports whether the revocation outcome has not been recorded yet.
func (e *FailsafeEvent) Pending() bool { return e.SettledAt == nil }

// IdentityAsset mirrors the on-chain identity status for a user. The flag is
// eventually consistent with the registry; writes are individually atomic and
// Deactivate is one-way.
type IdentityAsset struct {
	UserID     id.UserID
	IdentityID string
	Active     bool
}
