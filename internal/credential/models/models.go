package models

import "time"

// CredentialPair holds the two password hashes for one account. The duress
// hash is nullable until configured; LastDuressTriggerAt is the only field
// that mutates after configuration.
//
// DuressPasswordHash != NormalPasswordHash is enforced at configuration time
// only. Classification deliberately does not re-check it: the resolver must
// keep working even if later data corruption violates the invariant.
type CredentialPair struct {
	NormalPasswordHash  string
	DuressPasswordHash  *string
	DuressConfigured    bool
	LastDuressTriggerAt *time.Time
}
