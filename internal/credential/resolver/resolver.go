// Package resolver classifies a submitted password as the account's normal
// password, its duress password, or neither. This is the security-critical
// branch point of the whole system: nothing observable — timing, error text,
// response shape — may reveal which comparison matched.
package resolver

import (
	"github.com/google/uuid"

	"blocktrust/internal/credential/models"
	"blocktrust/pkg/secrets"
)

// Outcome is the classification of one password attempt.
type Outcome int

const (
	// Rejected carries no further detail by contract.
	Rejected Outcome = iota
	Normal
	Duress
)

func (o Outcome) String() string {
	switch o {
	case Normal:
		return "normal"
	case Duress:
		return "duress"
	default:
		return "rejected"
	}
}

// Resolver classifies password attempts against a credential pair.
type Resolver struct {
	// decoyHash is a throwaway bcrypt hash compared against whenever a real
	// comparison is skipped, so every classification performs exactly two
	// bcrypt comparisons regardless of branch.
	decoyHash string
}

// New constructs a Resolver. Hashing the decoy filler costs one bcrypt call
// at startup, not per request.
func New() (*Resolver, error) {
	decoyHash, err := secrets.Hash(uuid.NewString())
	if err != nil {
		return nil, err
	}
	return &Resolver{decoyHash: decoyHash}, nil
}

// Classify checks the submitted password, duress hash first.
//
// The duress comparison runs only when a duress password is configured; on a
// duress match the normal hash is never consulted (the pair is distinct by
// construction, so the early classification cannot be wrong). To keep the
// branches timing-uniform, a skipped comparison is replaced with a comparison
// against the resolver's filler hash: every call performs two bcrypt
// comparisons with the same cost parameters.
func (r *Resolver) Classify(submitted string, pair models.CredentialPair) Outcome {
	duressHash := r.decoyHash
	if pair.DuressConfigured && pair.DuressPasswordHash != nil {
		duressHash = *pair.DuressPasswordHash
	}
	duressMatch := secrets.Matches(submitted, duressHash)

	secondHash := pair.NormalPasswordHash
	if duressMatch {
		secondHash = r.decoyHash
	}
	normalMatch := secrets.Matches(submitted, secondHash)

	switch {
	case duressMatch:
		return Duress
	case normalMatch:
		return Normal
	default:
		return Rejected
	}
}
