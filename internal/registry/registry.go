// Package registry abstracts the on-chain Identity Registry collaborator.
// The core never embeds registry-specific wire formats; it depends only on
// this contract.
package registry

import "context"

// Client is the Identity Registry boundary contract.
//
// Cancel of an already-inactive identity is a success: the registry treats it
// as a no-op, which keeps duress-triggered revocation idempotent under
// concurrent requests.
type Client interface {
	// IsActive reports whether the owner currently holds an active identity
	// asset.
	IsActive(ctx context.Context, ownerAddress string) (bool, error)

	// Cancel irreversibly revokes the identity asset. Returns a transaction
	// reference for the audit trail.
	Cancel(ctx context.Context, ownerAddress, identityID string) (txRef string, err error)

	// Mint issues a new identity asset, optionally superseding a previous one.
	Mint(ctx context.Context, ownerAddress string, metadata []byte, previousID string) (identityID, txRef string, err error)

	// RegisterProof notarizes a document hash on chain. Best effort; callers
	// treat failures as non-fatal.
	RegisterProof(ctx context.Context, docHash [32]byte, proofURL string) (txRef string, err error)
}
