package registry

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// Memory is an in-process registry used by tests and no-chain deployments.
// It honors the contract's idempotency: cancelling an inactive identity
// succeeds as a no-op.
type Memory struct {
	mu     sync.Mutex
	assets map[string]*memoryAsset
	nextID int

	// CancelCalls counts Cancel invocations for assertions on idempotency.
	CancelCalls int
	// FailCancel forces Cancel to return an error, simulating chain outage.
	FailCancel error
}

type memoryAsset struct {
	identityID string
	active     bool
}

// NewMemory creates an empty in-memory registry.
func NewMemory() *Memory {
	return &Memory{assets: make(map[string]*memoryAsset), nextID: 1}
}

func (m *Memory) IsActive(ctx context.Context, ownerAddress string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	asset, ok := m.assets[ownerAddress]
	return ok && asset.active, nil
}

func (m *Memory) Cancel(ctx context.Context, ownerAddress, identityID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CancelCalls++
	if m.FailCancel != nil {
		return "", m.FailCancel
	}
	if asset, ok := m.assets[ownerAddress]; ok {
		asset.active = false
	}
	return fmt.Sprintf("0xcancel%s", identityID), nil
}

func (m *Memory) Mint(ctx context.Context, ownerAddress string, metadata []byte, previousID string) (string, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	identityID := strconv.Itoa(m.nextID)
	m.nextID++
	m.assets[ownerAddress] = &memoryAsset{identityID: identityID, active: true}
	return identityID, fmt.Sprintf("0xmint%s", identityID), nil
}

func (m *Memory) RegisterProof(ctx context.Context, docHash [32]byte, proofURL string) (string, error) {
	return fmt.Sprintf("0xproof%x", docHash[:4]), nil
}
