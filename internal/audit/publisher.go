package audit

import (
	"context"
	"sync"
	"time"
)

// Publisher captures structured audit events. Implementations must be safe
// for concurrent use; emit failures are the publisher's problem, never the
// caller's.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// MemoryPublisher stores events in memory. Used by tests and by deployments
// without a Kafka cluster.
type MemoryPublisher struct {
	mu     sync.RWMutex
	events []Event
}

// NewMemoryPublisher creates an empty in-memory publisher.
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.Category == "" {
		event.Category = CategoryOf(event.Action)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a snapshot of everything emitted so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}

// ByAction filters the emitted events by action.
func (p *MemoryPublisher) ByAction(action AuditEvent) []Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []Event
	for _, event := range p.events {
		if event.Action == action {
			out = append(out, event)
		}
	}
	return out
}
