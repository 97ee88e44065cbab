package audit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "blocktrust/pkg/domain"
)

func TestMemoryPublisher_EmitDefaults(t *testing.T) {
	pub := NewMemoryPublisher()
	userID := id.UserID(uuid.New())

	err := pub.Emit(context.Background(), Event{
		UserID: userID,
		Action: EventFailsafeTriggered,
	})
	require.NoError(t, err)

	events := pub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, CategoryCompliance, events[0].Category)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestMemoryPublisher_ExplicitFieldsKept(t *testing.T) {
	pub := NewMemoryPublisher()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	err := pub.Emit(context.Background(), Event{
		Category:  CategorySecurity,
		Timestamp: at,
		Action:    EventSignatureIssued,
	})
	require.NoError(t, err)

	events := pub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, CategorySecurity, events[0].Category)
	assert.True(t, events[0].Timestamp.Equal(at))
}

func TestMemoryPublisher_ByAction(t *testing.T) {
	pub := NewMemoryPublisher()
	ctx := context.Background()

	require.NoError(t, pub.Emit(ctx, Event{Action: EventWalletCreated}))
	require.NoError(t, pub.Emit(ctx, Event{Action: EventAuthFailed}))
	require.NoError(t, pub.Emit(ctx, Event{Action: EventAuthFailed}))

	assert.Len(t, pub.ByAction(EventAuthFailed), 2)
	assert.Len(t, pub.ByAction(EventWalletCreated), 1)
	assert.Empty(t, pub.ByAction(EventPanicOverride))
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryCompliance, CategoryOf(EventRevocationSettled))
	assert.Equal(t, CategorySecurity, CategoryOf(EventDuressConfigured))
	assert.Equal(t, CategoryOperations, CategoryOf(EventSignatureIssued))
	assert.Equal(t, CategoryOperations, CategoryOf(AuditEvent("unknown")))
}
