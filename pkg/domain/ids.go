package domain

import (
	"github.com/google/uuid"

	dErrors "blocktrust/pkg/domain-errors"
)

// Typed identifiers for the core aggregates. Wrapping uuid.UUID keeps the
// compiler from letting a user id wander into an event id parameter.
type (
	UserID  uuid.UUID
	EventID uuid.UUID
)

func (id UserID) String() string  { return uuid.UUID(id).String() }
func (id EventID) String() string { return uuid.UUID(id).String() }

func (id UserID) IsZero() bool  { return uuid.UUID(id) == uuid.Nil }
func (id EventID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// NewEventID mints a fresh event identifier.
func NewEventID() EventID { return EventID(uuid.New()) }

// ParseUserID validates and converts a string into a UserID.
// IDs must be valid, non-empty, non-nil UUIDs.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return UserID(uuid.Nil), err
	}
	return UserID(u), nil
}

// ParseEventID validates and converts a string into an EventID.
func ParseEventID(s string) (EventID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return EventID(uuid.Nil), err
	}
	return EventID(u), nil
}

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "id is not a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be the nil UUID")
	}
	return u, nil
}
