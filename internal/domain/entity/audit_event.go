package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent is a persisted record of an account lifecycle event,
// written by the audit worker when it consumes published user events.
type AuditEvent struct {
	ID         int64     // Sequential primary key.
	EventID    uuid.UUID // Identifier carried by the published event, used for dedup.
	EventType  string    // One of the service.UserEvent* type constants.
	UserID     int64     // Account the event refers to.
	UserUUID   uuid.UUID // Public identifier of that account.
	Email      string    // Email at the time the event occurred.
	RequestID  string    // Request correlation id propagated from the API.
	OccurredAt time.Time // When the event happened in the producing service.
	CreatedAt  time.Time // When the record was persisted.
}
