package service

import (
	"context"
	"time"
)

// Account lifecycle event types published to the audit pipeline.
const (
	UserEventRegistered  = "user.registered"
	UserEventLogin       = "user.login"
	UserEventLogout      = "user.logout"
	UserEventUpdated     = "user.updated"
	UserEventActivated   = "user.activated"
	UserEventDeactivated = "user.deactivated"
	UserEventDeleted     = "user.deleted"
)

// UserEvent represents an account lifecycle event consumed by the audit worker.
type UserEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`             // Unique per event, used for dedup
	EventType  string    `json:"event_type"`
	UserID     int64     `json:"user_id"`
	UserUUID   string    `json:"user_uuid"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishUserEvent publishes an account lifecycle event for async processing
	PublishUserEvent(ctx context.Context, event *UserEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
