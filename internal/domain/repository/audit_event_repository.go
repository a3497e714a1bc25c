package repository

import (
	"context"
	"errors"

	"bcraftd/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuditEventNotFound is a domain-specific error returned when an audit event is not found.
var ErrAuditEventNotFound = errors.New("audit event not found")

// AuditEventRepository persists account lifecycle events consumed by the audit worker.
type AuditEventRepository interface {
	// Create persists an audit event. Replaying the same EventID must not fail.
	Create(ctx context.Context, event *entity.AuditEvent) error

	// FindByEventID retrieves a persisted event by the publisher-assigned id.
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*entity.AuditEvent, error)

	// ListByUserID returns the most recent events for one account, newest first.
	ListByUserID(ctx context.Context, userID int64, limit int) ([]*entity.AuditEvent, error)
}
