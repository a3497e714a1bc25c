package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditEventModel mirrors the 'audit_events' table written by the audit worker.
// The unique index on EventID makes Pub/Sub redelivery idempotent.
type AuditEventModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EventID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	EventType  string    `gorm:"type:varchar(50);not null;index"`
	UserID     int64     `gorm:"not null;index"`
	UserUUID   uuid.UUID `gorm:"type:uuid;not null"`
	Email      string    `gorm:"type:varchar(255);not null"`
	RequestID  string    `gorm:"type:varchar(64)"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditEventModel) TableName() string {
	return "audit_events"
}
