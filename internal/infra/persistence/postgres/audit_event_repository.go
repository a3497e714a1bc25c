package postgres

import (
	"context"

	"bcraftd/internal/domain/entity"
	domainerrors "bcraftd/internal/domain/errors"
	"bcraftd/internal/domain/repository"
	"bcraftd/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditEventRepository implements the domain.AuditEventRepository interface using GORM.
type auditEventRepository struct {
	db *gorm.DB
}

// NewAuditEventRepository is the constructor for auditEventRepository.
func NewAuditEventRepository(db *gorm.DB) repository.AuditEventRepository {
	return &auditEventRepository{db: db}
}

// Create persists an audit event. Pub/Sub delivers at least once, so a
// duplicate EventID is treated as an already-processed event, not a failure.
func (repo *auditEventRepository) Create(ctx context.Context, event *entity.AuditEvent) error {
	eventM := fromAuditEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindByEventID retrieves a persisted event by the publisher-assigned id.
func (repo *auditEventRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) (*entity.AuditEvent, error) {
	var eventM model.AuditEventModel
	if err := repo.db.WithContext(ctx).Where("event_id = ?", eventID).First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuditEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find audit event by event id")
	}

	return toAuditEventDomain(&eventM), nil
}

// ListByUserID returns the most recent events for one account, newest first.
func (repo *auditEventRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]*entity.AuditEvent, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var eventMs []*model.AuditEventModel
	if err := query.Find(&eventMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit events by user id")
	}

	events := make([]*entity.AuditEvent, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, toAuditEventDomain(eventM))
	}

	return events, nil
}

// toAuditEventDomain maps a persistence model to a pure domain entity.
func toAuditEventDomain(eventM *model.AuditEventModel) *entity.AuditEvent {
	return &entity.AuditEvent{
		ID:         eventM.ID,
		EventID:    eventM.EventID,
		EventType:  eventM.EventType,
		UserID:     eventM.UserID,
		UserUUID:   eventM.UserUUID,
		Email:      eventM.Email,
		RequestID:  eventM.RequestID,
		OccurredAt: eventM.OccurredAt,
		CreatedAt:  eventM.CreatedAt,
	}
}

// fromAuditEventDomain maps a domain entity to its persistence model.
func fromAuditEventDomain(event *entity.AuditEvent) *model.AuditEventModel {
	return &model.AuditEventModel{
		ID:         event.ID,
		EventID:    event.EventID,
		EventType:  event.EventType,
		UserID:     event.UserID,
		UserUUID:   event.UserUUID,
		Email:      event.Email,
		RequestID:  event.RequestID,
		OccurredAt: event.OccurredAt,
		CreatedAt:  event.CreatedAt,
	}
}
