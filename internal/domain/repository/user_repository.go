// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bcraftd/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ListUsersFilter narrows and paginates List queries.
type ListUsersFilter struct {
	// IsActive filters by account state when non-nil.
	IsActive *bool
	// Offset and Limit implement page-based pagination. Limit <= 0 means no limit.
	Offset int
	Limit  int
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity and fills in its generated fields.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their sequential ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUUID retrieves a single user by their public identifier.
	FindByUUID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByIdentifier retrieves a single user whose email or username matches.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)

	// List returns users matching the filter, ordered by ID.
	List(ctx context.Context, filter ListUsersFilter) ([]*entity.User, error)

	// Count returns the number of users, optionally filtered by account state.
	Count(ctx context.Context, isActive *bool) (int64, error)

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user permanently.
	Delete(ctx context.Context, id int64) error
}
