package usecase

import (
	"context"

	"bcraftd/internal/domain/entity"
)

// ListUsersInput defines the pagination and filter parameters for ListUsers.
type ListUsersInput struct {
	// Page starts at 1.
	Page int
	// PerPage is clamped to the configured maximum.
	PerPage int
	// IsActive filters by account state when non-nil.
	IsActive *bool
}

// UpdateUserInput defines a partial account update. Nil fields are left untouched.
type UpdateUserInput struct {
	Email     *string
	Username  *string
	Password  *string
	FirstName *string
	LastName  *string
	IsActive  *bool
	IsAdmin   *bool
}

// PaginationMetadata describes the position of a page within the full result set.
type PaginationMetadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// ListUsersOutput carries one page of users plus its pagination metadata.
type ListUsersOutput struct {
	Users    []*entity.User
	Metadata PaginationMetadata
}

// UserUsecase defines the interface for account management operations.
// Operations taking an actor enforce the ownership and admin rules themselves,
// in addition to any route-level gating.
type UserUsecase interface {
	// ListUsers returns a page of accounts. Admin only.
	ListUsers(ctx context.Context, actor *entity.User, input *ListUsersInput) (*ListUsersOutput, error)

	// CountUsers returns the number of accounts, optionally filtered by state.
	CountUsers(ctx context.Context, isActive *bool) (int64, error)

	// GetUser returns a single account. Owner or admin.
	GetUser(ctx context.Context, actor *entity.User, userID int64) (*entity.User, error)

	// UpdateUser applies a partial update. Owner or admin; flipping IsActive
	// or IsAdmin requires admin rights, and changed email/username must stay unique.
	UpdateUser(ctx context.Context, actor *entity.User, userID int64, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser deactivates an account, or removes it permanently when
	// hardDelete is set. Admin only; admins cannot delete themselves.
	DeleteUser(ctx context.Context, actor *entity.User, userID int64, hardDelete bool) error

	// ActivateUser re-enables a deactivated account. Admin only.
	ActivateUser(ctx context.Context, actor *entity.User, userID int64) (*entity.User, error)

	// DeactivateUser disables an account. Admin only; admins cannot
	// deactivate themselves.
	DeactivateUser(ctx context.Context, actor *entity.User, userID int64) (*entity.User, error)
}
