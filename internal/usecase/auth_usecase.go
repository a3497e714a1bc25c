// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bcraftd/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required to log in. Identifier is either the
// account email or the username.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// AuthOutput is returned after a successful registration or login.
type AuthOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// TokenVerification reports the outcome of inspecting a bearer token.
type TokenVerification struct {
	Valid    bool
	Subject  string
	UserID   int64
	Username string
}

// --- Usecase Interface ---

// AuthUsecase defines the interface for registration and session operations.
type AuthUsecase interface {
	// Register creates a new active, non-admin account and issues its first token.
	// A duplicate email or username results in a conflict error.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials against the stored hash and issues a token.
	// Unknown identifier and wrong password produce the same generic error;
	// a disabled account is reported distinctly.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Authenticate resolves a bearer token to an active account.
	// Used by the authentication middleware on every protected request.
	Authenticate(ctx context.Context, tokenString string) (*entity.User, error)

	// VerifyToken decodes a token and reports its identity claims without
	// touching the user store.
	VerifyToken(ctx context.Context, tokenString string) *TokenVerification

	// Logout records the logout. Tokens stay valid until expiry, so this
	// only emits the audit trail; clients discard the token themselves.
	Logout(ctx context.Context, user *entity.User) error
}
