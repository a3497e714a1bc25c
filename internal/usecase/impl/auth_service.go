// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bcraftd/internal/delivery/context"
	"bcraftd/internal/domain/entity"
	domainerrors "bcraftd/internal/domain/errors"
	"bcraftd/internal/domain/repository"
	"bcraftd/internal/domain/service"
	"bcraftd/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new active, non-admin account and issues its first token.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration",
		slog.String("email", input.Email), slog.String("username", input.Username))

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("registration failed")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Email is checked before username so the caller learns about
		// conflicts in a stable order.
		if _, findErr := userRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "registration failed")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email uniqueness")
		}

		if _, findErr := userRepo.FindByUsername(ctx, input.Username); findErr == nil {
			return errors.Wrap(domainerrors.ErrUsernameAlreadyExists, "registration failed")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check username uniqueness")
		}

		newUser := &entity.User{
			Email:        input.Email,
			Username:     input.Username,
			PasswordHash: passwordHash,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			IsActive:     true,
			IsAdmin:      false,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user")
		}
		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed",
			slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	accessToken, err := srv.issueToken(registeredUser)
	if err != nil {
		srv.log(ctx).Error("Token issuance failed after registration",
			slog.Int64("userID", registeredUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.publishEvent(ctx, service.UserEventRegistered, registeredUser)
	srv.log(ctx).Info("User registered", slog.Int64("userID", registeredUser.ID))

	return &usecase.AuthOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		User:        registeredUser,
	}, nil
}

// Login verifies credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("identifier", input.Identifier))

	user, err := srv.loadLoginUser(ctx, input.Identifier)
	if err != nil {
		srv.log(ctx).Warn("Login failed",
			slog.String("identifier", input.Identifier), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound). An unknown
	// identifier and a wrong password must be indistinguishable to the caller.
	if !srv.hasher.Verify(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed",
			slog.String("identifier", input.Identifier), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login rejected for disabled account", slog.Int64("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountDisabled, "login failed")
	}

	accessToken, err := srv.issueToken(user)
	if err != nil {
		srv.log(ctx).Error("Token issuance failed during login",
			slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.publishEvent(ctx, service.UserEventLogin, user)
	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		User:        user,
	}, nil
}

// Authenticate resolves a bearer token to an active account.
func (srv *authService) Authenticate(ctx context.Context, tokenString string) (*entity.User, error) {
	claims, err := srv.tokenService.Decode(tokenString)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "authentication failed")
	}

	subject, _ := claims[service.ClaimSubject].(string)
	if subject == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token has no subject")
	}

	user, err := srv.findUserByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load authenticated user")
	}

	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrAccountDisabled, "authentication failed")
	}

	return user, nil
}

// VerifyToken decodes a token and reports its identity claims.
func (srv *authService) VerifyToken(_ context.Context, tokenString string) *usecase.TokenVerification {
	claims, err := srv.tokenService.Decode(tokenString)
	if err != nil {
		return &usecase.TokenVerification{Valid: false}
	}

	subject, _ := claims[service.ClaimSubject].(string)
	username, _ := claims[service.ClaimUsername].(string)

	return &usecase.TokenVerification{
		Valid:    true,
		Subject:  subject,
		UserID:   claimInt64(claims, service.ClaimUserID),
		Username: username,
	}
}

// Logout records the logout of the authenticated account. With stateless
// tokens there is nothing to revoke server-side.
func (srv *authService) Logout(ctx context.Context, user *entity.User) error {
	srv.publishEvent(ctx, service.UserEventLogout, user)
	srv.log(ctx).Info("User logged out", slog.Int64("userID", user.ID))

	return nil
}

// loadLoginUser resolves the login identifier from the primary to avoid stale
// reads on replicas right after a registration.
func (srv *authService) loadLoginUser(ctx context.Context, identifier string) (*entity.User, error) {
	var user *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, findErr := repoFactory.UserRepo().FindByIdentifier(ctx, identifier)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find user by identifier")
		}
		user = found

		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *authService) findUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, findErr := repoFactory.UserRepo().FindByEmail(ctx, email)
		if findErr != nil {
			return findErr
		}
		user = found

		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// issueToken mints the account's bearer token with the standard claim set.
func (srv *authService) issueToken(user *entity.User) (string, error) {
	return srv.tokenService.Issue(jwt.MapClaims{
		service.ClaimSubject:  user.Email,
		service.ClaimUserID:   user.ID,
		service.ClaimUsername: user.Username,
	})
}

func (srv *authService) publishEvent(ctx context.Context, eventType string, user *entity.User) {
	publishUserEvent(ctx, srv.log(ctx), srv.eventPublisher, eventType, user)
}

// claimInt64 reads a numeric claim. JSON decoding turns numbers into float64,
// while freshly issued claims may still hold the original int64.
func claimInt64(claims jwt.MapClaims, key string) int64 {
	switch v := claims[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}

// publishUserEvent emits an account lifecycle event. Failures are logged and
// swallowed: the audit trail must never fail the request that produced it.
func publishUserEvent(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, eventType string, user *entity.User) {
	if publisher == nil {
		return
	}

	event := &service.UserEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		EventType:  eventType,
		UserID:     user.ID,
		UserUUID:   user.UUID.String(),
		Email:      user.Email,
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishUserEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish audit event",
			slog.String("eventType", eventType),
			slog.Int64("userID", user.ID),
			slog.Any("error", err))
	}
}
