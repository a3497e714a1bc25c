package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bcraftd/internal/domain/entity"
	"bcraftd/internal/domain/repository"
	"bcraftd/internal/domain/service"
	mockRepo "bcraftd/internal/mocks/repository"
	mockSvc "bcraftd/internal/mocks/service"
	"bcraftd/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	t            *testing.T
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:      txManager,
		Hasher:         hasher,
		TokenService:   tokenService,
		EventPublisher: publisher,
		Logger:         logger,
	})

	return authServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		publisher:    publisher,
	}
}

// onExecute stubs one transaction round: the callback runs against a factory
// prepared by setup, and Execute reports result as the transaction outcome.
func (fx authServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func (fx authServiceFixtures) expectPublish(ctx context.Context) {
	fx.publisher.EXPECT().
		PublishUserEvent(ctx, mock.AnythingOfType("*service.UserEvent")).
		Return(nil)
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:     "test@example.com",
		Username:  "tester",
		Password:  "Password123",
		FirstName: "Test",
		LastName:  "User",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = 1
				user.UUID = uuid.New()
			}).
			Return(nil)
	})

	fx.tokenService.EXPECT().
		Issue(jwt.MapClaims{
			service.ClaimSubject:  input.Email,
			service.ClaimUserID:   int64(1),
			service.ClaimUsername: input.Username,
		}).
		Return("signed-token", nil)

	fx.expectPublish(ctx)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)

	// New accounts start active and without admin rights.
	assert.True(t, output.User.IsActive)
	assert.False(t, output.User.IsAdmin)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           7,
		UUID:         uuid.New(),
		Email:        "a@example.com",
		Username:     "alice",
		PasswordHash: "stored_hash",
		IsActive:     true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByIdentifier(ctx, "alice").Return(user, nil)
	})

	fx.hasher.EXPECT().Verify("Password123", "stored_hash").Return(true)

	// The token subject is the account email even when logging in by username.
	fx.tokenService.EXPECT().
		Issue(jwt.MapClaims{
			service.ClaimSubject:  "a@example.com",
			service.ClaimUserID:   int64(7),
			service.ClaimUsername: "alice",
		}).
		Return("signed-token", nil)

	fx.expectPublish(ctx)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "Password123"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "a@example.com", IsActive: true}

	fx.tokenService.EXPECT().
		Decode("valid-token").
		Return(jwt.MapClaims{service.ClaimSubject: "a@example.com"}, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(user, nil)
	})

	authenticated, err := fx.service.Authenticate(ctx, "valid-token")

	require.NoError(t, err)
	assert.Equal(t, user, authenticated)
}

func TestAuthService_VerifyToken_Valid(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	// Decoded claims carry JSON numbers as float64.
	fx.tokenService.EXPECT().
		Decode("valid-token").
		Return(jwt.MapClaims{
			service.ClaimSubject:  "a@example.com",
			service.ClaimUserID:   float64(7),
			service.ClaimUsername: "alice",
		}, nil)

	verification := fx.service.VerifyToken(ctx, "valid-token")

	assert.True(t, verification.Valid)
	assert.Equal(t, "a@example.com", verification.Subject)
	assert.Equal(t, int64(7), verification.UserID)
	assert.Equal(t, "alice", verification.Username)
}

func TestAuthService_VerifyToken_Invalid(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().Decode("bad-token").Return(nil, service.ErrInvalidToken)

	verification := fx.service.VerifyToken(ctx, "bad-token")

	assert.False(t, verification.Valid)
	assert.Empty(t, verification.Subject)
}

func TestAuthService_Logout_EmitsEvent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 7, UUID: uuid.New(), Email: "a@example.com"}

	fx.publisher.EXPECT().
		PublishUserEvent(ctx, mock.AnythingOfType("*service.UserEvent")).
		Run(func(ctx context.Context, event *service.UserEvent) {
			assert.Equal(t, service.UserEventLogout, event.EventType)
			assert.Equal(t, user.ID, event.UserID)
			assert.Equal(t, user.UUID.String(), event.UserUUID)
			assert.Equal(t, user.Email, event.Email)

			// Every event gets a fresh identifier for worker-side dedup.
			_, parseErr := uuid.Parse(event.EventID)
			assert.NoError(t, parseErr)
		}).
		Return(nil)

	err := fx.service.Logout(ctx, user)

	require.NoError(t, err)
}

func TestAuthService_Logout_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "a@example.com"}

	fx.publisher.EXPECT().
		PublishUserEvent(ctx, mock.AnythingOfType("*service.UserEvent")).
		Return(assert.AnError)

	// The audit trail must never fail the request that produced it.
	err := fx.service.Logout(ctx, user)

	require.NoError(t, err)
}
