package impl

import (
	"context"
	"testing"

	"bcraftd/internal/domain/entity"
	domainerrors "bcraftd/internal/domain/errors"
	"bcraftd/internal/domain/repository"
	"bcraftd/internal/domain/service"
	mockRepo "bcraftd/internal/mocks/repository"
	"bcraftd/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_Register_EmailConflict(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "taken@example.com", Username: "tester", Password: "Password123"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "registration failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: 3}, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestAuthService_Register_UsernameConflict(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "new@example.com", Username: "taken", Password: "Password123"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUsernameAlreadyExists, "registration failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(&entity.User{ID: 3}, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameAlreadyExists))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "new@example.com", Username: "tester", Password: "Password123"}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt exploded"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login_UnknownIdentifier(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByIdentifier(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "Password123"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "a@example.com", PasswordHash: "stored_hash", IsActive: true}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByIdentifier(ctx, "a@example.com").Return(user, nil)
	})

	fx.hasher.EXPECT().Verify("wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "a@example.com", Password: "wrong"})

	assert.Error(t, err)
	assert.Nil(t, output)

	// Indistinguishable from an unknown identifier.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "a@example.com", PasswordHash: "stored_hash", IsActive: false}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByIdentifier(ctx, "a@example.com").Return(user, nil)
	})

	// Password is checked before the state so probing stays impossible.
	fx.hasher.EXPECT().Verify("Password123", "stored_hash").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "a@example.com", Password: "Password123"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().Decode("bad-token").Return(nil, service.ErrInvalidToken)

	user, err := fx.service.Authenticate(ctx, "bad-token")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_Authenticate_MissingSubject(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().Decode("odd-token").Return(jwt.MapClaims{"exp": float64(9999999999)}, nil)

	user, err := fx.service.Authenticate(ctx, "odd-token")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_Authenticate_AccountGone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		Decode("valid-token").
		Return(jwt.MapClaims{service.ClaimSubject: "gone@example.com"}, nil)

	fx.onExecute(ctx, repository.ErrUserNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)
	})

	user, err := fx.service.Authenticate(ctx, "valid-token")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_Authenticate_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "a@example.com", IsActive: false}

	fx.tokenService.EXPECT().
		Decode("valid-token").
		Return(jwt.MapClaims{service.ClaimSubject: "a@example.com"}, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(user, nil)
	})

	authenticated, err := fx.service.Authenticate(ctx, "valid-token")

	assert.Error(t, err)
	assert.Nil(t, authenticated)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
}

func TestAuthService_Register_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "new@example.com", Username: "tester", Password: "Password123"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("jwt.MapClaims")).
		Return("", errors.New("signing failed"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to issue token")
}
