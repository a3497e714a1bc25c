package impl

import (
	"context"
	"testing"

	"bcraftd/internal/domain/entity"
	domainerrors "bcraftd/internal/domain/errors"
	"bcraftd/internal/domain/repository"
	mockRepo "bcraftd/internal/mocks/repository"
	"bcraftd/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestUserService_ListUsers_Forbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	output, err := fx.service.ListUsers(ctx, regularActor(42), &usecase.ListUsersInput{Page: 1})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_CountUsers_RepositoryError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().Count(ctx, (*bool)(nil)).Return(int64(0), errors.New("db error"))

	total, err := fx.service.CountUsers(ctx, nil)

	assert.Error(t, err)
	assert.Zero(t, total)
	assert.Contains(t, err.Error(), "failed to count users")
}

func TestUserService_GetUser_Forbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	// A regular account cannot read someone else's profile.
	user, err := fx.service.GetUser(ctx, regularActor(42), 43)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, adminActor(), 42)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateUser_ForbiddenOtherAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	firstName := "New"

	user, err := fx.service.UpdateUser(ctx, regularActor(42), 43, &usecase.UpdateUserInput{FirstName: &firstName})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_UpdateUser_StateChangeNeedsAdmin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	inactive := false

	// Owners cannot flip their own account state.
	user, err := fx.service.UpdateUser(ctx, regularActor(42), 42, &usecase.UpdateUserInput{IsActive: &inactive})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_UpdateUser_AdminFlagNeedsAdmin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := true

	user, err := fx.service.UpdateUser(ctx, regularActor(42), 42, &usecase.UpdateUserInput{IsAdmin: &admin})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_UpdateUser_EmailConflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: 42, Email: "a@example.com", Username: "alice"}
	takenEmail := "taken@example.com"

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "update failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(existing, nil)
		mockUserRepo.EXPECT().FindByEmail(ctx, takenEmail).Return(&entity.User{ID: 3, Email: takenEmail}, nil)
	})

	user, err := fx.service.UpdateUser(ctx, regularActor(42), 42, &usecase.UpdateUserInput{Email: &takenEmail})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestUserService_UpdateUser_UsernameConflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: 42, Email: "a@example.com", Username: "alice"}
	takenUsername := "taken"

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUsernameAlreadyExists, "update failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(existing, nil)
		mockUserRepo.EXPECT().FindByUsername(ctx, takenUsername).Return(&entity.User{ID: 3, Username: takenUsername}, nil)
	})

	user, err := fx.service.UpdateUser(ctx, regularActor(42), 42, &usecase.UpdateUserInput{Username: &takenUsername})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameAlreadyExists))
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	firstName := "New"

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserNotFound, "update failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)
	})

	user, err := fx.service.UpdateUser(ctx, adminActor(), 42, &usecase.UpdateUserInput{FirstName: &firstName})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_DeleteUser_Forbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	err := fx.service.DeleteUser(ctx, regularActor(42), 43, false)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_DeleteUser_SelfForbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := adminActor()

	err := fx.service.DeleteUser(ctx, admin, admin.ID, false)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfActionForbidden))
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserNotFound, "delete failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.DeleteUser(ctx, adminActor(), 42, true)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_ActivateUser_Forbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	user, err := fx.service.ActivateUser(ctx, regularActor(42), 43)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_DeactivateUser_SelfForbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := adminActor()

	user, err := fx.service.DeactivateUser(ctx, admin, admin.ID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfActionForbidden))
}

func TestUserService_DeactivateUser_UpdateError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	target := &entity.User{ID: 42, Username: "alice", IsActive: true}

	fx.onExecute(ctx, errors.Wrap(errors.New("db error"), "failed to update account state"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(target, nil)
		mockUserRepo.EXPECT().Update(ctx, target).Return(errors.New("db error"))
	})

	user, err := fx.service.DeactivateUser(ctx, adminActor(), 42)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "failed to update account state")
}
