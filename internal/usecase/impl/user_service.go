// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bcraftd/internal/delivery/context"
	"bcraftd/internal/domain/constants"
	"bcraftd/internal/domain/entity"
	domainerrors "bcraftd/internal/domain/errors"
	"bcraftd/internal/domain/repository"
	"bcraftd/internal/domain/service"
	"bcraftd/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns one page of accounts. Reads may hit replicas; listings
// tolerate slightly stale data.
func (srv *userService) ListUsers(ctx context.Context, actor *entity.User, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	if !actor.IsAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "listing users requires admin rights")
	}

	page, perPage := normalizePagination(input.Page, input.PerPage)

	users, err := srv.userRepo.List(ctx, repository.ListUsersFilter{
		IsActive: input.IsActive,
		Offset:   (page - 1) * perPage,
		Limit:    perPage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	total, err := srv.userRepo.Count(ctx, input.IsActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	return &usecase.ListUsersOutput{
		Users:    users,
		Metadata: buildPaginationMetadata(total, page, perPage),
	}, nil
}

// CountUsers returns the number of accounts, optionally filtered by state.
func (srv *userService) CountUsers(ctx context.Context, isActive *bool) (int64, error) {
	total, err := srv.userRepo.Count(ctx, isActive)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return total, nil
}

// GetUser returns a single account, readable by its owner or an admin.
func (srv *userService) GetUser(ctx context.Context, actor *entity.User, userID int64) (*entity.User, error) {
	if !actor.CanAccess(userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "you can only view your own profile")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser applies a partial update to an account.
func (srv *userService) UpdateUser(ctx context.Context, actor *entity.User, userID int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	if !actor.CanAccess(userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "you can only modify your own profile")
	}

	// Account state and role changes are reserved for admins. For everyone
	// else the dangerous one is deactivating their own account.
	if !actor.IsAdmin && (input.IsActive != nil || input.IsAdmin != nil) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "changing account state requires admin rights")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	var newPasswordHash string
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("update failed")
		}
		newPasswordHash = hash
	}

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "update failed")
			}

			return errors.Wrap(findErr, "failed to find user")
		}

		if applyErr := srv.applyUserChanges(ctx, userRepo, user, input, newPasswordHash); applyErr != nil {
			return applyErr
		}

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update user")
		}
		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User update failed", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, service.UserEventUpdated, updatedUser)
	srv.log(ctx).Info("User updated", slog.Int64("userID", userID))

	return updatedUser, nil
}

// applyUserChanges mutates the loaded entity with the requested fields,
// re-checking uniqueness for a changed email or username.
func (srv *userService) applyUserChanges(
	ctx context.Context,
	userRepo repository.UserRepository,
	user *entity.User,
	input *usecase.UpdateUserInput,
	newPasswordHash string,
) error {
	if input.Email != nil && *input.Email != user.Email {
		existing, err := userRepo.FindByEmail(ctx, *input.Email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		if existing != nil && existing.ID != user.ID {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "update failed")
		}
		user.Email = *input.Email
	}

	if input.Username != nil && *input.Username != user.Username {
		existing, err := userRepo.FindByUsername(ctx, *input.Username)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username uniqueness")
		}
		if existing != nil && existing.ID != user.ID {
			return errors.Wrap(domainerrors.ErrUsernameAlreadyExists, "update failed")
		}
		user.Username = *input.Username
	}

	if newPasswordHash != "" {
		user.PasswordHash = newPasswordHash
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}

	return nil
}

// DeleteUser deactivates an account, or removes it permanently when hardDelete is set.
func (srv *userService) DeleteUser(ctx context.Context, actor *entity.User, userID int64, hardDelete bool) error {
	if !actor.IsAdmin {
		return errors.Wrap(domainerrors.ErrForbidden, "deleting users requires admin rights")
	}
	if actor.ID == userID {
		return errors.Wrap(domainerrors.ErrSelfActionForbidden, "you cannot delete your own account")
	}

	var deletedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "delete failed")
			}

			return errors.Wrap(findErr, "failed to find user")
		}

		if hardDelete {
			if delErr := userRepo.Delete(ctx, userID); delErr != nil {
				return errors.Wrap(delErr, "failed to delete user")
			}
		} else {
			user.IsActive = false
			if updateErr := userRepo.Update(ctx, user); updateErr != nil {
				return errors.Wrap(updateErr, "failed to deactivate user")
			}
		}
		deletedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User deletion failed",
			slog.Int64("userID", userID), slog.Bool("hard", hardDelete), slog.Any("error", err))

		return err
	}

	srv.publishEvent(ctx, service.UserEventDeleted, deletedUser)
	srv.log(ctx).Info("User deleted", slog.Int64("userID", userID), slog.Bool("hard", hardDelete))

	return nil
}

// ActivateUser re-enables a deactivated account.
func (srv *userService) ActivateUser(ctx context.Context, actor *entity.User, userID int64) (*entity.User, error) {
	if !actor.IsAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "activating users requires admin rights")
	}

	user, err := srv.setActiveState(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, service.UserEventActivated, user)
	srv.log(ctx).Info("User activated", slog.Int64("userID", userID))

	return user, nil
}

// DeactivateUser disables an account.
func (srv *userService) DeactivateUser(ctx context.Context, actor *entity.User, userID int64) (*entity.User, error) {
	if !actor.IsAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "deactivating users requires admin rights")
	}
	if actor.ID == userID {
		return nil, errors.Wrap(domainerrors.ErrSelfActionForbidden, "you cannot deactivate your own account")
	}

	user, err := srv.setActiveState(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, service.UserEventDeactivated, user)
	srv.log(ctx).Info("User deactivated", slog.Int64("userID", userID))

	return user, nil
}

func (srv *userService) setActiveState(ctx context.Context, userID int64, active bool) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "state change failed")
			}

			return errors.Wrap(findErr, "failed to find user")
		}

		found.IsActive = active
		if updateErr := userRepo.Update(ctx, found); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update account state")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account state change failed",
			slog.Int64("userID", userID), slog.Bool("active", active), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}

func (srv *userService) publishEvent(ctx context.Context, eventType string, user *entity.User) {
	publishUserEvent(ctx, srv.log(ctx), srv.eventPublisher, eventType, user)
}

// normalizePagination clamps page and page size into their allowed ranges.
func normalizePagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = constants.DefaultPageSize
	}
	if perPage > constants.MaxPageSize {
		perPage = constants.MaxPageSize
	}

	return page, perPage
}

// buildPaginationMetadata computes page counts the way the API documents them:
// totalPages is at least 1 even for an empty result set.
func buildPaginationMetadata(total int64, page, perPage int) usecase.PaginationMetadata {
	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}

	return usecase.PaginationMetadata{
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
