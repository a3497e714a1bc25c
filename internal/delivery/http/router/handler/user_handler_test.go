package handler

import (
	"net/http"
	"testing"

	"bcraftd/internal/delivery/http/middleware"
	"bcraftd/internal/domain/entity"
	domainerrors "bcraftd/internal/domain/errors"
	mockUC "bcraftd/internal/mocks/usecase"
	"bcraftd/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func adminActor() *entity.User {
	return &entity.User{ID: 1, Email: "admin@example.com", Username: "admin", IsActive: true, IsAdmin: true}
}

func regularActor(id int64) *entity.User {
	return &entity.User{ID: id, Email: "user@example.com", Username: "user", IsActive: true}
}

func TestUserHandler_List_Success(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := adminActor()
	active := true
	userUC.EXPECT().
		ListUsers(mock.Anything, actor, &usecase.ListUsersInput{Page: 2, PerPage: 5, IsActive: &active}).
		Return(&usecase.ListUsersOutput{
			Users: []*entity.User{{ID: 7, Email: "a@example.com", Username: "alice", IsActive: true}},
			Metadata: usecase.PaginationMetadata{
				Total: 6, Page: 2, PerPage: 5, TotalPages: 2, HasPrev: true,
			},
		}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/users?page=2&per_page=5&is_active=true", "")
	middleware.SetCurrentUser(c, actor)

	err := handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"total":6`)
	assert.Contains(t, rec.Body.String(), `"total_pages":2`)
}

func TestUserHandler_List_QueryDefaults(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := adminActor()

	// No query string: page 1, per_page 0 and no state filter. The usecase
	// applies the real page size default.
	userUC.EXPECT().
		ListUsers(mock.Anything, actor, &usecase.ListUsersInput{Page: 1, PerPage: 0, IsActive: nil}).
		Return(&usecase.ListUsersOutput{
			Users:    []*entity.User{},
			Metadata: usecase.PaginationMetadata{Page: 1, PerPage: 10, TotalPages: 1},
		}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")
	middleware.SetCurrentUser(c, actor)

	err := handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_List_Unauthenticated(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	c, rec := newTestContext(t, http.MethodGet, "/users", "")

	err := handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestUserHandler_List_Forbidden(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := regularActor(7)
	userUC.EXPECT().
		ListUsers(mock.Anything, actor, mock.AnythingOfType("*usecase.ListUsersInput")).
		Return(nil, errors.Wrap(domainerrors.ErrForbidden, "list users failed"))

	c, rec := newTestContext(t, http.MethodGet, "/users", "")
	middleware.SetCurrentUser(c, actor)

	err := handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestUserHandler_Count_DefaultsToActive(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	active := true
	userUC.EXPECT().CountUsers(mock.Anything, &active).Return(int64(42), nil)

	c, rec := newTestContext(t, http.MethodGet, "/users/count", "")

	err := handler.Count(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":42`)
	assert.Contains(t, rec.Body.String(), `"is_active":true`)
}

func TestUserHandler_Count_ExplicitFilter(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	inactive := false
	userUC.EXPECT().CountUsers(mock.Anything, &inactive).Return(int64(3), nil)

	c, rec := newTestContext(t, http.MethodGet, "/users/count?is_active=false", "")

	err := handler.Count(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":3`)
	assert.Contains(t, rec.Body.String(), `"is_active":false`)
}

func TestUserHandler_Get_Owner(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := regularActor(7)
	userUC.EXPECT().
		GetUser(mock.Anything, actor, int64(7)).
		Return(&entity.User{ID: 7, Email: "user@example.com", Username: "user", IsActive: true}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/users/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")
	middleware.SetCurrentUser(c, actor)

	err := handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestUserHandler_Get_InvalidID(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	c, rec := newTestContext(t, http.MethodGet, "/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	middleware.SetCurrentUser(c, adminActor())

	err := handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := adminActor()
	userUC.EXPECT().
		GetUser(mock.Anything, actor, int64(99)).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user failed"))

	c, rec := newTestContext(t, http.MethodGet, "/users/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	middleware.SetCurrentUser(c, actor)

	err := handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestUserHandler_Update_Success(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := regularActor(7)
	firstName := "Updated"
	userUC.EXPECT().
		UpdateUser(mock.Anything, actor, int64(7), &usecase.UpdateUserInput{FirstName: &firstName}).
		Return(&entity.User{ID: 7, Email: "user@example.com", Username: "user", FirstName: "Updated", IsActive: true}, nil)

	c, rec := newTestContext(t, http.MethodPut, "/users/7", `{"first_name":"Updated"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	middleware.SetCurrentUser(c, actor)

	err := handler.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User updated successfully")
	assert.Contains(t, rec.Body.String(), `"first_name":"Updated"`)
}

func TestUserHandler_Update_ValidationError(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	c, rec := newTestContext(t, http.MethodPut, "/users/7", `{"email":"not-an-email"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	middleware.SetCurrentUser(c, regularActor(7))

	err := handler.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_Update_ForbiddenStateChange(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := regularActor(7)
	userUC.EXPECT().
		UpdateUser(mock.Anything, actor, int64(7), mock.AnythingOfType("*usecase.UpdateUserInput")).
		Return(nil, errors.Wrap(domainerrors.ErrForbidden, "update user failed"))

	c, rec := newTestContext(t, http.MethodPut, "/users/7", `{"is_admin":true}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	middleware.SetCurrentUser(c, actor)

	err := handler.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestUserHandler_Delete_SoftByDefault(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := adminActor()
	userUC.EXPECT().DeleteUser(mock.Anything, actor, int64(42), false).Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/users/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	middleware.SetCurrentUser(c, actor)

	err := handler.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUserHandler_Delete_Hard(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := adminActor()
	userUC.EXPECT().DeleteUser(mock.Anything, actor, int64(42), true).Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/users/42?hard=true", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	middleware.SetCurrentUser(c, actor)

	err := handler.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUserHandler_Delete_SelfForbidden(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := adminActor()
	userUC.EXPECT().
		DeleteUser(mock.Anything, actor, actor.ID, false).
		Return(errors.Wrap(domainerrors.ErrSelfActionForbidden, "delete user failed"))

	c, rec := newTestContext(t, http.MethodDelete, "/users/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	middleware.SetCurrentUser(c, actor)

	err := handler.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "SELF_ACTION_FORBIDDEN")
}

func TestUserHandler_Activate_Success(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := adminActor()
	userUC.EXPECT().
		ActivateUser(mock.Anything, actor, int64(42)).
		Return(&entity.User{ID: 42, Email: "a@example.com", Username: "alice", IsActive: true}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/users/42/activate", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	middleware.SetCurrentUser(c, actor)

	err := handler.Activate(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User activated successfully")
	assert.Contains(t, rec.Body.String(), `"is_active":true`)
}

func TestUserHandler_Deactivate_Success(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	actor := adminActor()
	userUC.EXPECT().
		DeactivateUser(mock.Anything, actor, int64(42)).
		Return(&entity.User{ID: 42, Email: "a@example.com", Username: "alice", IsActive: false}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/users/42/deactivate", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	middleware.SetCurrentUser(c, actor)

	err := handler.Deactivate(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User deactivated successfully")
	assert.Contains(t, rec.Body.String(), `"is_active":false`)
}

func TestUserHandler_Me_Success(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(userUC, testLogger())

	c, rec := newTestContext(t, http.MethodGet, "/users/me", "")
	middleware.SetCurrentUser(c, regularActor(7))

	err := handler.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}
