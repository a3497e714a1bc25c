package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bcraftd/internal/delivery/http/middleware"
	"bcraftd/internal/delivery/http/response"
	"bcraftd/internal/domain/entity"
	"bcraftd/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserResponse is the public view of an account. The password hash never
// leaves the persistence layer boundary.
type UserResponse struct {
	ID        int64     `json:"id"`
	UUID      string    `json:"uuid"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateUserRequest is the body of PUT /users/:id. Absent fields are left
// untouched.
type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	Username  *string `json:"username" validate:"omitempty,username"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=100,password"`
	FirstName *string `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,min=2,max=50"`
	IsActive  *bool   `json:"is_active"`
	IsAdmin   *bool   `json:"is_admin"`
}

// ListUsersResponse carries one page of accounts plus pagination metadata.
type ListUsersResponse struct {
	Items    []*UserResponse            `json:"items"`
	Metadata usecase.PaginationMetadata `json:"metadata"`
}

// CountUsersResponse is the public account counter.
type CountUsersResponse struct {
	Total    int64 `json:"total"`
	IsActive *bool `json:"is_active"`
}

// UserHandler holds dependencies for account management handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// List returns a page of accounts. Admin only.
func (h *UserHandler) List(c echo.Context) error {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	input := &usecase.ListUsersInput{
		Page:     intQueryParam(c, "page", 1),
		PerPage:  intQueryParam(c, "per_page", 0),
		IsActive: boolQueryParam(c, "is_active"),
	}

	output, err := h.userUC.ListUsers(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ListUsersResponse{
		Items:    toUserResponses(output.Users),
		Metadata: output.Metadata,
	}, "")
}

// Count returns the number of accounts. Public; defaults to active accounts.
func (h *UserHandler) Count(c echo.Context) error {
	isActive := boolQueryParam(c, "is_active")
	if isActive == nil {
		active := true
		isActive = &active
	}

	total, err := h.userUC.CountUsers(c.Request().Context(), isActive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CountUsersResponse{
		Total:    total,
		IsActive: isActive,
	}, "")
}

// Me returns the authenticated account's own profile.
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// Get returns one account. Owner or admin.
func (h *UserHandler) Get(c echo.Context) error {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), actor, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// Update applies a partial account update. Owner or admin.
func (h *UserHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), actor, userID, &usecase.UpdateUserInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated successfully")
}

// Delete deactivates an account, or removes it permanently with ?hard=true.
// Admin only.
func (h *UserHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	hardDelete := false
	if hard := boolQueryParam(c, "hard"); hard != nil {
		hardDelete = *hard
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), actor, userID, hardDelete); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Activate re-enables a deactivated account. Admin only.
func (h *UserHandler) Activate(c echo.Context) error {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.userUC.ActivateUser(c.Request().Context(), actor, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User activated successfully")
}

// Deactivate disables an account. Admin only.
func (h *UserHandler) Deactivate(c echo.Context) error {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.userUC.DeactivateUser(c.Request().Context(), actor, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User deactivated successfully")
}

func parseUserID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// intQueryParam parses an integer query parameter, falling back to def on
// absence or garbage.
func intQueryParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return value
}

// boolQueryParam parses an optional boolean query parameter. Returns nil when
// the parameter is absent or unparseable.
func boolQueryParam(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &value
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		UUID:      user.UUID.String(),
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsActive:  user.IsActive,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	responses := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}

	return responses
}
