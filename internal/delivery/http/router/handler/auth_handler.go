// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bcraftd/internal/delivery/http/middleware"
	"bcraftd/internal/delivery/http/response"
	"bcraftd/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,username"`
	Password  string `json:"password" validate:"required,min=8,max=100,password"`
	FirstName string `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string `json:"last_name" validate:"required,min=2,max=50"`
}

// LoginRequest is the body of POST /auth/login. Identifier accepts either
// the account email or the username.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        *UserResponse `json:"user"`
}

// VerifyResponse reports the identity claims carried by a valid token.
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LogoutResponse confirms a logout request. The token itself stays valid
// until it expires; clients drop it locally.
type LogoutResponse struct {
	Message  string `json:"message"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// AuthHandler holds dependencies for registration and session handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Register handles new account creation and returns the first access token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toTokenResponse(output), "User registered successfully")
}

// Login authenticates with email or username plus password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTokenResponse(output), "Login successful")
}

// Me returns the profile of the authenticated account.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// Verify reports the identity claims of the presented token. The
// authentication middleware has already rejected invalid tokens and
// disabled accounts by the time this runs.
func (h *AuthHandler) Verify(c echo.Context) error {
	tokenString, ok := middleware.ExtractBearerToken(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing or malformed Authorization header")
	}

	verification := h.authUC.VerifyToken(c.Request().Context(), tokenString)
	if !verification.Valid {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	return response.Success(c, http.StatusOK, VerifyResponse{
		Valid:    verification.Valid,
		UserID:   verification.UserID,
		Username: verification.Username,
		Email:    verification.Subject,
	}, "Token is valid")
}

// Logout records the logout for auditing. Stateless tokens cannot be
// revoked server side.
func (h *AuthHandler) Logout(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	if err := h.authUC.Logout(c.Request().Context(), user); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LogoutResponse{
		Message:  "Successfully logged out",
		UserID:   user.ID,
		Username: user.Username,
	}, "Logout successful")
}

func toTokenResponse(output *usecase.AuthOutput) *TokenResponse {
	return &TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		User:        toUserResponse(output.User),
	}
}
