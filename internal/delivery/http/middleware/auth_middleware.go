package middleware

import (
	"strings"

	"bcraftd/internal/delivery/http/response"
	"bcraftd/internal/domain/entity"
	"bcraftd/internal/usecase"

	"github.com/labstack/echo/v4"
)

// keyCurrentUser is the echo.Context key holding the authenticated user.
const keyCurrentUser = "currentUser"

// AuthMiddleware guards routes with bearer-token authentication.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the Authorization header and resolves it to an
// active account. The account is stored on the echo.Context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := ExtractBearerToken(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Missing or malformed Authorization header")
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		SetCurrentUser(c, user)

		return next(c)
	}
}

// RequireAdmin rejects requests from non-admin accounts.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := GetCurrentUser(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}

		if !user.IsAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Administrator privileges required")
		}

		return next(c)
	}
}

// ExtractBearerToken pulls the token out of the Authorization header.
func ExtractBearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}

// SetCurrentUser stores the authenticated user on the echo.Context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(keyCurrentUser, user)
}

// GetCurrentUser returns the authenticated user set by Authenticate.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keyCurrentUser).(*entity.User)
	if !ok || user == nil {
		return nil, false
	}

	return user, true
}
