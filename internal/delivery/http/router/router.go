// Package router contains routing setup for the HTTP delivery.
package router

import (
	"bcraftd/internal/delivery/http/middleware"
	"bcraftd/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler  *handler.HealthHandler
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler  *handler.HealthHandler
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:  params.HealthHandler,
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Session routes that require a valid token
	sessionGroup := e.Group("/auth")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("/me", r.authHandler.Me)
		sessionGroup.GET("/verify", r.authHandler.Verify)
		sessionGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public account statistics
	e.GET("/users/count", r.userHandler.Count)

	// Account routes for the owner or an admin; fine-grained access
	// rules live in the usecase layer.
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.PUT("/:id", r.userHandler.Update)
	}

	// Administrative account management
	adminGroup := e.Group("/users")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("", r.userHandler.List)
		adminGroup.DELETE("/:id", r.userHandler.Delete)
		adminGroup.POST("/:id/activate", r.userHandler.Activate)
		adminGroup.POST("/:id/deactivate", r.userHandler.Deactivate)
	}
}
