// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ethos/internal/delivery/api/middleware"
	"ethos/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ProjectHandler      *handler.ProjectHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	projectHandler      *handler.ProjectHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		projectHandler:      params.ProjectHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint, not rate limited
	e.GET("/health", handler.HealthCheck)

	// Identify runs first so authenticated callers are limited per user instead of per IP
	api := e.Group("/api", r.authMiddleware.Identify, r.rateLimitMiddleware.Handle)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	usersGroup := api.Group("/users", r.authMiddleware.Authenticate)
	{
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	projectsGroup := api.Group("/projects", r.authMiddleware.Authenticate)
	{
		projectsGroup.POST("", r.projectHandler.CreateProject)
		projectsGroup.GET("", r.projectHandler.ListProjects)
		projectsGroup.GET("/:id", r.projectHandler.GetProject)
		projectsGroup.PUT("/:id", r.projectHandler.UpdateProject)
		projectsGroup.DELETE("/:id", r.projectHandler.DeleteProject)
	}
}
