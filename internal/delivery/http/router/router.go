// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"enroll/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	accountGroup := e.Group("/account")
	{
		accountGroup.POST("/signup", r.accountHandler.SignUp)
		accountGroup.POST("/signin", r.accountHandler.SignIn)
		accountGroup.GET("/verify/:accountId/:token", r.accountHandler.Verify)
		accountGroup.GET("/verified", r.accountHandler.Verified)
	}
}
