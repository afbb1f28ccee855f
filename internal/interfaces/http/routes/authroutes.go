package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers"
	"github.com/helpdesk-inc/helpdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter is optional; nil disables limiting of credential endpoints
	RateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	limit := func(c *gin.Context) { c.Next() }
	if config.RateLimiter != nil {
		limit = config.RateLimiter.Limit()
	}

	auth := engine.Group("/auth")
	{
		auth.POST("/", limit, config.AuthHandler.Register)
		auth.POST("/register", limit, config.AuthHandler.Register)
		auth.POST("/token", limit, config.AuthHandler.Login)
		auth.POST("/login", limit, config.AuthHandler.Login)

		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.GetCurrentUser)
	}
}
