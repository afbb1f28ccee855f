package http

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	ticketUsecases "github.com/helpdesk-inc/helpdesk/internal/application/ticket/usecases"
	userUsecases "github.com/helpdesk-inc/helpdesk/internal/application/user/usecases"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/auth"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/config"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/repository"
	"github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers"
	tickethandlers "github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/helpdesk-inc/helpdesk/internal/interfaces/http/routes"
	"github.com/helpdesk-inc/helpdesk/internal/shared/db"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/services/markdown"

	_ "github.com/helpdesk-inc/helpdesk/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	logger         logger.Interface
	authHandler    *handlers.AuthHandler
	ticketHandler  *tickethandlers.TicketHandler
	healthHandler  *handlers.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewRouter wires repositories, use cases and handlers. redisClient may be
// nil, in which case credential endpoints are not rate limited.
func NewRouter(gdb *gorm.DB, redisClient redis.Cmdable, cfg *config.Config, log logger.Interface) (*Router, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	if err != nil {
		return nil, err
	}
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	renderer := markdown.NewRenderer()
	txMgr := db.NewTransactionManager(gdb)

	userRepo := repository.NewUserRepository(gdb, log.Named("repository.user"))
	ticketRepo := repository.NewTicketRepository(gdb)

	registerUC := userUsecases.NewRegisterWithPasswordUseCase(userRepo, hasher, log)
	loginUC := userUsecases.NewLoginWithPasswordUseCase(userRepo, hasher, jwtService, log)
	authenticateUC := userUsecases.NewAuthenticateUseCase(jwtService, log)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, renderer, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, renderer, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, renderer, log)
	searchTicketsUC := ticketUsecases.NewSearchTicketsUseCase(ticketRepo, renderer, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, txMgr, renderer, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, txMgr, renderer, log)

	r := &Router{
		engine:         gin.New(),
		cfg:            cfg,
		logger:         log,
		authHandler:    handlers.NewAuthHandler(registerUC, loginUC, log),
		healthHandler:  handlers.NewHealthHandler(sqlDB, log),
		authMiddleware: middleware.NewAuthMiddleware(authenticateUC, log),
		ticketHandler: tickethandlers.NewTicketHandler(
			createTicketUC, getTicketUC, listTicketsUC, searchTicketsUC, updateTicketUC, deleteTicketUC, log,
		),
	}

	if redisClient != nil && cfg.RateLimit.Enabled {
		r.rateLimiter = middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
			"auth",
			log,
		)
	}

	return r, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	if r.cfg.Server.Mode != gin.ReleaseMode {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.engine.GET("/health", r.healthHandler.HealthCheck)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

var _ handlers.Pinger = (*sql.DB)(nil)
