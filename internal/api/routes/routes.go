package routes

import (
	"context"
	"net/http"

	"problem-selection-backend/internal/api/handlers"
	"problem-selection-backend/internal/api/middleware"
	"problem-selection-backend/internal/auth"
	"problem-selection-backend/internal/config"
	"problem-selection-backend/internal/logger"
	"problem-selection-backend/internal/metrics"
	"problem-selection-backend/internal/ratelimit"
	"problem-selection-backend/internal/repository"
	"problem-selection-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The returned
// cleanup releases the login limiter's resources.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, func(), error) {
	// Create router
	router := gin.New()

	m := metrics.New(prometheus.NewRegistry())

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(m.Middleware())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	problemRepo := repository.NewProblemRepository(db)
	selectionRepo := repository.NewSelectionRepository(db, repository.SelectionOptions{
		StatementTimeout: cfg.StatementTimeout,
		LockTimeout:      cfg.LockTimeout,
	})

	// Initialize services
	selectionService := service.NewSelectionService(selectionRepo, validator, service.RetryPolicy{
		MaxAttempts: cfg.SelectionMaxAttempts,
		BaseDelay:   cfg.SelectionRetryBaseDelay,
	}, m)
	problemService := service.NewProblemService(problemRepo)
	teamService := service.NewTeamService(teamRepo)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), teamRepo)
	if err != nil {
		return nil, nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Health checks; Redis is only checked when it backs the login limiter
	checks := map[string]handlers.HealthCheck{
		"database": handlers.DatabaseCheck(db),
	}

	var limiter ratelimit.RateLimiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		checks["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
		limiter = ratelimit.NewRedisRateLimiterFromClient(client)
		logger.New().WithField("addr", cfg.RedisAddr).Info("login throttling backed by redis")
	} else {
		limiter = ratelimit.NewMemoryRateLimiter()
		logger.New().Info("login throttling backed by process memory")
	}
	cleanup := func() { limiter.Close() }

	// Initialize handlers
	healthHandler := handlers.NewHealthHandlerWithChecks(checks)
	selectionHandler := handlers.NewSelectionHandler(selectionService)
	problemHandler := handlers.NewProblemHandler(problemService)
	teamHandler := handlers.NewTeamHandler(teamService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Public routes
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/login",
			ratelimit.Middleware(limiter, cfg.LoginRateLimit, cfg.LoginRateWindow, ratelimit.KeyByIP, m),
			authHandler.Login,
		)
	}

	// Everything else requires a bearer token
	protected := v1.Group("", authMiddleware.RequireAuth())
	{
		protected.POST("/selection", selectionHandler.SelectProblem)

		problems := protected.Group("/problems")
		{
			problems.GET("", problemHandler.ListProblems)
			problems.GET("/:id", problemHandler.GetProblem)
			problems.GET("/:id/availability", problemHandler.GetAvailability)
		}

		teams := protected.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/me", teamHandler.GetMyTeam)
			teams.GET("/:teamId", teamHandler.GetTeam)
		}

		registerLegacyRoutes(protected, selectionHandler, problemHandler, teamHandler)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, cleanup, nil
}

// registerLegacyRoutes keeps the first-generation paths working as aliases
func registerLegacyRoutes(group *gin.RouterGroup, selection *handlers.SelectionHandler, problems *handlers.ProblemHandler, teams *handlers.TeamHandler) {
	group.POST("/problems/select", middleware.Deprecated("/api/v1/selection"), selection.SelectProblem)
	group.GET("/problems/availability/:id", middleware.Deprecated("/api/v1/problems/:id/availability"), problems.GetAvailability)
	group.GET("/teams/details/:teamId", middleware.Deprecated("/api/v1/teams/:teamId"), teams.GetTeam)
	group.GET("/teams/all", middleware.Deprecated("/api/v1/teams"), teams.ListTeams)
}
