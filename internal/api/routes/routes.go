package routes

import (
	"fmt"
	"net/http"

	"gtm-crm-backend/internal/api/handlers"
	"gtm-crm-backend/internal/api/middleware"
	"gtm-crm-backend/internal/auth"
	"gtm-crm-backend/internal/config"
	"gtm-crm-backend/internal/notify"
	"gtm-crm-backend/internal/repository"
	"gtm-crm-backend/internal/service"
	"gtm-crm-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. redisClient may be nil;
// notifier receives domain events and must not be nil.
func SetupRoutes(db *gorm.DB, cfg *config.Config, redisClient *redis.Client, notifier notify.Publisher) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	recordValidator := validation.Default()
	timeout := cfg.PersistenceTimeout()

	// Initialize repositories
	entityRepos := repository.NewEntityRepositories(db)
	listRepo := repository.NewListRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	entityService := service.NewEntityService(entityRepos, recordValidator, notifier, timeout)
	listService := service.NewListService(listRepo, recordValidator, notifier, timeout)
	membershipService := service.NewMembershipService(listRepo, entityRepos, notifier, timeout)
	projectionService := service.NewProjectionService(listRepo, entityRepos, timeout)
	formService := service.NewFormService(entityService, listService, membershipService, recordValidator, notifier)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	listHandler := handlers.NewListHandler(listService, membershipService, projectionService)
	formHandler := handlers.NewFormHandler(formService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentication routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Record routes, one collection per kind
		for path, kind := range handlers.EntityRoutes {
			entityHandler := handlers.NewEntityHandler(entityService, kind)
			records := v1.Group("/" + path)
			{
				records.POST("", entityHandler.CreateEntity)
				records.GET("", entityHandler.ListEntities)
				records.GET("/:id", entityHandler.GetEntity)
				records.PUT("/:id", entityHandler.UpdateEntity)
				records.DELETE("/:id", entityHandler.DeleteEntity)
			}
		}

		// List routes
		lists := v1.Group("/lists")
		{
			lists.POST("", listHandler.CreateList)
			lists.GET("", listHandler.GetLists)
			lists.GET("/:id", listHandler.GetList)
			lists.PUT("/:id", listHandler.UpdateList)
			lists.DELETE("/:id", listHandler.DeleteList)
			lists.GET("/:id/members", listHandler.GetMembers)
			lists.POST("/:id/members", listHandler.UpdateMembership)
			lists.POST("/:id/members/toggle", listHandler.ToggleMembership)
			lists.DELETE("/:id/members/:entityId", listHandler.RemoveMember)
			lists.GET("/:id/export", listHandler.ExportMembers)
		}

		// Create forms
		v1.POST("/forms/:kind", formHandler.Submit)
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

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, redisClient *redis.Client) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, redisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
