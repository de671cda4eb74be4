package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trading-storefront/internal/config"
	contactHandler "trading-storefront/internal/contact/handler"
	contactRepository "trading-storefront/internal/contact/repository"
	contactService "trading-storefront/internal/contact/service"
	"trading-storefront/internal/database"
	"trading-storefront/internal/logger"
	"trading-storefront/internal/middleware"
	productHandler "trading-storefront/internal/product/handler"
	productRepository "trading-storefront/internal/product/repository"
	productService "trading-storefront/internal/product/service"
	userHandler "trading-storefront/internal/user/handler"
	userRepository "trading-storefront/internal/user/repository"
	userService "trading-storefront/internal/user/service"
)

func SetupRoutes(cfg *config.Config, db *database.Database) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Trading Storefront API",
			"version": "1.0.0",
			"status":  "active",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepo := userRepository.NewRepository(db)
	userSvc := userService.NewService(userRepo, cfg)
	userHdl := userHandler.NewHandler(userSvc)

	contactRepo := contactRepository.NewRepository(db)
	contactSvc := contactService.NewService(contactRepo)
	contactHdl := contactHandler.NewHandler(contactSvc)

	productRepo := productRepository.NewRepository(db)
	productSvc := productService.NewService(productRepo)
	productHdl := productHandler.NewHandler(productSvc)

	v1 := router.Group("/api/v1")
	{
		userHdl.RegisterRoutes(v1)
		contactHdl.RegisterRoutes(v1)
		productHdl.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHdl.RegisterProfileRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				contactHdl.RegisterAdminRoutes(admin)
				productHdl.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
