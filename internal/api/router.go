package api

import (
	"skyzone-backend/config"
	"skyzone-backend/internal/api/admin/download"
	adminOrder "skyzone-backend/internal/api/admin/order"
	"skyzone-backend/internal/api/auth"
	"skyzone-backend/internal/api/cards"
	"skyzone-backend/internal/api/orders"
	"skyzone-backend/internal/api/payments"
	"skyzone-backend/internal/api/uploads"
	"skyzone-backend/internal/database"
	"skyzone-backend/internal/middleware"
	"skyzone-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Redis is an accelerator here, not a dependency: lookups fall back to
	// the database when it is unreachable.
	if err := database.ConnectRedis(cfg); err != nil {
		if logger.Log != nil {
			logger.Log.Warn("redis unavailable, running without cache", zap.Error(err))
		}
		database.RedisClient = nil
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api)
		cards.RegisterRoutes(api)
		payments.RegisterRoutes(api)
		uploads.RegisterRoutes(api)

		// Customer routes
		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware())
		orders.RegisterRoutes(authed)

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminOrder.RegisterRoutes(admin)
			download.RegisterRoutes(admin)
		}
	}

	return router, nil
}
