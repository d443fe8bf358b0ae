package router

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"config_service_backend/internal/config"
	"config_service_backend/internal/handlers"
	"config_service_backend/internal/middleware"
	"config_service_backend/internal/services"
)

// Setup initializes the routing for the application. db may be nil when the
// service starts without a database connection.
func Setup(engine *gin.Engine, cfg *config.Config, db *sql.DB) {
	tokenService := services.NewTokenService(cfg)

	healthHandler := handlers.NewHealthHandler(db)
	tokenHandler := handlers.NewTokenHandler(tokenService)
	runtimeHandler := handlers.NewRuntimeHandler(cfg)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	engine.GET("/healthz", healthHandler.Check)

	apiV1 := engine.Group("/api/v1")
	apiV1.POST("/auth/token", tokenHandler.Issue)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware(tokenService))
	authenticated.GET("/runtime/config", runtimeHandler.Show)
}
