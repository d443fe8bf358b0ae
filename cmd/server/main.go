package main

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"config_service_backend/internal/config"
	"config_service_backend/internal/database"
	"config_service_backend/internal/router"
	"config_service_backend/pkg/env"
	"config_service_backend/pkg/utils"
)

func main() {
	// The logger comes up before config.Load so load failures are reported
	// through it; the level is re-read here for that reason only.
	utils.InitLogger(env.GetDefault(config.EnvLogLevel, "info"))

	cfg, err := config.Load()
	if err != nil {
		var missing *env.MissingError
		if errors.As(err, &missing) {
			log.Fatal().Str("key", missing.Key).Msg("Required configuration value absent")
		}
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	var db *sql.DB
	db, err = database.Open(cfg.Database)
	if err != nil {
		if cfg.Database.Required {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		utils.LogWarnErr(err, "Database unavailable, starting degraded", map[string]interface{}{
			"host": cfg.Database.Host, "port": cfg.Database.Port,
		})
		db = nil
	}

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	router.Setup(engine, cfg, db)

	utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port})
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
