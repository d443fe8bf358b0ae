package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"config_service_backend/internal/config"
)

// RuntimeHandler echoes the resolved, non-secret runtime configuration so
// operators can see what the environment actually supplied. Secrets (the
// signing key, the database password, the credential hash) are never
// included.
type RuntimeHandler struct {
	cfg *config.Config
}

// NewRuntimeHandler creates a new RuntimeHandler.
func NewRuntimeHandler(cfg *config.Config) *RuntimeHandler {
	return &RuntimeHandler{cfg: cfg}
}

// Show handles GET /api/v1/runtime/config.
func (h *RuntimeHandler) Show(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"port":                 h.cfg.Port,
		"log_level":            h.cfg.LogLevel,
		"cors_allowed_origins": h.cfg.CORSAllowedOrigins,
		"token_ttl":            h.cfg.TokenTTL.String(),
		"operator_name":        h.cfg.OperatorName,
		"database": gin.H{
			"host":     h.cfg.Database.Host,
			"port":     h.cfg.Database.Port,
			"name":     h.cfg.Database.Name,
			"sslmode":  h.cfg.Database.SSLMode,
			"required": h.cfg.Database.Required,
		},
	})
}
