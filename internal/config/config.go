// Package config assembles the runtime configuration of the service. Every
// knob enters the process through pkg/env; no other package reads the
// environment directly.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"config_service_backend/pkg/env"
)

// Environment variable names recognized by Load. Required variables have no
// fallback; a missing one fails Load with *env.MissingError.
const (
	EnvPort         = "PORT"
	EnvLogLevel     = "LOG_LEVEL"
	EnvCORSOrigins  = "CORS_ALLOWED_ORIGINS"
	EnvDBHost       = "DB_HOST"
	EnvDBPort       = "DB_PORT"
	EnvDBUser       = "DB_USER"
	EnvDBPassword   = "DB_PASSWORD"
	EnvDBName       = "DB_NAME"
	EnvDBSSLMode    = "DB_SSLMODE"
	EnvDBRequired   = "DB_REQUIRED"
	EnvJWTSecret    = "JWT_SECRET"
	EnvTokenTTL     = "TOKEN_TTL"
	EnvOperatorName = "OPERATOR_NAME"
	EnvOperatorHash = "OPERATOR_PASSWORD_HASH"
)

// Database holds the Postgres connection settings.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	// Required makes a failed connection fatal at startup. When false the
	// service boots degraded and /healthz reports the database state.
	Required bool
}

// Config is the fully resolved runtime configuration.
type Config struct {
	Port               string
	LogLevel           string
	CORSAllowedOrigins []string

	Database Database

	JWTSecret string
	TokenTTL  time.Duration

	OperatorName         string
	OperatorPasswordHash string
}

// Load resolves the configuration from the process environment. Required
// values propagate *env.MissingError naming the offending variable; values
// that fail to parse are reported with the variable name as context.
func Load() (*Config, error) {
	jwtSecret, err := env.Get(EnvJWTSecret)
	if err != nil {
		return nil, err
	}
	operatorHash, err := env.Get(EnvOperatorHash)
	if err != nil {
		return nil, err
	}

	ttlStr := env.GetDefault(EnvTokenTTL, "72h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid duration %q: %w", EnvTokenTTL, ttlStr, err)
	}

	dbRequiredStr := env.GetDefault(EnvDBRequired, "false")
	dbRequired, err := strconv.ParseBool(dbRequiredStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid boolean %q: %w", EnvDBRequired, dbRequiredStr, err)
	}

	return &Config{
		Port:               env.GetDefault(EnvPort, "8080"),
		LogLevel:           env.GetDefault(EnvLogLevel, "info"),
		CORSAllowedOrigins: splitOrigins(env.GetDefault(EnvCORSOrigins, "http://localhost:3000,http://localhost:3001")),
		Database: Database{
			Host:     env.GetDefault(EnvDBHost, "localhost"),
			Port:     env.GetDefault(EnvDBPort, "5432"),
			User:     env.GetDefault(EnvDBUser, "config_service"),
			Password: env.GetDefault(EnvDBPassword, ""),
			Name:     env.GetDefault(EnvDBName, "config_service_db"),
			SSLMode:  env.GetDefault(EnvDBSSLMode, "disable"),
			Required: dbRequired,
		},
		JWTSecret:            jwtSecret,
		TokenTTL:             ttl,
		OperatorName:         env.GetDefault(EnvOperatorName, "operator"),
		OperatorPasswordHash: operatorHash,
	}, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
