package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"config_service_backend/internal/config"
)

// Open establishes the Postgres connection described by cfg and verifies it
// with a ping. The caller owns the returned handle and decides whether a
// failure is fatal (cfg.Required is its hint, not enforced here).
func Open(cfg config.Database) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database %s at %s:%s: %w", cfg.Name, cfg.Host, cfg.Port, err)
	}

	return db, nil
}
