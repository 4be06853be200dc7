package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"movie-discovery/internal/config"
)

// NewPostgres creates a new PostgreSQL connection and runs migrations.
func NewPostgres(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	slog.Info("connected to PostgreSQL", "db", cfg.DBName)

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS movies (
			id INTEGER PRIMARY KEY,
			title VARCHAR(500) NOT NULL,
			release_year INTEGER NOT NULL,
			genres TEXT[] NOT NULL DEFAULT '{}',
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			poster_url VARCHAR(500) DEFAULT '',
			overview TEXT DEFAULT '',
			updated_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS user_state (
			namespace VARCHAR(255) PRIMARY KEY,
			blob TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT NOW()
		)`,
		// Indexes for common query patterns
		`CREATE INDEX IF NOT EXISTS idx_movies_release_year ON movies(release_year)`,
		`CREATE INDEX IF NOT EXISTS idx_movies_rating ON movies(rating)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	slog.Info("database migrations completed")
	return nil
}
