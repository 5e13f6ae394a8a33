package postgres

import (
	"database/sql"
	"fmt"

	"event-booking/config"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Successfully connected to PostgreSQL")
	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		// date is ISO YYYY-MM-DD text: lexicographic order doubles as
		// chronological order. category is nullable on purpose; the
		// read side supplies the default.
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			category VARCHAR(100),
			date VARCHAR(10) NOT NULL,
			time VARCHAR(50) NOT NULL DEFAULT '',
			location VARCHAR(255) NOT NULL DEFAULT '',
			price INTEGER NOT NULL DEFAULT 0,
			available_seats INTEGER NOT NULL DEFAULT 0,
			image TEXT NOT NULL DEFAULT ''
		)`,

		// event_id carries no FK constraint: bookings are weak references
		// and survive event deletion.
		`CREATE TABLE IF NOT EXISTS bookings (
			id TEXT PRIMARY KEY,
			event_id TEXT NOT NULL,
			user_name VARCHAR(255) NOT NULL DEFAULT '',
			user_email VARCHAR(255) NOT NULL DEFAULT '',
			seats INTEGER NOT NULL,
			total_amount INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,
		`CREATE INDEX IF NOT EXISTS idx_events_category ON events(category)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_event_id ON bookings(event_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}
