package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/iliyamo/bus-seat-roster/internal/config"
)

// Open connects to MySQL and verifies the connection.
func Open(cfg config.Config) (*sql.DB, error) {
	auth := cfg.DBUser
	if cfg.DBPass != "" {
		auth = fmt.Sprintf("%s:%s", cfg.DBUser, cfg.DBPass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// A roster service sees little traffic; keep the pool small.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// schema creates the roster tables.  Statements are idempotent so Migrate
// can run on every start.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS rosters (
		id         CHAR(36)   NOT NULL PRIMARY KEY,
		is_current TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME   NOT NULL,
		KEY idx_rosters_current (is_current)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS roster_passengers (
		roster_id      CHAR(36)     NOT NULL,
		position       INT UNSIGNED NOT NULL,
		order_number   INT          NOT NULL,
		name           VARCHAR(128) NOT NULL,
		payment_status VARCHAR(16)  NOT NULL,
		location       VARCHAR(16)  NOT NULL,
		seat_number    TINYINT UNSIGNED NULL,
		is_temporary   TINYINT(1)   NOT NULL DEFAULT 0,
		PRIMARY KEY (roster_id, position),
		CONSTRAINT fk_roster_passengers_roster FOREIGN KEY (roster_id) REFERENCES rosters (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates missing tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
