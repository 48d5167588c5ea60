package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "000_create_accounts",
		sql: `
			CREATE TABLE IF NOT EXISTS accounts (
				id            CHAR(36) PRIMARY KEY,
				email         VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				created_at    DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at    DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
			)`,
	},
	{
		version: "001_create_health_records",
		sql: `
			CREATE TABLE IF NOT EXISTS health_records (
				id          CHAR(36) PRIMARY KEY,
				user_id     CHAR(36) NOT NULL,
				type        VARCHAR(20) NOT NULL,
				title       VARCHAR(255) NOT NULL,
				description TEXT,
				value       DOUBLE,
				unit        VARCHAR(20),
				date        VARCHAR(20) NOT NULL,
				created_at  DATETIME NOT NULL,
				updated_at  DATETIME NOT NULL,
				FOREIGN KEY (user_id) REFERENCES accounts(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_health_records_user_date ON health_records (user_id, date)`,
	},
}

func RunMigrations(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		applied, err := isMigrationApplied(ctx, db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := executeMigration(ctx, db, m); err != nil {
			return err
		}

		logger.Info("applied migration", zap.String("version", m.version))
	}

	return nil
}

func isMigrationApplied(ctx context.Context, db *sql.DB, version string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?",
		version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", version, err)
	}
	return count > 0, nil
}

func executeMigration(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", m.version, err)
	}

	for _, stmt := range strings.Split(m.sql, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", m.version, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version) VALUES (?)",
		m.version,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", m.version, err)
	}

	return tx.Commit()
}
