package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies all schema statements. Statements are written to be
// idempotent so the whole list can re-run on every startup; "duplicate
// column name" errors from ALTER TABLE on an already-upgraded schema are
// tolerated.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS equipment (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		serial_number    TEXT NOT NULL UNIQUE,
		category         TEXT NOT NULL,
		location         TEXT NOT NULL,
		purchase_date    TEXT,
		last_maintenance TEXT,
		notes            TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	// parent_maintenance_id is a plain reference to the chain root, not an
	// ownership link: deleting the root must not cascade to successors.
	`CREATE TABLE IF NOT EXISTS maintenances (
		id                    TEXT PRIMARY KEY,
		title                 TEXT NOT NULL,
		description           TEXT NOT NULL DEFAULT '',
		equipment_id          TEXT NOT NULL REFERENCES equipment(id),
		equipment_name        TEXT NOT NULL,
		scheduled_date        TEXT NOT NULL,
		priority              TEXT NOT NULL DEFAULT 'medium'
		                      CHECK(priority IN ('low','medium','high')),
		status                TEXT NOT NULL DEFAULT 'planned'
		                      CHECK(status IN ('planned','in_progress','completed','archived')),
		assigned_to           TEXT NOT NULL DEFAULT '',
		notes                 TEXT NOT NULL DEFAULT '',
		maintenance_type      TEXT NOT NULL DEFAULT 'extraordinary'
		                      CHECK(maintenance_type IN ('routine','extraordinary')),
		is_recurring          INTEGER NOT NULL DEFAULT 0,
		frequency             TEXT NOT NULL DEFAULT '',
		parent_maintenance_id TEXT,
		completed_date        TEXT,
		completed_by          TEXT NOT NULL DEFAULT '',
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		type       TEXT NOT NULL
		           CHECK(type IN ('equipment_category','equipment_location','staff_role')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_maintenances_scheduled ON maintenances(scheduled_date)`,
	`CREATE INDEX IF NOT EXISTS idx_maintenances_status ON maintenances(status)`,
	`CREATE INDEX IF NOT EXISTS idx_maintenances_parent ON maintenances(parent_maintenance_id)`,
	`CREATE INDEX IF NOT EXISTS idx_maintenances_equipment ON maintenances(equipment_id)`,
}
