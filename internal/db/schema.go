package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// SchemaVersion is bumped whenever the DDL below changes shape.
const SchemaVersion = 1

// Each gateway owns one of the DDL blocks below and re-applies it on
// construction via EnsureSchema; InitSchema applies all of them at once.
// Every statement is CREATE ... IF NOT EXISTS, never destructive.
//
// Tests must not hardcode CREATE TABLE statements: use GetSchemaSQL().

// ClientSchemaSQL creates the client table.
const ClientSchemaSQL = `
CREATE TABLE IF NOT EXISTS client (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT,
	last_name TEXT,
	phone_number TEXT
);
`

// WorkTypeSchemaSQL creates the extra_work_type catalog table.
const WorkTypeSchemaSQL = `
CREATE TABLE IF NOT EXISTS extra_work_type (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT NOT NULL,
	payment REAL,
	type TEXT
);
`

// WorkerSchemaSQL creates post, duties, post_duties and worker.
const WorkerSchemaSQL = `
CREATE TABLE IF NOT EXISTS post (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS duties (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS post_duties (
	post_id INTEGER,
	duty_id INTEGER,
	PRIMARY KEY (post_id, duty_id),
	FOREIGN KEY (post_id) REFERENCES post(id),
	FOREIGN KEY (duty_id) REFERENCES duties(id)
);

CREATE TABLE IF NOT EXISTS worker (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name TEXT NOT NULL,
	sex TEXT,
	phone_number TEXT,
	passport_number TEXT,
	passport_series TEXT,
	post_id INTEGER,
	balance REAL DEFAULT 0.0,
	FOREIGN KEY (post_id) REFERENCES post(id)
);
`

// WorkOrderSchemaSQL creates the extra_work table. start_time and end_time
// hold TimestampLayout text.
const WorkOrderSchemaSQL = `
CREATE TABLE IF NOT EXISTS extra_work (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT,
	start_time DATETIME,
	end_time DATETIME,
	assignee INTEGER REFERENCES worker(id),
	extra_work_type_id INTEGER REFERENCES extra_work_type(id),
	status TEXT CHECK(status IN ('pending', 'in progress', 'done', 'paid')),
	client_id INTEGER REFERENCES client(id)
);

CREATE INDEX IF NOT EXISTS idx_extra_work_assignee ON extra_work(assignee);
`

// SentinelClientID is the walk-in client every customer request defaults to.
const SentinelClientID int64 = 0

// SentinelSQL makes sure the walk-in client row exists so that work orders
// filed under it satisfy the client_id foreign key.
const SentinelSQL = `
INSERT OR IGNORE INTO client (id, first_name, last_name, phone_number)
VALUES (0, 'Walk-in', 'Customer', '');
`

const schemaVersionSQL = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// SchemaSQL is the complete schema. Referenced tables come first.
var SchemaSQL = strings.Join([]string{
	ClientSchemaSQL,
	WorkTypeSchemaSQL,
	WorkerSchemaSQL,
	WorkOrderSchemaSQL,
}, "\n")

// GetSchemaSQL returns the authoritative schema (used by tests).
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates every table, the sentinel client and records the
// schema version. Idempotent.
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if _, err := database.Exec(SentinelSQL); err != nil {
		return fmt.Errorf("failed to create sentinel client: %w", err)
	}
	if _, err := database.Exec(schemaVersionSQL); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	if _, err := database.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}

// CurrentVersion returns the highest applied schema version (0 when none).
func CurrentVersion(database *sql.DB) (int, error) {
	var version int
	err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	return version, nil
}
