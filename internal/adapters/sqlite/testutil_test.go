// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// setupTestDB goes through db.Open, so tests run against the authoritative
// schema (including the walk-in client) rather than hand-written DDL.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/example/workdesk/internal/adapters/sqlite"
	"github.com/example/workdesk/internal/db"
	"github.com/example/workdesk/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.Open(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close(testDB)
	})

	return testDB
}

// seedWorkType inserts a work type and returns its ID.
func seedWorkType(t *testing.T, testDB *sql.DB, label string, payment float64) int64 {
	t.Helper()
	id, err := sqlite.NewWorkTypeRepository(testDB).Create(context.Background(), &secondary.WorkTypeRecord{
		Description: label + " job",
		Payment:     payment,
		Label:       label,
	})
	if err != nil {
		t.Fatalf("failed to seed work type: %v", err)
	}
	return id
}

// seedPost inserts a post with duties and returns its ID.
func seedPost(t *testing.T, testDB *sql.DB, title string, duties ...string) int64 {
	t.Helper()
	id, err := sqlite.NewWorkerRepository(testDB).CreatePost(context.Background(), title, duties)
	if err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}
	return id
}

// seedWorker inserts a worker on postID (0 for none) and returns its ID.
func seedWorker(t *testing.T, testDB *sql.DB, name string, postID int64, balance float64) int64 {
	t.Helper()
	id, err := sqlite.NewWorkerRepository(testDB).Create(context.Background(), &secondary.WorkerRecord{
		FullName: name,
		PostID:   postID,
		Balance:  balance,
	})
	if err != nil {
		t.Fatalf("failed to seed worker: %v", err)
	}
	return id
}

// seedWorkOrder inserts a pending work order for the walk-in client.
func seedWorkOrder(t *testing.T, testDB *sql.DB, workTypeID int64, label string) int64 {
	t.Helper()
	id, err := sqlite.NewWorkOrderRepository(testDB).Create(context.Background(), &secondary.WorkOrderRecord{
		Label:      label,
		WorkTypeID: workTypeID,
		Status:     "pending",
		ClientID:   db.SentinelClientID,
	})
	if err != nil {
		t.Fatalf("failed to seed work order: %v", err)
	}
	return id
}

// stamp returns a second-resolution local time for timestamp round trips.
func stamp(hour, minute, second int) *time.Time {
	t := time.Date(2026, 2, 14, hour, minute, second, 0, time.Local)
	return &t
}

func ptr[T any](v T) *T {
	return &v
}
