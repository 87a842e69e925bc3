package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures loads reference data: the work-type catalog, posts with their
// duties, and a few workers. Work types are added when no row carries their
// label; staff is skipped when posts already exist. Running it twice changes
// nothing.
func SeedFixtures(database *sql.DB) error {
	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := seedWorkTypes(tx); err != nil {
		return err
	}
	if err := seedStaff(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}
	return nil
}

func hasRows(tx *sql.Tx, table string) (bool, error) {
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return false, fmt.Errorf("seed: count %s: %w", table, err)
	}
	return count > 0, nil
}

func seedWorkTypes(tx *sql.Tx) error {
	workTypes := []struct {
		label, desc string
		payment     float64
	}{
		{"Plumbing", "Fix sink, replace taps, clear blocked drains", 500.0},
		{"Electrical", "Replace sockets and switches, install light fittings", 650.0},
		{"Cleaning", "Deep clean of one room after renovation", 200.0},
		{"Furniture", "Assemble or repair a single piece of furniture", 300.0},
	}
	for _, wt := range workTypes {
		if _, err := tx.Exec(
			`INSERT INTO extra_work_type (description, payment, type)
			 SELECT ?, ?, ? WHERE NOT EXISTS (SELECT 1 FROM extra_work_type WHERE type = ?)`,
			wt.desc, wt.payment, wt.label, wt.label,
		); err != nil {
			return fmt.Errorf("seed work types: %w", err)
		}
	}
	return nil
}

func seedStaff(tx *sql.Tx) error {
	if seeded, err := hasRows(tx, "post"); err != nil || seeded {
		return err
	}

	posts := []struct {
		title  string
		duties []string
	}{
		{"Plumber", []string{"Install and repair pipework", "Maintain sanitary fittings"}},
		{"Electrician", []string{"Maintain wiring", "Install lighting", "Test circuits"}},
		{"Handyman", []string{"Minor repairs", "Furniture assembly", "Cleaning"}},
	}
	postIDs := make(map[string]int64, len(posts))
	for _, p := range posts {
		res, err := tx.Exec("INSERT INTO post (title) VALUES (?)", p.title)
		if err != nil {
			return fmt.Errorf("seed posts: %w", err)
		}
		postID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("seed posts: %w", err)
		}
		postIDs[p.title] = postID

		for _, d := range p.duties {
			res, err := tx.Exec("INSERT INTO duties (description) VALUES (?)", d)
			if err != nil {
				return fmt.Errorf("seed duties: %w", err)
			}
			dutyID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("seed duties: %w", err)
			}
			if _, err := tx.Exec("INSERT INTO post_duties (post_id, duty_id) VALUES (?, ?)", postID, dutyID); err != nil {
				return fmt.Errorf("seed post duties: %w", err)
			}
		}
	}

	workers := []struct {
		name, sex, phone, passNo, passSeries, post string
	}{
		{"Ivan Petrov", "M", "+7 900 000 00 01", "123456", "4501", "Plumber"},
		{"Anna Sidorova", "F", "+7 900 000 00 02", "654321", "4502", "Electrician"},
		{"Oleg Smirnov", "M", "+7 900 000 00 03", "111222", "4503", "Handyman"},
	}
	for _, w := range workers {
		if _, err := tx.Exec(
			`INSERT INTO worker (full_name, sex, phone_number, passport_number, passport_series, post_id, balance)
			 VALUES (?, ?, ?, ?, ?, ?, 0.0)`,
			w.name, w.sex, w.phone, w.passNo, w.passSeries, postIDs[w.post],
		); err != nil {
			return fmt.Errorf("seed workers: %w", err)
		}
	}
	return nil
}
