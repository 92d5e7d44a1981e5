// Package store provides a SQLite-backed history of exported trip plans.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite" // register sqlite driver
)

// fixed-width so saved_at sorts chronologically as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one exported plan.
type Entry struct {
	ID        string
	RouteName string
	Cities    []string
	Days      int
	Transport string
	Budget    float64
	TotalCost float64
	Format    string // "json" or "pdf"
	Path      string
	SavedAt   time.Time
}

// Archive records exported plans.
type Archive struct {
	db *sql.DB
}

// Open opens or creates the archive database at the given path.
func Open(dbPath string) (*Archive, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return New(db), nil
}

// New wraps an already initialised database.
func New(db *sql.DB) *Archive {
	return &Archive{db: db}
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Record stores e and returns its ID. A missing ID or SavedAt is filled in.
func (a *Archive) Record(e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.SavedAt.IsZero() {
		e.SavedAt = time.Now()
	}

	tx, err := a.db.Begin()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO plans
		(plan_id, route_name, days, transport, budget, total_cost, format, file_path, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.RouteName, e.Days, e.Transport, e.Budget, e.TotalCost,
		e.Format, e.Path, e.SavedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("inserting plan: %w", err)
	}

	for i, city := range e.Cities {
		_, err = tx.Exec(`INSERT INTO plan_cities (plan_id, position, city) VALUES (?, ?, ?)`,
			e.ID, i, city)
		if err != nil {
			return "", fmt.Errorf("inserting plan city: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return e.ID, nil
}

// List returns the most recent entries, newest first. limit <= 0 means all.
func (a *Archive) List(limit int) ([]Entry, error) {
	query := `SELECT plan_id, route_name, days, transport, budget, total_cost,
		format, file_path, saved_at
		FROM plans ORDER BY saved_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := a.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var routeName sql.NullString
		var budget sql.NullFloat64
		var savedAt string

		if err := rows.Scan(&e.ID, &routeName, &e.Days, &e.Transport, &budget,
			&e.TotalCost, &e.Format, &e.Path, &savedAt); err != nil {
			return nil, err
		}
		e.RouteName = routeName.String
		e.Budget = budget.Float64
		e.SavedAt, _ = time.Parse(timeLayout, savedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		cities, err := a.cities(entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Cities = cities
	}
	return entries, nil
}

func (a *Archive) cities(planID string) ([]string, error) {
	rows, err := a.db.Query(`SELECT city FROM plan_cities WHERE plan_id = ? ORDER BY position`, planID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cities []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

// Count returns the number of recorded plans.
func (a *Archive) Count() (int, error) {
	var count int
	err := a.db.QueryRow("SELECT COUNT(*) FROM plans").Scan(&count)
	return count, err
}

// Clear removes every recorded plan.
func (a *Archive) Clear() error {
	_, err := a.db.Exec("DELETE FROM plans")
	return err
}
