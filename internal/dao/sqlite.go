// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS devices (
	id TEXT PRIMARY KEY,
	asset_tag TEXT NOT NULL,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	model TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	quantity INTEGER NOT NULL DEFAULT 0,
	purchase_price REAL,
	tags TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	role TEXT NOT NULL,
	department TEXT NOT NULL DEFAULT '',
	active INTEGER NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS requests (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	status TEXT NOT NULL,
	device_id TEXT NOT NULL,
	user_id TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	reason TEXT NOT NULL DEFAULT '',
	history TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS notifications (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	subject TEXT NOT NULL,
	user_id TEXT NOT NULL,
	title TEXT NOT NULL,
	message TEXT NOT NULL DEFAULT '',
	read INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);`

// SQLiteSource reads a dataset from a SQLite database.
type SQLiteSource struct {
	path string
}

// NewSQLiteSource returns a SQLite backed source.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

// Name returns the database path.
func (s *SQLiteSource) Name() string {
	return s.path
}

func (s *SQLiteSource) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	return db, nil
}

// Load reads every table.
func (s *SQLiteSource) Load(ctx context.Context) (*Dataset, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var ds Dataset
	if ds.Devices, err = loadDevices(ctx, db); err != nil {
		return nil, err
	}
	if ds.Users, err = loadUsers(ctx, db); err != nil {
		return nil, err
	}
	if ds.Requests, err = loadRequests(ctx, db); err != nil {
		return nil, err
	}
	if ds.Notifications, err = loadNotifications(ctx, db); err != nil {
		return nil, err
	}
	ds.Normalize()

	return &ds, nil
}

// Save replaces the database content with ds.
func (s *SQLiteSource) Save(ctx context.Context, ds *Dataset) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := saveAll(ctx, tx, ds); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func saveAll(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	for _, table := range []string{"devices", "users", "requests", "notifications"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	for _, d := range ds.Devices {
		tags, _ := json.Marshal(d.Tags)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO devices VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.AssetTag, d.Name, d.Category, d.Model, d.Location, d.Status,
			d.Quantity, d.PurchasePrice, string(tags), formatTime(d.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to insert device %s: %w", d.ID, err)
		}
	}
	for _, u := range ds.Users {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users VALUES (?, ?, ?, ?, ?, ?, ?)`,
			u.ID, u.Name, u.Email, u.Role, u.Department, u.Active, formatTime(u.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
		}
	}
	for _, r := range ds.Requests {
		history, err := json.Marshal(r.History)
		if err != nil {
			return fmt.Errorf("failed to encode history of %s: %w", r.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO requests VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Kind, r.Status, r.DeviceID, r.UserID, formatTime(r.StartDate),
			formatTime(r.EndDate), r.Reason, string(history), formatTime(r.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to insert request %s: %w", r.ID, err)
		}
	}
	for _, n := range ds.Notifications {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notifications VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			n.ID, n.Kind, n.Subject, n.UserID, n.Title, n.Message, n.Read, formatTime(n.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to insert notification %s: %w", n.ID, err)
		}
	}

	return nil
}

func loadDevices(ctx context.Context, db *sql.DB) ([]*Device, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, asset_tag, name, category, model, location,
		status, quantity, purchase_price, tags, created_at FROM devices`)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer rows.Close()

	var dd []*Device
	for rows.Next() {
		var (
			d       Device
			price   sql.NullFloat64
			tags    string
			created string
		)
		if err := rows.Scan(&d.ID, &d.AssetTag, &d.Name, &d.Category, &d.Model, &d.Location,
			&d.Status, &d.Quantity, &price, &tags, &created); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		if price.Valid {
			d.PurchasePrice = &price.Float64
		}
		if err := json.Unmarshal([]byte(tags), &d.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags of %s: %w", d.ID, err)
		}
		if d.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		dd = append(dd, &d)
	}

	return dd, rows.Err()
}

func loadUsers(ctx context.Context, db *sql.DB) ([]*User, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, email, role, department, active,
		created_at FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var uu []*User
	for rows.Next() {
		var (
			u       User
			created string
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Department, &u.Active, &created); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if u.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		uu = append(uu, &u)
	}

	return uu, rows.Err()
}

func loadRequests(ctx context.Context, db *sql.DB) ([]*Request, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, kind, status, device_id, user_id, start_date,
		end_date, reason, history, created_at FROM requests`)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	var rr []*Request
	for rows.Next() {
		var (
			r                       Request
			start, end, hist, creat string
		)
		if err := rows.Scan(&r.ID, &r.Kind, &r.Status, &r.DeviceID, &r.UserID, &start, &end,
			&r.Reason, &hist, &creat); err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		if err := json.Unmarshal([]byte(hist), &r.History); err != nil {
			return nil, fmt.Errorf("failed to decode history of %s: %w", r.ID, err)
		}
		if r.StartDate, err = parseTime(start); err != nil {
			return nil, err
		}
		if r.EndDate, err = parseTime(end); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = parseTime(creat); err != nil {
			return nil, err
		}
		rr = append(rr, &r)
	}

	return rr, rows.Err()
}

func loadNotifications(ctx context.Context, db *sql.DB) ([]*Notification, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, kind, subject, user_id, title, message, read,
		created_at FROM notifications`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var nn []*Notification
	for rows.Next() {
		var (
			n       Notification
			created string
		)
		if err := rows.Scan(&n.ID, &n.Kind, &n.Subject, &n.UserID, &n.Title, &n.Message, &n.Read,
			&created); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if n.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		nn = append(nn, &n)
	}

	return nn, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}
