package save

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	slot       TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteRepo keeps one row per slot in a local SQLite database.
type SQLiteRepo struct {
	db   *sql.DB
	slot string
}

func OpenSQLite(path, slot string) (*SQLiteRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one writer; sqlite serializes anyway
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if slot == "" {
		slot = "default"
	}
	return &SQLiteRepo{db: db, slot: slot}, nil
}

func (r *SQLiteRepo) Load(ctx context.Context) ([]byte, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM saves WHERE slot = ?`, r.slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (r *SQLiteRepo) Store(ctx context.Context, raw []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saves (slot, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		r.slot, string(raw), time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// Slots lists every slot that has a save.
func (r *SQLiteRepo) Slots(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT slot FROM saves ORDER BY slot`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}
