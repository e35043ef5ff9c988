package app

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"retrosite/internal/ui"
)

// NewDB opens a MySQL connection using sensible defaults.
func NewDB(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, nil
}

// EventStore counts navbar actions, mainly how often the editor was downloaded.
type EventStore interface {
	Record(ctx context.Context, action ui.Action) error
	Counts(ctx context.Context) (map[string]int, error)
}

// NopEventStore is used when no database is configured.
type NopEventStore struct{}

func (NopEventStore) Record(context.Context, ui.Action) error { return nil }

func (NopEventStore) Counts(context.Context) (map[string]int, error) {
	return map[string]int{}, nil
}

// SQLEventStore keeps one row per invoked action in site_events.
type SQLEventStore struct {
	db *sql.DB
}

func NewSQLEventStore(db *sql.DB) *SQLEventStore {
	return &SQLEventStore{db: db}
}

// EnsureSchema creates site_events if it is missing.
func (s *SQLEventStore) EnsureSchema(ctx context.Context) error {
	const ddl = `CREATE TABLE IF NOT EXISTS site_events (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	action VARCHAR(32) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	INDEX idx_site_events_action (action)
)`
	_, err := s.db.ExecContext(ctx, ddl)
	return err
}

func (s *SQLEventStore) Record(ctx context.Context, action ui.Action) error {
	const insert = `INSERT INTO site_events (action) VALUES (?)`
	_, err := s.db.ExecContext(ctx, insert, string(action))
	return err
}

func (s *SQLEventStore) Counts(ctx context.Context) (map[string]int, error) {
	const query = `SELECT action, COUNT(*) FROM site_events GROUP BY action`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, err
		}
		counts[action] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
