package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect selects the SQL flavour of a SQLStore.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite3"
	DialectMySQL  Dialect = "mysql"
)

type dialectQueries struct {
	schema string
	get    string
	upsert string
}

var queries = map[Dialect]dialectQueries{
	DialectSQLite: {
		schema: `CREATE TABLE IF NOT EXISTS wheel_storage (
			storage_key   TEXT PRIMARY KEY,
			storage_value TEXT NOT NULL
		)`,
		get: `SELECT storage_value FROM wheel_storage WHERE storage_key = ?`,
		upsert: `INSERT INTO wheel_storage (storage_key, storage_value) VALUES (?, ?)
			ON CONFLICT(storage_key) DO UPDATE SET storage_value = excluded.storage_value`,
	},
	DialectMySQL: {
		schema: `CREATE TABLE IF NOT EXISTS wheel_storage (
			storage_key   VARCHAR(191) NOT NULL PRIMARY KEY,
			storage_value MEDIUMTEXT NOT NULL
		) DEFAULT CHARSET = utf8mb4`,
		get: `SELECT storage_value FROM wheel_storage WHERE storage_key = ?`,
		upsert: `INSERT INTO wheel_storage (storage_key, storage_value) VALUES (?, ?)
			ON DUPLICATE KEY UPDATE storage_value = VALUES(storage_value)`,
	},
}

// SQLStore keeps keys in the wheel_storage table.
type SQLStore struct {
	db *sql.DB
	q  dialectQueries
}

// OpenSQL connects to dsn, verifies the connection and creates the table.
func OpenSQL(ctx context.Context, dialect Dialect, dsn string) (*SQLStore, error) {
	const op = "storage.OpenSQL"

	q, ok := queries[dialect]
	if !ok {
		return nil, fmt.Errorf("%s: unknown dialect %q", op, dialect)
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}
	if _, err := db.ExecContext(ctx, q.schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: migrate: %w", op, err)
	}

	return &SQLStore{db: db, q: q}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "storage.SQLStore.Get"

	var v string
	err := s.db.QueryRowContext(ctx, s.q.get, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return v, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	const op = "storage.SQLStore.Set"

	if _, err := s.db.ExecContext(ctx, s.q.upsert, key, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *SQLStore) Close() error { return s.db.Close() }
