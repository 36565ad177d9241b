package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/ports"
)

// Store is a KeyValueStore that may hold a connection.
type Store interface {
	ports.KeyValueStore
	io.Closer
}

// Options selects and configures a backend.
type Options struct {
	// Kind is one of memory, file, sqlite, mysql, supabase.
	Kind        string
	DSN         string
	SupabaseURL string
	SupabaseKey string
}

// DefaultFilePath is ~/.ai-spin-wheel/storage.json.
func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".ai-spin-wheel", "storage.json")
}

func Open(ctx context.Context, o Options) (Store, error) {
	switch o.Kind {
	case "memory":
		return NewMemoryStore(), nil
	case "file", "":
		path := o.DSN
		if path == "" {
			path = DefaultFilePath()
		}
		return NewFileStore(path)
	case "sqlite":
		dsn := o.DSN
		if dsn == "" {
			dsn = filepath.Join(filepath.Dir(DefaultFilePath()), "storage.db")
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("storage.Open: %w", err)
			}
		}
		return OpenSQL(ctx, DialectSQLite, dsn)
	case "mysql":
		if o.DSN == "" {
			return nil, fmt.Errorf("storage.Open: WHEEL_STORE_DSN is required for mysql")
		}
		return OpenSQL(ctx, DialectMySQL, o.DSN)
	case "supabase":
		return NewSupabaseStore(o.SupabaseURL, o.SupabaseKey)
	default:
		return nil, fmt.Errorf("storage.Open: unknown store %q", o.Kind)
	}
}
