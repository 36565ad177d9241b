package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/storage"
)

func testStoreContract(t *testing.T, s storage.Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "savedWheels"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "savedWheels", `{"a":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(ctx, "savedWheels")
	if err != nil || !ok || v != `{"a":1}` {
		t.Fatalf("unexpected get: %q %v %v", v, ok, err)
	}

	if err := s.Set(ctx, "savedWheels", `{"b":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, "savedWheels"); v != `{"b":2}` {
		t.Errorf("expected overwrite, got %q", v)
	}

	if err := s.Set(ctx, "other", "x"); err != nil {
		t.Fatalf("set other: %v", err)
	}
	if v, _, _ := s.Get(ctx, "savedWheels"); v != `{"b":2}` {
		t.Errorf("keys must be independent, got %q", v)
	}
}

func TestMemoryStore(t *testing.T) {
	testStoreContract(t, storage.NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	s, err := storage.NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testStoreContract(t, s)

	// A second store over the same file sees the data.
	again, _ := storage.NewFileStore(path)
	if v, ok, _ := again.Get(context.Background(), "other"); !ok || v != "x" {
		t.Errorf("expected persisted value, got %q %v", v, ok)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, _ := storage.NewFileStore(path)

	if _, _, err := s.Get(context.Background(), "k"); err == nil {
		t.Error("expected decode error")
	}
}

func TestSQLStore_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "storage.db")
	s, err := storage.OpenSQL(context.Background(), storage.DialectSQLite, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	testStoreContract(t, s)
}

func TestOpenSQL_UnknownDialect(t *testing.T) {
	if _, err := storage.OpenSQL(context.Background(), "oracle", "x"); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		opts    storage.Options
		wantErr bool
	}{
		{name: "memory", opts: storage.Options{Kind: "memory"}},
		{name: "file", opts: storage.Options{Kind: "file", DSN: filepath.Join(dir, "s.json")}},
		{name: "sqlite", opts: storage.Options{Kind: "sqlite", DSN: filepath.Join(dir, "s.db")}},
		{name: "mysql without dsn", opts: storage.Options{Kind: "mysql"}, wantErr: true},
		{name: "supabase without credentials", opts: storage.Options{Kind: "supabase"}, wantErr: true},
		{name: "unknown", opts: storage.Options{Kind: "redis"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := storage.Open(ctx, tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer s.Close()
			testStoreContract(t, s)
		})
	}
}
