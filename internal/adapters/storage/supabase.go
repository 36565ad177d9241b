package storage

import (
	"context"
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

// SupabaseTable is the table backing SupabaseStore:
//
//	create table wheel_storage (key text primary key, value text not null);
const SupabaseTable = "wheel_storage"

type supabaseRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SupabaseStore keeps keys in a Supabase (PostgREST) table.
type SupabaseStore struct {
	client *supa.Client
}

func NewSupabaseStore(url, key string) (*SupabaseStore, error) {
	if url == "" || key == "" {
		return nil, fmt.Errorf("storage.NewSupabaseStore: SUPABASE_URL and SUPABASE_KEY are required")
	}
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSupabaseStore: %w", err)
	}
	return &SupabaseStore{client: client}, nil
}

// The PostgREST client has no context support; ctx is unused.
func (s *SupabaseStore) Get(_ context.Context, key string) (string, bool, error) {
	var rows []supabaseRow
	_, err := s.client.From(SupabaseTable).
		Select("key,value", "", false).
		Eq("key", key).
		ExecuteTo(&rows)
	if err != nil {
		return "", false, fmt.Errorf("storage.SupabaseStore.Get: %w", err)
	}
	v, ok := firstValue(rows, key)
	return v, ok, nil
}

func (s *SupabaseStore) Set(_ context.Context, key, value string) error {
	_, _, err := s.client.From(SupabaseTable).
		Insert(supabaseRow{Key: key, Value: value}, true, "key", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("storage.SupabaseStore.Set: %w", err)
	}
	return nil
}

func (s *SupabaseStore) Close() error { return nil }

func firstValue(rows []supabaseRow, key string) (string, bool) {
	for _, r := range rows {
		if r.Key == key {
			return r.Value, true
		}
	}
	return "", false
}
