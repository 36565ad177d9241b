package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/app"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
)

func TestLibrary_SaveOverwritesAndLists(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	lib := app.NewLibrary(store)

	for _, sw := range []domain.SavedWheel{
		{Name: "pets", Options: []string{"Cat"}, Colors: []string{"#FF6384"}},
		{Name: "food", Options: []string{"Soup"}, Colors: []string{"#FF6384"}},
		{Name: "pets", Options: []string{"Dog", "Fish"}, Colors: []string{"#FF6384", "#36A2EB"}},
	} {
		if err := lib.Save(ctx, sw); err != nil {
			t.Fatalf("save %s: %v", sw.Name, err)
		}
	}

	names, err := lib.Names(ctx)
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"food", "pets"}) {
		t.Errorf("unexpected names: %v", names)
	}

	got, err := lib.Get(ctx, "pets")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got.Options, []string{"Dog", "Fish"}) {
		t.Errorf("last save must win, got %v", got.Options)
	}

	// The stored value is one JSON object keyed by name.
	var raw map[string]domain.SavedWheel
	if err := json.Unmarshal([]byte(store.data[app.SavedWheelsKey]), &raw); err != nil {
		t.Fatalf("stored value is not a JSON object: %v", err)
	}
	if len(raw) != 2 || raw["food"].Name != "food" {
		t.Errorf("unexpected stored value: %v", raw)
	}
}

func TestLibrary_GetMissing(t *testing.T) {
	lib := app.NewLibrary(newMemStore())

	if _, err := lib.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrWheelNotFound) {
		t.Fatalf("expected ErrWheelNotFound, got %v", err)
	}
}

func TestLibrary_CorruptValue(t *testing.T) {
	store := newMemStore()
	store.data[app.SavedWheelsKey] = "not json"
	lib := app.NewLibrary(store)

	if _, err := lib.Names(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}
