package watchlist

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_SeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stocks.json")

	symbols, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(symbols, DefaultSymbols) {
		t.Fatalf("expected defaults %v, got %v", DefaultSymbols, symbols)
	}
	// The default list must be persisted, not just returned.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected store file to exist: %v", err)
	}
	again, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error on reload: %v", err)
	}
	if !reflect.DeepEqual(again, DefaultSymbols) {
		t.Fatalf("expected persisted defaults, got %v", again)
	}
}

func TestLoad_CorruptResetsToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stocks.json")
	if err := os.WriteFile(path, []byte(`{"not": "a list"`), 0644); err != nil {
		t.Fatal(err)
	}

	symbols, err := Load(path)
	if !errors.Is(err, ErrCorruptStore) {
		t.Fatalf("expected ErrCorruptStore, got %v", err)
	}
	if !reflect.DeepEqual(symbols, DefaultSymbols) {
		t.Fatalf("expected defaults after reset, got %v", symbols)
	}
	// The reset must be persisted: reloading succeeds cleanly.
	again, err := Load(path)
	if err != nil {
		t.Fatalf("expected clean reload after reset, got %v", err)
	}
	if !reflect.DeepEqual(again, DefaultSymbols) {
		t.Fatalf("expected persisted reset, got %v", again)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stocks.json")
	want := []string{"GOOG", "AMZN"}
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestManager_AddRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stocks.json")
	if err := Save(path, []string{"AAPL"}); err != nil {
		t.Fatal(err)
	}
	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	if err := m.Add(" goog "); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !m.Has("GOOG") {
		t.Fatal("expected normalized GOOG to be tracked")
	}
	if err := m.Add("GOOG"); !errors.Is(err, ErrAlreadyTracked) {
		t.Fatalf("expected ErrAlreadyTracked, got %v", err)
	}

	if err := m.Remove("goog"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := m.Remove("GOOG"); !errors.Is(err, ErrNotTracked) {
		t.Fatalf("expected ErrNotTracked, got %v", err)
	}

	// Mutations are persisted.
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(reloaded, []string{"AAPL"}) {
		t.Fatalf("expected persisted [AAPL], got %v", reloaded)
	}
}

func TestManager_SymbolsIsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stocks.json")
	if err := Save(path, []string{"AAPL", "MSFT"}); err != nil {
		t.Fatal(err)
	}
	m, err := NewManager(path)
	if err != nil {
		t.Fatal(err)
	}

	snap := m.Symbols()
	snap[0] = "HACKED"
	if m.Has("HACKED") {
		t.Fatal("mutating the snapshot must not affect the manager")
	}
	if !m.Has("AAPL") {
		t.Fatal("expected AAPL still tracked")
	}
}
