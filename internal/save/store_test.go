package save

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundtrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Load(); ok {
		t.Fatal("fresh store must report no saved state")
	}

	want := Snapshot{Cash: 120, FixturesTier: 2, ProductTier: 1, Prestige: 3}
	if err := store.Save(want); err != nil {
		t.Fatal(err)
	}
	got, ok := store.Load()
	if !ok || got != want {
		t.Fatalf("load got %+v ok=%v want %+v", got, ok, want)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, saveFileName), []byte("???"), 0o600); err != nil {
		t.Fatal(err)
	}
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Load(); ok {
		t.Fatal("corrupt save must load as absent, not error")
	}
}

func TestFileStoreEmptyFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, saveFileName), nil, 0o600); err != nil {
		t.Fatal(err)
	}
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Load(); ok {
		t.Fatal("empty save must load as absent")
	}
}

func TestMemStoreTracksSaves(t *testing.T) {
	store := NewMemStore()
	if _, ok := store.Load(); ok {
		t.Fatal("fresh mem store must be empty")
	}
	_ = store.Save(Snapshot{Cash: 5})
	_ = store.Save(Snapshot{Cash: 9})
	if store.Saves != 2 {
		t.Fatalf("saves got %d want 2", store.Saves)
	}
	if got, ok := store.Last(); !ok || got.Cash != 9 {
		t.Fatalf("last got %+v ok=%v", got, ok)
	}
}
