package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Snapshot is the durable slice of progression state. Everything else
// (combo, queue, flags, audit session) resets each session.
type Snapshot struct {
	Cash         int `json:"cash"`
	FixturesTier int `json:"fixturesTier"`
	ProductTier  int `json:"productTier"`
	Prestige     int `json:"prestige"`
}

// Store persists the progression snapshot under one fixed key.
type Store interface {
	// Load returns the saved snapshot and true, or a zero snapshot and
	// false when nothing usable is saved. Corruption is never an error.
	Load() (Snapshot, bool)
	Save(Snapshot) error
}

const saveFileName = "shop.json"

// FileStore keeps the snapshot as a JSON file in a data directory.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates the data directory if needed. An empty dir defaults
// to ~/.blockparty.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".blockparty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, saveFileName)}, nil
}

func (s *FileStore) Load() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil || len(raw) == 0 {
		return Snapshot{}, false
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, false
	}
	return snap, true
}

func (s *FileStore) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu    sync.Mutex
	snap  Snapshot
	ok    bool
	Saves int
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

// Seed preloads the store, as if a prior session had saved.
func (s *MemStore) Seed(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.ok = true
}

func (s *MemStore) Load() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, s.ok
}

func (s *MemStore) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.ok = true
	s.Saves++
	return nil
}

// Last returns the most recently saved snapshot.
func (s *MemStore) Last() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, s.ok
}
