// Package mockdata is the offline stand-in for the admin backend: named
// JSON collections on disk, seeded once from fixtures that mirror the
// production data shapes.
package mockdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Record = map[string]any

// Store persists each collection as <dir>/<key>.json, replaced wholesale
// on every write. The mutex serializes writers in-process; across
// processes the last writer wins.
type Store struct {
	dir string
	mu  sync.Mutex
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %v", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Initialize seeds every known collection that has no stored value yet.
// Idempotent; safe to call on every client construction.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, records := range seedCollections() {
		if s.exists(key) {
			continue
		}
		if err := s.write(key, records); err != nil {
			return err
		}
	}

	for key, doc := range seedDocuments() {
		if s.exists(key) {
			continue
		}
		if err := s.write(key, doc); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the named collection, or an empty one when absent.
func (s *Store) Get(key string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("corrupt collection %q: %v", key, err)
	}
	return records, nil
}

// Set persists the full collection (full replace, not incremental).
func (s *Store) Set(key string, data []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data == nil {
		data = []Record{}
	}
	return s.write(key, data)
}

// GetValue reads a non-collection document (settings, role permission
// map, auth token). Returns false when the key has never been written.
func (s *Store) GetValue(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("corrupt document %q: %v", key, err)
	}
	return true, nil
}

func (s *Store) SetValue(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(key, v)
}

func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) exists(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

func (s *Store) write(key string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), raw, 0644)
}
