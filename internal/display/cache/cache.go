// Package cache persists the last-known legacy content per TV so a display
// can keep showing something when every remote lookup fails.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/content"
)

// Store is a JSON file holding one legacy content entry per TV, keyed by
// the TV's number suffix for compatibility with entries written by the old
// admin page ("TV2" is stored under "2").
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a store backed by the file at path. The file does not
// need to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Key converts a TV name to its storage key.
func Key(tvName string) string {
	return strings.TrimPrefix(tvName, "TV")
}

// Load returns the cached entry for a TV, or ok=false when there is none.
// A missing or unreadable cache file is treated as an empty cache; the
// fallback path must never fail harder than the lookups it backs up.
func (s *Store) Load(tvName string) (*content.LegacyContent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, false
	}
	entry, ok := entries[Key(tvName)]
	if !ok {
		return nil, false
	}
	return entry, true
}

// Save writes the entry for a TV, replacing any previous one.
func (s *Store) Save(tvName string, entry *content.LegacyContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		entries = map[string]*content.LegacyContent{}
	}
	entries[Key(tvName)] = entry

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating cache directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

func (s *Store) read() (map[string]*content.LegacyContent, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]*content.LegacyContent{}, nil
		}
		return nil, err
	}
	entries := map[string]*content.LegacyContent{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
