// Package jsonfile persists generation history as a single JSON document.
//
// The file is read-modify-written whole on each operation and carries no
// lock: concurrent invocations racing on it resolve last-writer-wins.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/colonyops/qrforge/internal/core/history"
)

// historyFile is the root JSON structure stored on disk.
type historyFile struct {
	Entries []history.Entry `json:"entries"`
}

// HistoryStore implements history.Store backed by a JSON file.
type HistoryStore struct {
	path       string
	maxEntries int // 0 = unlimited
	mu         sync.Mutex
}

// NewHistoryStore creates a store writing to path, retaining at most
// maxEntries entries (0 keeps everything).
func NewHistoryStore(path string, maxEntries int) *HistoryStore {
	return &HistoryStore{path: path, maxEntries: maxEntries}
}

// Append records a new entry, pruning the oldest entries beyond the
// retention limit.
func (s *HistoryStore) Append(ctx context.Context, entry history.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := s.load()
	file.Entries = append(file.Entries, entry)

	if s.maxEntries > 0 && len(file.Entries) > s.maxEntries {
		file.Entries = file.Entries[len(file.Entries)-s.maxEntries:]
	}

	return s.save(file)
}

// List returns entries newest first. A limit of 0 means unlimited.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]history.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := s.load()

	entries := make([]history.Entry, len(file.Entries))
	copy(entries, file.Entries)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

// Clear removes all entries and returns how many were removed.
func (s *HistoryStore) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := s.load()
	count := len(file.Entries)

	if err := s.save(historyFile{Entries: []history.Entry{}}); err != nil {
		return 0, err
	}

	return count, nil
}

// load reads the history file. A missing or malformed file is treated as
// an empty history rather than an error.
func (s *HistoryStore) load() historyFile {
	data, err := os.ReadFile(s.path)
	if err != nil || len(data) == 0 {
		return historyFile{}
	}

	var file historyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return historyFile{}
	}

	return file
}

// save writes the history file to disk atomically.
func (s *HistoryStore) save(file historyFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
