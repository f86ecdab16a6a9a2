// Package memory provides an in-memory history.Store, swappable for the
// JSON file store in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/colonyops/qrforge/internal/core/history"
)

// HistoryStore implements history.Store in memory.
type HistoryStore struct {
	mu      sync.Mutex
	entries []history.Entry
}

// NewHistoryStore creates an empty in-memory store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Append records a new entry.
func (s *HistoryStore) Append(ctx context.Context, entry history.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	return nil
}

// List returns entries newest first. A limit of 0 means unlimited.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]history.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]history.Entry, len(s.entries))
	copy(entries, s.entries)

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

	count := len(s.entries)
	s.entries = nil
	return count, nil
}
