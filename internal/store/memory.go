// Package store provides persistence backends for user rating records.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/WillyEverGreen/gigbridge/internal/ledger"
)

// MemoryStore is an in-memory ledger.Store. It backs tests and the offline
// CLI. Records are deep-copied through JSON on the way in and out so callers
// never share state with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// Get returns the stored record for a user, or (nil, nil) when absent.
func (m *MemoryStore) Get(_ context.Context, userID string) (*ledger.UserRatingData, error) {
	m.mu.RLock()
	raw, ok := m.records[userID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var record ledger.UserRatingData
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode rating record: %w", err)
	}
	return &record, nil
}

// Put replaces the stored record for a user.
func (m *MemoryStore) Put(_ context.Context, userID string, record *ledger.UserRatingData) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode rating record: %w", err)
	}

	m.mu.Lock()
	m.records[userID] = raw
	m.mu.Unlock()
	return nil
}

// Delete removes the stored record for a user. Deleting a missing record is
// not an error.
func (m *MemoryStore) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	delete(m.records, userID)
	m.mu.Unlock()
	return nil
}

// UserIDs returns the ids of all stored records.
func (m *MemoryStore) UserIDs(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	return ids, nil
}
