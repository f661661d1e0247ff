// Package logstore holds the process-wide record of non-2xx responses.
// The store lives for the process lifetime, is never persisted, and is
// reset only by an explicit administrative clear.
package logstore

import (
	"sync"

	"github.com/edgecore/api-gateway/internal/core/domain"
)

// Memory is a mutex-guarded, append-only slice of error log entries.
// One lock covers append, read, and clear; reads return a snapshot copy so
// a concurrent clear can never corrupt entries already handed out.
type Memory struct {
	mu      sync.Mutex
	entries []domain.ErrorLogEntry
}

func NewMemory() *Memory {
	return &Memory{}
}

// Append records one entry. Entries are immutable after this call.
func (m *Memory) Append(entry domain.ErrorLogEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
}

// Entries returns a snapshot of all entries matching the filter, in append
// order.
func (m *Memory) Entries(filter domain.ErrorLogFilter) []domain.ErrorLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.ErrorLogEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Clear empties the store.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}

// Size returns the current number of entries.
func (m *Memory) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
