package logstore

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/edgecore/api-gateway/internal/core/domain"
)

func entry(path string, status int) domain.ErrorLogEntry {
	return domain.ErrorLogEntry{
		Timestamp: time.Now().UTC(),
		Method:    "GET",
		Path:      path,
		Status:    status,
		ClientIP:  "127.0.0.1",
		Latency:   "1ms",
	}
}

func TestMemory_AppendAndEntries(t *testing.T) {
	store := NewMemory()
	store.Append(entry("/api/a", 404))
	store.Append(entry("/api/b", 502))

	all := store.Entries(domain.ErrorLogFilter{})
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if all[0].Path != "/api/a" || all[1].Path != "/api/b" {
		t.Fatalf("entries out of append order: %+v", all)
	}
}

func TestMemory_Filter(t *testing.T) {
	store := NewMemory()
	store.Append(entry("/api/a", 404))
	store.Append(entry("/api/a", 401))
	store.Append(entry("/api/b", 404))

	byPath := store.Entries(domain.ErrorLogFilter{Path: "/api/a"})
	if len(byPath) != 2 {
		t.Fatalf("expected 2 entries for /api/a, got %d", len(byPath))
	}

	byStatus := store.Entries(domain.ErrorLogFilter{Status: 404})
	if len(byStatus) != 2 {
		t.Fatalf("expected 2 entries with status 404, got %d", len(byStatus))
	}

	both := store.Entries(domain.ErrorLogFilter{Path: "/api/a", Status: 401})
	if len(both) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(both))
	}
}

func TestMemory_Clear(t *testing.T) {
	store := NewMemory()
	store.Append(entry("/api/a", 404))

	snapshot := store.Entries(domain.ErrorLogFilter{})
	store.Clear()

	if store.Size() != 0 {
		t.Fatalf("expected empty store after clear, got %d", store.Size())
	}
	// snapshots handed out before the clear stay intact
	if len(snapshot) != 1 || snapshot[0].Path != "/api/a" {
		t.Fatalf("snapshot corrupted by clear: %+v", snapshot)
	}
}

func TestMemory_ConcurrentAppendAndClear(t *testing.T) {
	store := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Append(entry(fmt.Sprintf("/api/p%d", i), 404))
			if i%10 == 0 {
				store.Clear()
			}
			_ = store.Entries(domain.ErrorLogFilter{})
		}(i)
	}
	wg.Wait()

	// every surviving entry must be well formed
	for _, e := range store.Entries(domain.ErrorLogFilter{}) {
		if e.Path == "" || e.Status != 404 {
			t.Fatalf("corrupted entry: %+v", e)
		}
	}
}
