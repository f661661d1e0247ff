package domain

import "strings"

// RouteKind selects the handling strategy for a route table entry.
type RouteKind int

const (
	// RouteHealth is a local, never-authenticated health probe.
	RouteHealth RouteKind = iota
	// RouteLocal is a handler implemented by the gateway itself.
	RouteLocal
	// RouteAuthProxy forwards to a backend after bearer authentication.
	RouteAuthProxy
	// RouteOpenProxy forwards to a backend without authentication.
	RouteOpenProxy
	// RouteCatchAll produces the synthetic JSON 404 for unmatched /api paths.
	RouteCatchAll
)

// RouteEntry is a static rule mapping a path prefix to a handling strategy.
// The table is built once at startup and read-only afterwards.
type RouteEntry struct {
	Name          string
	Prefix        string
	Kind          RouteKind
	Target        string
	RequiredRoles []string
}

// RouteTable resolves request paths to entries by longest matching prefix.
type RouteTable struct {
	entries []RouteEntry
}

// NewRouteTable builds a table sorted so that longer prefixes win. Health
// entries always match before anything else, regardless of table order.
func NewRouteTable(entries []RouteEntry) *RouteTable {
	sorted := make([]RouteEntry, len(entries))
	copy(sorted, entries)
	// stable insertion sort: health first, then descending prefix length
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && less(sorted[j], sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return &RouteTable{entries: sorted}
}

func less(a, b RouteEntry) bool {
	if (a.Kind == RouteHealth) != (b.Kind == RouteHealth) {
		return a.Kind == RouteHealth
	}
	return len(a.Prefix) > len(b.Prefix)
}

// Match returns the entry for the longest prefix matching path. A prefix
// matches on an exact path or a segment boundary, so "/api/v1/orders" matches
// "/api/v1/orders/123" but not "/api/v1/ordersarchive".
func (t *RouteTable) Match(path string) (RouteEntry, bool) {
	for _, e := range t.entries {
		if matchPrefix(path, e.Prefix) {
			return e, true
		}
	}
	return RouteEntry{}, false
}

func matchPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if len(path) == len(prefix) {
		return true
	}
	return strings.HasSuffix(prefix, "/") || path[len(prefix)] == '/'
}

// Entries returns the matching order of the table, health entries first.
func (t *RouteTable) Entries() []RouteEntry {
	out := make([]RouteEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
