package domain

import "time"

// ErrorLogEntry records one non-2xx response. Entries are append-only and
// never mutated after creation; Status always matches the status actually
// returned to the client. Timestamp is UTC, so it marshals with a literal
// "Z" suffix in RFC 3339 form.
type ErrorLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	ClientIP  string    `json:"client_ip"`
	Latency   string    `json:"latency"`
}

// ErrorLogFilter narrows an error log query. Zero values match everything.
type ErrorLogFilter struct {
	Path   string
	Status int
}

// Matches reports whether the entry satisfies the filter.
func (f ErrorLogFilter) Matches(e ErrorLogEntry) bool {
	if f.Path != "" && e.Path != f.Path {
		return false
	}
	if f.Status != 0 && e.Status != f.Status {
		return false
	}
	return true
}
