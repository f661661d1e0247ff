package ports

import "github.com/edgecore/api-gateway/internal/core/domain"

// ErrorLogStore is the process-wide store of non-2xx response records.
// Appends from concurrent requests must be safe, reads must observe a
// consistent snapshot, and Clear resets the store without corrupting
// in-flight appends.
type ErrorLogStore interface {
	Append(entry domain.ErrorLogEntry)
	Entries(filter domain.ErrorLogFilter) []domain.ErrorLogEntry
	Clear()
	Size() int
}
