package database

import (
	"time"
)

// NewsEntry is an enriched article handed over by the harvest pipeline for storage
type NewsEntry struct {
	Title       string
	Link        string
	PublishedAt time.Time
	Content     string
}

type NewsRepository interface {
	// InsertNew inserts entries whose link is not yet stored, skipping the
	// rest. All inserts of one batch share a single transaction.
	InsertNew(entries []NewsEntry) (int, error)

	GetByID(id int64) (*NewsItem, error)
	GetCount() (int, error)

	// Clear removes every stored item and resets the id sequence
	Clear() error
}
