package database

import (
	"database/sql"
	"time"
)

type NewsItem struct {
	ID          int64
	Title       string
	Link        string
	PublishedAt time.Time
	Content     sql.NullString
	CreatedAt   time.Time
}
