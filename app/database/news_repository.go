package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

var _ NewsRepository = (*PostgresNewsRepository)(nil)

// PostgresNewsRepository handles database operations for news items
type PostgresNewsRepository struct {
	db *DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *DB) *PostgresNewsRepository {
	return &PostgresNewsRepository{db: db}
}

// InsertNew stores entries whose link is not present yet. The whole batch is
// one transaction: any failure rolls everything back and reports zero
// insertions, so a cycle never leaves partial state behind.
func (r *PostgresNewsRepository) InsertNew(entries []NewsEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	insertedCount := 0
	for _, entry := range entries {
		var existingID int64
		err := tx.QueryRow(`SELECT id FROM news WHERE link = $1`, entry.Link).Scan(&existingID)
		if err == nil {
			slog.Debug("Link already stored, skipping", "link", entry.Link)
			continue
		}
		if err != sql.ErrNoRows {
			tx.Rollback()
			return 0, fmt.Errorf("failed to check existing link: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO news (title, published_at, link, content)
			VALUES ($1, $2, $3, $4)
		`, entry.Title, entry.PublishedAt, entry.Link, entry.Content)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert news item: %w", err)
		}
		insertedCount++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return insertedCount, nil
}

// GetByID retrieves a stored news item, returning nil when absent
func (r *PostgresNewsRepository) GetByID(id int64) (*NewsItem, error) {
	var item NewsItem
	err := r.db.QueryRow(`
		SELECT id, title, published_at, link, content, created_at
		FROM news
		WHERE id = $1
	`, id).Scan(&item.ID, &item.Title, &item.PublishedAt, &item.Link, &item.Content, &item.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get news item by id: %w", err)
	}

	return &item, nil
}

// GetCount returns the total number of stored news items
func (r *PostgresNewsRepository) GetCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM news").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get news count: %w", err)
	}
	return count, nil
}

// Clear truncates the news table and resets the id sequence
func (r *PostgresNewsRepository) Clear() error {
	_, err := r.db.Exec("TRUNCATE TABLE news RESTART IDENTITY")
	if err != nil {
		return fmt.Errorf("failed to clear news table: %w", err)
	}
	return nil
}
