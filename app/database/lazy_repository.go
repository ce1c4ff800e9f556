package database

import (
	"fmt"
	"sync"
)

// ConnectFunc establishes a ready-to-use database handle. It is expected
// to perform whatever setup a fresh connection needs (schema migrations
// included) before returning.
type ConnectFunc func() (*DB, error)

// LazyNewsRepository defers connection establishment to the first storage
// operation and retries it on every subsequent operation until it succeeds.
// Storage being down at startup therefore fails individual operations
// instead of the process; the next scheduled cycle attempts again.
type LazyNewsRepository struct {
	mu      sync.Mutex
	connect ConnectFunc
	db      *DB
	repo    NewsRepository
}

func NewLazyNewsRepository(connect ConnectFunc) *LazyNewsRepository {
	return &LazyNewsRepository{connect: connect}
}

// acquire returns the cached repository, establishing the connection on
// demand. Once established the pool handles reconnection on its own, so
// the connect function runs at most once successfully.
func (r *LazyNewsRepository) acquire() (NewsRepository, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.repo != nil {
		return r.repo, nil
	}

	db, err := r.connect()
	if err != nil {
		return nil, fmt.Errorf("storage unavailable: %w", err)
	}

	r.db = db
	r.repo = NewNewsRepository(db)

	return r.repo, nil
}

func (r *LazyNewsRepository) InsertNew(entries []NewsEntry) (int, error) {
	repo, err := r.acquire()
	if err != nil {
		return 0, err
	}
	return repo.InsertNew(entries)
}

func (r *LazyNewsRepository) GetByID(id int64) (*NewsItem, error) {
	repo, err := r.acquire()
	if err != nil {
		return nil, err
	}
	return repo.GetByID(id)
}

func (r *LazyNewsRepository) GetCount() (int, error) {
	repo, err := r.acquire()
	if err != nil {
		return 0, err
	}
	return repo.GetCount()
}

func (r *LazyNewsRepository) Clear() error {
	repo, err := r.acquire()
	if err != nil {
		return err
	}
	return repo.Clear()
}

// Close releases the underlying connection pool if one was established
func (r *LazyNewsRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
