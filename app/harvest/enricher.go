package harvest

import (
	"context"
	"log/slog"
	"sync"
)

// Enricher fills candidate content by fetching each article page under a
// bounded-concurrency admission gate. Per-item failures leave the content
// empty and never fail the batch.
type Enricher struct {
	fetcher     PageFetcher
	extractor   *ContentExtractor
	concurrency int
}

func NewEnricher(fetcher PageFetcher, extractor *ContentExtractor, concurrency int) *Enricher {
	if concurrency <= 0 {
		concurrency = 5
	}
	return &Enricher{
		fetcher:     fetcher,
		extractor:   extractor,
		concurrency: concurrency,
	}
}

// Run enriches every candidate in place and waits for the whole batch.
// Each goroutine writes only its own candidate, so no locking is needed.
func (e *Enricher) Run(ctx context.Context, candidates map[string]*Candidate) {
	gate := make(chan struct{}, e.concurrency)
	var wg sync.WaitGroup

	for link, candidate := range candidates {
		wg.Add(1)
		go func(link string, candidate *Candidate) {
			defer wg.Done()

			gate <- struct{}{}
			defer func() { <-gate }()

			markup, err := e.fetcher.Fetch(ctx, link)
			if err != nil {
				slog.Error("Failed to fetch article page", "link", link, "error", err)
				return
			}

			candidate.Content = e.extractor.Run(markup)
		}(link, candidate)
	}

	wg.Wait()
}
