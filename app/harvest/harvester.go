package harvest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lysyi3m/news-harvester/app/config"
)

// Harvester drives one ingestion cycle: fetch and parse the listing pages
// for today and yesterday, merge the candidates by link, then enrich the
// merged set with article bodies.
type Harvester struct {
	fetcher    PageFetcher
	parser     *ListingParser
	enricher   *Enricher
	listingURL string
	dateFormat string
	now        func() time.Time
}

func NewHarvester(site *config.SiteConfig, fetcher PageFetcher, parser *ListingParser, enricher *Enricher) *Harvester {
	return &Harvester{
		fetcher:    fetcher,
		parser:     parser,
		enricher:   enricher,
		listingURL: site.Site.ListingURL,
		dateFormat: site.Settings.DateFormat,
		now:        time.Now,
	}
}

// Run returns the merged, enriched candidate set for this cycle. An empty
// result means nothing to ingest; a failed listing fetch contributes zero
// candidates for that day and is not fatal.
func (h *Harvester) Run(ctx context.Context) map[string]*Candidate {
	merged := make(map[string]*Candidate)

	for _, label := range h.dateLabels() {
		url := fmt.Sprintf("%s?date=%s", h.listingURL, label)

		markup, err := h.fetcher.Fetch(ctx, url)
		if err != nil {
			slog.Error("Failed to fetch listing page", "date", label, "url", url, "error", err)
			continue
		}

		dayCandidates := h.parser.Run(markup, label)
		slog.Debug("Listing parsed", "date", label, "candidates", len(dayCandidates))

		// Links are unique site-wide, so a later overwrite is a no-op
		for link, candidate := range dayCandidates {
			merged[link] = candidate
		}
	}

	if len(merged) > 0 {
		h.enricher.Run(ctx, merged)
	}

	return merged
}

// dateLabels returns the listing date parameters to scan, today first
func (h *Harvester) dateLabels() []string {
	now := h.now()
	return []string{
		now.Format(h.dateFormat),
		now.AddDate(0, 0, -1).Format(h.dateFormat),
	}
}
