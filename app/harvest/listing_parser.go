package harvest

import (
	"bytes"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/lysyi3m/news-harvester/app/config"
)

// ListingParser extracts candidates from one day's listing page.
type ListingParser struct {
	selectors  config.SiteSelectors
	origin     string
	dateFormat string
	timeFormat string
	window     time.Duration
	now        func() time.Time
}

func NewListingParser(site *config.SiteConfig) *ListingParser {
	return &ListingParser{
		selectors:  site.Selectors,
		origin:     site.Site.Origin,
		dateFormat: site.Settings.DateFormat,
		timeFormat: site.Settings.TimeFormat,
		window:     time.Duration(site.Settings.WindowHours) * time.Hour,
		now:        time.Now,
	}
}

// Run scans the listing markup for article entries published within the
// acceptance window. pageDate is the listing's date label (day.month.year).
// Entries missing their title link or time element are skipped silently;
// entries with an unparseable timestamp are dropped with a log line. The
// result is keyed by fully-qualified article link.
func (p *ListingParser) Run(markup []byte, pageDate string) map[string]*Candidate {
	candidates := make(map[string]*Candidate)
	if len(markup) == 0 {
		return candidates
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		slog.Error("Failed to parse listing markup", "date", pageDate, "error", err)
		return candidates
	}

	doc.Find(p.selectors.Entry).Each(func(_ int, entry *goquery.Selection) {
		titleLink := entry.Find(p.selectors.TitleLink).First()
		timeElem := entry.Find(p.selectors.Time).First()
		if titleLink.Length() == 0 || timeElem.Length() == 0 {
			return
		}

		href, ok := titleLink.Attr("href")
		if !ok || href == "" {
			return
		}

		timeText := normalizeTime(strings.TrimSpace(timeElem.Text()))

		publishedAt, err := time.ParseInLocation(
			p.dateFormat+" "+p.timeFormat, pageDate+" "+timeText, time.Local)
		if err != nil {
			slog.Error("Failed to parse publish time", "date", pageDate, "time", timeText, "href", href, "error", err)
			return
		}

		if !WithinWindow(publishedAt, p.now(), p.window) {
			return
		}

		link := p.qualifyLink(href)
		candidates[link] = &Candidate{
			Link:        link,
			Title:       strings.TrimSpace(titleLink.Text()),
			PublishedAt: publishedAt,
			Content:     "",
		}
	})

	return candidates
}

// normalizeTime keeps only the hour and minute fields of a displayed time.
// Text without a colon is passed through and fails time parsing downstream.
func normalizeTime(text string) string {
	if !strings.Contains(text, ":") {
		return text
	}
	parts := strings.Split(text, ":")
	if len(parts) < 2 {
		return text
	}
	return parts[0] + ":" + parts[1]
}

// qualifyLink resolves a root-relative href against the site origin
func (p *ListingParser) qualifyLink(href string) string {
	if strings.HasPrefix(href, "/") {
		return p.origin + href
	}
	return href
}
