package harvest

import (
	"time"
)

// Candidate is an article discovered on a listing page. It lives for one
// harvest cycle only: either its link is new and it becomes a stored news
// item, or it is discarded.
type Candidate struct {
	Link        string
	Title       string
	PublishedAt time.Time
	Content     string
}
