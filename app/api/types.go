package api

import (
	"github.com/lysyi3m/news-harvester/app/database"
)

type Handler struct {
	newsRepo database.NewsRepository
}

// NewsResponse is the JSON rendering of a stored news item
type NewsResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	PublishedAt string `json:"published_at"`
	Content     string `json:"content"`
	CreatedAt   string `json:"created_at"`
}
