package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lysyi3m/news-harvester/app/database"
)

func NewHandler(newsRepo database.NewsRepository) *Handler {
	return &Handler{newsRepo: newsRepo}
}

// GetNewsByID serves a stored news item by its surrogate id
func (h *Handler) GetNewsByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "News id must be an integer"})
		return
	}

	item, err := h.newsRepo.GetByID(id)
	if err != nil {
		slog.Error("Database error", "operation", "get_news_by_id", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	c.JSON(http.StatusOK, NewsResponse{
		ID:          item.ID,
		Title:       item.Title,
		Link:        item.Link,
		PublishedAt: item.PublishedAt.Format(time.RFC3339),
		Content:     item.Content.String,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
	})
}

// GetHealth reports service status. Storage being unreachable degrades
// the status instead of hiding the count.
func (h *Handler) GetHealth(c *gin.Context) {
	timestamp := time.Now().In(time.Local).Format(time.RFC3339)

	count, err := h.newsRepo.GetCount()
	if err != nil {
		slog.Error("Database error", "operation", "get_health", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "degraded",
			"timestamp": timestamp,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"timestamp":  timestamp,
		"news_count": count,
	})
}
