package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tuberank/youtube-seo-assistant-go/internal/service"
)

// DiscoverHandler serves keyword research requests.
type DiscoverHandler struct {
	discovery *service.DiscoveryService
}

// NewDiscoverHandler creates a new DiscoverHandler instance.
func NewDiscoverHandler(discovery *service.DiscoveryService) *DiscoverHandler {
	return &DiscoverHandler{discovery: discovery}
}

// HandleDiscover runs a keyword search with the optional filters. An empty
// query returns the empty page shell instead of an error, matching the
// search-form UX.
func (h *DiscoverHandler) HandleDiscover(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusOK, gin.H{
			"q":         "",
			"results":   []service.DiscoverVideo{},
			"sentiment": gin.H{"emoji": "😶", "text": "No data yet"},
		})
		return
	}

	req := service.DiscoverRequest{
		Query:      q,
		MaxResults: parseInt64(c.Query("n"), 0),
		Sort:       c.DefaultQuery("sort", "ranking"),
		TextFilter: c.Query("filter"),
		MinLenSec:  minutesToSeconds(c.Query("min_len_min")),
		MaxLenSec:  minutesToSeconds(c.Query("max_len_min")),
	}

	result, err := h.discovery.Discover(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"q":          q,
		"results":    result.Videos,
		"avg":        result.Averages,
		"sentiment":  result.Sentiment,
		"difficulty": result.Difficulty,
		"ai_insight": result.AIInsight,
	})
}

func parseInt64(s string, fallback int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// minutesToSeconds converts a minutes form field to seconds. Non-numeric
// input means the filter is unset.
func minutesToSeconds(s string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	secs := n * 60
	return &secs
}
