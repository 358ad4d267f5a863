package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tuberank/youtube-seo-assistant-go/internal/service"
)

// AIHandler serves the standalone generator tools.
type AIHandler struct {
	analyzer *service.AnalyzerService
}

// NewAIHandler creates a new AIHandler instance.
func NewAIHandler(analyzer *service.AnalyzerService) *AIHandler {
	return &AIHandler{analyzer: analyzer}
}

// TopicRequest is the POST body shared by the generator tools.
type TopicRequest struct {
	Topic string `json:"topic"`
}

func bindTopic(c *gin.Context) (string, bool) {
	var req TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return "", false
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		badRequest(c, "Topic is required")
		return "", false
	}
	return topic, true
}

// HandleGenerate produces a full metadata pack for a topic.
func (h *AIHandler) HandleGenerate(c *gin.Context) {
	topic, ok := bindTopic(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topic":    topic,
		"response": h.analyzer.GenerateMetadataText(c.Request.Context(), topic),
	})
}

// HandleTags produces a comma-separated tag line for a topic.
func (h *AIHandler) HandleTags(c *gin.Context) {
	topic, ok := bindTopic(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topic":     topic,
		"tags_text": h.analyzer.FindTags(c.Request.Context(), topic),
	})
}

// HandleHashtags produces a space-separated hashtag line for a topic.
func (h *AIHandler) HandleHashtags(c *gin.Context) {
	topic, ok := bindTopic(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topic":         topic,
		"hashtags_text": h.analyzer.FindHashtags(c.Request.Context(), topic),
	})
}
