package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
	"github.com/tuberank/youtube-seo-assistant-go/internal/repository"
	"github.com/tuberank/youtube-seo-assistant-go/internal/service"
)

// OptimizeHandler serves draft analysis and saving to the library.
type OptimizeHandler struct {
	analyzer *service.AnalyzerService
	repo     repository.OptimizationRepository
}

// NewOptimizeHandler creates a new OptimizeHandler instance.
func NewOptimizeHandler(analyzer *service.AnalyzerService, repo repository.OptimizationRepository) *OptimizeHandler {
	return &OptimizeHandler{analyzer: analyzer, repo: repo}
}

// HandleAnalyze scores the submitted draft against the live SERP.
func (h *OptimizeHandler) HandleAnalyze(c *gin.Context) {
	req := service.AnalyzeRequest{
		Keyword:            strings.TrimSpace(c.Query("keyword")),
		Title:              strings.TrimSpace(c.Query("title")),
		Description:        strings.TrimSpace(c.Query("description")),
		Tags:               splitTags(c.Query("tags")),
		HasCustomThumbnail: isChecked(c.Query("has_custom_thumbnail")),
		InPlaylists:        isChecked(c.Query("in_playlists")),
	}

	analysis, err := h.analyzer.Analyze(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// SaveRequest is the POST body for saving an optimization.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type SaveRequest struct {
	Keyword            string `json:"keyword"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Tags               string `json:"tags"`
	HasCustomThumbnail bool   `json:"has_custom_thumbnail"`
	InPlaylists        bool   `json:"in_playlists"`
	Score              int    `json:"score"`
	Entities           string `json:"entities"`
}

// HandleSave stores the analyzed draft in the library.
func (h *OptimizeHandler) HandleSave(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	opt := &models.SavedOptimization{
		Keyword:            strings.TrimSpace(req.Keyword),
		Title:              strings.TrimSpace(req.Title),
		Description:        strings.TrimSpace(req.Description),
		TagsText:           strings.TrimSpace(req.Tags),
		HasCustomThumbnail: req.HasCustomThumbnail,
		InPlaylists:        req.InPlaylists,
		Score:              req.Score,
		Entities:           req.Entities,
	}

	if err := h.repo.Save(c.Request.Context(), opt); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, opt)
}

// splitTags parses the comma-separated tags field. Empty entries survive
// trimming so the tag count matches what the user typed.
func splitTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// isChecked interprets checkbox-style form values.
func isChecked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off":
		return false
	default:
		return true
	}
}
