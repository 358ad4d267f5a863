package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
	"github.com/tuberank/youtube-seo-assistant-go/internal/repository"
)

// LibraryHandler serves the saved-optimization library.
type LibraryHandler struct {
	repo     repository.OptimizationRepository
	pageSize int
}

// NewLibraryHandler creates a new LibraryHandler instance.
func NewLibraryHandler(repo repository.OptimizationRepository, pageSize int) *LibraryHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &LibraryHandler{repo: repo, pageSize: pageSize}
}

// HandleList returns one page of saved optimizations, newest first.
func (h *LibraryHandler) HandleList(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	items, total, err := h.repo.List(c.Request.Context(), h.pageSize, (page-1)*h.pageSize)
	if err != nil {
		handleError(c, err)
		return
	}
	if items == nil {
		items = []*models.SavedOptimization{}
	}

	totalPages := (total + h.pageSize - 1) / h.pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"page":        page,
		"page_size":   h.pageSize,
		"total":       total,
		"total_pages": totalPages,
	})
}
