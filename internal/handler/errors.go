package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
	"github.com/tuberank/youtube-seo-assistant-go/pkg/logger"
)

// handleError maps service errors onto HTTP responses. Missing credentials
// surface as 503 so the UI can name the key to set, upstream API failures
// as 502.
func handleError(c *gin.Context, err error) {
	switch e := err.(type) {
	case *models.ConfigurationError:
		logger.Log.Warn("Configuration error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Status:    http.StatusServiceUnavailable,
			Error:     "Service Unavailable",
			Message:   e.Message,
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	case *models.ProviderError:
		logger.Log.Error("Provider error",
			zap.Error(err),
			zap.Int("upstreamStatus", e.Status),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Status:    http.StatusBadGateway,
			Error:     "Bad Gateway",
			Message:   err.Error(),
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	default:
		logger.Log.Error("Unexpected error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:    http.StatusInternalServerError,
			Error:     "Internal Server Error",
			Message:   "An unexpected error occurred",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status:    http.StatusBadRequest,
		Error:     "Bad Request",
		Message:   message,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	})
}
