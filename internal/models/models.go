// Package models contains the data models and DTOs for the YouTube SEO assistant service.
package models

import (
	"time"

	"github.com/google/uuid"
)

// VideoRecord is a single competing video as returned by the search provider.
// Counts are never negative; a hidden like count or disabled comments are
// represented as 0, not null.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type VideoRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	Thumb       string `json:"thumb"`
	URL         string `json:"url"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	Published   string `json:"published"`
	Description string `json:"description"`
	DurationSec int64  `json:"duration_sec"`
}

// MetadataDraft is the user-supplied video package under analysis.
// No uniqueness or length constraints are enforced here; those are
// scoring-time concerns.
type MetadataDraft struct {
	Keyword            string   `json:"keyword"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Tags               []string `json:"tags"`
	Hashtags           []string `json:"hashtags"`
	HasCustomThumbnail bool     `json:"has_custom_thumbnail"`
	InPlaylists        bool     `json:"in_playlists"`
}

// SerpStats summarizes the competitive environment for a keyword.
// Derived per request, never persisted.
type SerpStats struct {
	MedianViews           int64   `json:"median_views"`
	MedianLikesPer1000    float64 `json:"median_likes_per_1k"`
	MedianCommentsPer1000 float64 `json:"median_comments_per_1k"`
}

// PillarResult is one scoring dimension of the holistic package score.
type PillarResult struct {
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	Max     int      `json:"max"`
	Pct     int      `json:"pct"`
	Details []string `json:"details"`
}

// Dimension is one banded sub-score of the legacy metadata scorer.
type Dimension struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
}

// SavedOptimization is a Library entry. Created on explicit user save,
// immutable thereafter.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type SavedOptimization struct {
	ID                 uuid.UUID `json:"id"`
	Keyword            string    `json:"keyword"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	TagsText           string    `json:"tags_text"`
	HasCustomThumbnail bool      `json:"has_custom_thumbnail"`
	InPlaylists        bool      `json:"in_playlists"`
	Score              int       `json:"score"`
	Entities           string    `json:"entities"`
	CreatedAt          time.Time `json:"created_at"`
}

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}
