package service

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tuberank/youtube-seo-assistant-go/internal/config"
	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
	"github.com/tuberank/youtube-seo-assistant-go/pkg/format"
	"github.com/tuberank/youtube-seo-assistant-go/pkg/logger"
)

// DiscoverRequest carries the search bar plus the advanced filters.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type DiscoverRequest struct {
	Query      string
	MaxResults int64
	Sort       string
	TextFilter string
	MinLenSec  *int64
	MaxLenSec  *int64
}

// DiscoverVideo is a SERP entry plus its like/view ratio and compact count
// labels for the result table. Ratio is nil when the view count is hidden
// or zero.
type DiscoverVideo struct {
	models.VideoRecord
	Ratio      *float64 `json:"ratio"`
	ViewsShort string   `json:"views_short"`
	LikesShort string   `json:"likes_short"`
}

// Averages summarizes the filtered result set. All fields are nil when no
// videos matched.
type Averages struct {
	Likes    *float64 `json:"likes"`
	Views    *float64 `json:"views"`
	Comments *float64 `json:"comments"`
	Ratio    *float64 `json:"ratio"`
}

// Sentiment is the coarse audience reception verdict.
type Sentiment struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

// Difficulty estimates how hard the keyword is to rank for, derived from
// the view counts of the strongest competitors.
type Difficulty struct {
	Top1 int `json:"top1"`
	Top5 int `json:"top5"`
}

// DiscoverResult is the full discover page payload.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type DiscoverResult struct {
	Videos     []DiscoverVideo `json:"results"`
	Averages   Averages        `json:"avg"`
	Sentiment  Sentiment       `json:"sentiment"`
	Difficulty Difficulty      `json:"difficulty"`
	AIInsight  string          `json:"ai_insight,omitempty"`
}

// insightSample is the slimmed video shape fed to the AI insight prompt.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type insightSample struct {
	Title       string `json:"title"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	DurationSec int64  `json:"duration_sec"`
}

// DiscoveryService runs keyword research: search, filter, sort, aggregate
// and summarize.
type DiscoveryService struct {
	yt  Searcher
	gen Generator
	cfg *config.Config
}

// NewDiscoveryService creates the discovery service. yt may be nil when no
// YouTube key is configured.
func NewDiscoveryService(yt Searcher, gen Generator, cfg *config.Config) *DiscoveryService {
	return &DiscoveryService{yt: yt, gen: gen, cfg: cfg}
}

// Discover searches the keyword and aggregates the filtered results.
func (s *DiscoveryService) Discover(ctx context.Context, req DiscoverRequest) (*DiscoverResult, error) {
	if s.yt == nil {
		return nil, &models.ConfigurationError{Message: "Missing YOUTUBE_API_KEY. Add it to your .env file."}
	}

	n := req.MaxResults
	if n <= 0 {
		n = int64(s.cfg.YouTube.DefaultResults)
	}

	data, err := s.yt.Search(ctx, req.Query, n)
	if err != nil {
		return nil, err
	}

	videos := filterVideos(data, req)
	sortVideos(videos, req.Sort)

	result := &DiscoverResult{
		Videos:    videos,
		Sentiment: Sentiment{Emoji: "😶", Text: "No data yet"},
	}
	if len(videos) == 0 {
		return result, nil
	}

	result.Averages = computeAverages(videos)
	result.Sentiment = classifySentiment(result.Averages.Ratio)
	result.Difficulty = estimateDifficulty(videos)
	result.AIInsight = s.insight(ctx, req.Query, videos)

	logger.Log.Info("Discover completed",
		zap.String("query", req.Query),
		zap.Int("results", len(videos)))

	return result, nil
}

func filterVideos(data []models.VideoRecord, req DiscoverRequest) []DiscoverVideo {
	textFilter := strings.ToLower(strings.TrimSpace(req.TextFilter))

	videos := make([]DiscoverVideo, 0, len(data))
	for _, v := range data {
		if req.MinLenSec != nil && v.DurationSec < *req.MinLenSec {
			continue
		}
		if req.MaxLenSec != nil && v.DurationSec > *req.MaxLenSec {
			continue
		}
		if textFilter != "" {
			blob := strings.ToLower(v.Title + " " + v.Description)
			if !strings.Contains(blob, textFilter) {
				continue
			}
		}
		dv := DiscoverVideo{
			VideoRecord: v,
			ViewsShort:  format.ShortNum(v.Views),
			LikesShort:  format.ShortNum(v.Likes),
		}
		if v.Views > 0 {
			ratio := float64(v.Likes) / float64(v.Views)
			dv.Ratio = &ratio
		}
		videos = append(videos, dv)
	}
	return videos
}

// sortVideos orders the slice in place. The zero value and "ranking" keep
// the search API order.
func sortVideos(videos []DiscoverVideo, key string) {
	switch key {
	case "likes":
		sort.SliceStable(videos, func(i, j int) bool { return videos[i].Likes > videos[j].Likes })
	case "comments":
		sort.SliceStable(videos, func(i, j int) bool { return videos[i].Comments > videos[j].Comments })
	case "views":
		sort.SliceStable(videos, func(i, j int) bool { return videos[i].Views > videos[j].Views })
	case "published":
		sort.SliceStable(videos, func(i, j int) bool { return videos[i].Published > videos[j].Published })
	}
}

func computeAverages(videos []DiscoverVideo) Averages {
	n := float64(len(videos))
	var likes, views, comments float64
	var ratioSum float64
	ratioCount := 0
	for _, v := range videos {
		likes += float64(v.Likes)
		views += float64(v.Views)
		comments += float64(v.Comments)
		if v.Ratio != nil {
			ratioSum += *v.Ratio
			ratioCount++
		}
	}

	avgLikes := likes / n
	avgViews := views / n
	avgComments := comments / n
	avgs := Averages{Likes: &avgLikes, Views: &avgViews, Comments: &avgComments}
	if ratioCount > 0 {
		avgRatio := ratioSum / float64(ratioCount)
		avgs.Ratio = &avgRatio
	}
	return avgs
}

func classifySentiment(avgRatio *float64) Sentiment {
	switch {
	case avgRatio == nil || *avgRatio < 0.01:
		return Sentiment{Emoji: "😞", Text: "People don't seem to like these videos"}
	case *avgRatio < 0.04:
		return Sentiment{Emoji: "😐", Text: "Audience sentiment looks average"}
	default:
		return Sentiment{Emoji: "😊", Text: "Audience seems to like these videos"}
	}
}

func estimateDifficulty(videos []DiscoverVideo) Difficulty {
	byViews := make([]DiscoverVideo, len(videos))
	copy(byViews, videos)
	sort.SliceStable(byViews, func(i, j int) bool { return byViews[i].Views > byViews[j].Views })

	top1 := byViews[0].Views
	top5 := byViews[len(byViews)-1].Views
	if len(byViews) >= 5 {
		top5 = byViews[4].Views
	}

	return Difficulty{Top1: difficultyScore(top1), Top5: difficultyScore(top5)}
}

// difficultyScore maps a view count onto 0-100 on a log scale.
func difficultyScore(views int64) int {
	score := int(math.Log10(float64(views)+1) * 20)
	if score > 100 {
		return 100
	}
	return score
}

func (s *DiscoveryService) insight(ctx context.Context, query string, videos []DiscoverVideo) string {
	sample := make([]insightSample, 0, 8)
	for i, v := range videos {
		if i == 8 {
			break
		}
		sample = append(sample, insightSample{
			Title:       v.Title,
			Views:       v.Views,
			Likes:       v.Likes,
			Comments:    v.Comments,
			DurationSec: v.DurationSec,
		})
	}

	sampleJSON, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		logger.Log.Error("Failed to serialize insight sample", zap.Error(err))
		return ""
	}

	return s.gen.Generate(ctx, discoverInsightPrompt(query, string(sampleJSON))).Display()
}
