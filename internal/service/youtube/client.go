package youtube

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
	"github.com/tuberank/youtube-seo-assistant-go/pkg/logger"
)

const maxSearchResults = 20

// Client wraps the YouTube Data API v3 client for keyword SERP lookups.
type Client struct {
	service *youtube.Service
	region  string
	timeout time.Duration
}

// NewClient creates a new YouTube API client. The region code scopes search
// results and the timeout bounds each Search call.
func NewClient(apiKey, region string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{
		service: service,
		region:  region,
		timeout: timeout,
	}, nil
}

// Search runs a keyword search and hydrates the results with statistics and
// durations. maxResults is clamped to 1-20 to keep quota usage predictable
// (search.list costs 100 units per call).
func (c *Client) Search(ctx context.Context, query string, maxResults int64) ([]models.VideoRecord, error) {
	if maxResults < 1 {
		maxResults = 1
	}
	if maxResults > maxSearchResults {
		maxResults = maxSearchResults
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	searchCall := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		RegionCode(c.region).
		Context(ctx)

	searchResp, err := searchCall.Do()
	if err != nil {
		return nil, wrapAPIError("search", err)
	}

	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return []models.VideoRecord{}, nil
	}

	videosCall := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx)

	videosResp, err := videosCall.Do()
	if err != nil {
		return nil, wrapAPIError("videos", err)
	}

	records := make([]models.VideoRecord, 0, len(videosResp.Items))
	for _, item := range videosResp.Items {
		records = append(records, mapVideo(item))
	}

	logger.Log.Debug("YouTube search completed",
		zap.String("query", query),
		zap.Int("results", len(records)))

	return records, nil
}

func mapVideo(video *youtube.Video) models.VideoRecord {
	rec := models.VideoRecord{
		ID:    video.Id,
		Thumb: fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", video.Id),
		URL:   fmt.Sprintf("https://www.youtube.com/watch?v=%s", video.Id),
	}

	if video.Snippet != nil {
		rec.Title = video.Snippet.Title
		rec.Channel = video.Snippet.ChannelTitle
		rec.Description = video.Snippet.Description
		rec.Published = publishedDate(video.Snippet.PublishedAt)
	}

	// Hidden counters come back as zero values.
	if video.Statistics != nil {
		rec.Views = int64(video.Statistics.ViewCount)
		rec.Likes = int64(video.Statistics.LikeCount)
		rec.Comments = int64(video.Statistics.CommentCount)
	}

	if video.ContentDetails != nil {
		if secs, err := ParseVideoDuration(video.ContentDetails.Duration); err == nil {
			rec.DurationSec = int64(secs)
		}
	}

	return rec
}

// publishedDate reduces an RFC3339 timestamp to its date part.
func publishedDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

func wrapAPIError(op string, err error) error {
	if apiErr, ok := err.(*googleapi.Error); ok {
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error()
		}
		return &models.ProviderError{Provider: "YouTube", Status: apiErr.Code, Message: msg}
	}
	return fmt.Errorf("youtube %s call failed: %w", op, err)
}

// ParseVideoDuration converts ISO 8601 duration to seconds
// Example: "PT4M13S" -> 253 seconds
func ParseVideoDuration(duration string) (int, error) {
	if !strings.HasPrefix(duration, "PT") {
		return 0, fmt.Errorf("invalid duration format: %s", duration)
	}

	duration = strings.TrimPrefix(duration, "PT")

	var hours, minutes, seconds int

	if hIdx := strings.Index(duration, "H"); hIdx != -1 {
		h, err := strconv.Atoi(duration[:hIdx])
		if err != nil {
			return 0, err
		}
		hours = h
		duration = duration[hIdx+1:]
	}

	if mIdx := strings.Index(duration, "M"); mIdx != -1 {
		m, err := strconv.Atoi(duration[:mIdx])
		if err != nil {
			return 0, err
		}
		minutes = m
		duration = duration[mIdx+1:]
	}

	if sIdx := strings.Index(duration, "S"); sIdx != -1 {
		s, err := strconv.Atoi(duration[:sIdx])
		if err != nil {
			return 0, err
		}
		seconds = s
	}

	return hours*3600 + minutes*60 + seconds, nil
}
