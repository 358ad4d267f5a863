package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
	"github.com/tuberank/youtube-seo-assistant-go/internal/service/ai"
)

func discoverFixture() []models.VideoRecord {
	return []models.VideoRecord{
		{ID: "a", Title: "Go tutorial", Description: "learn go", Views: 1000, Likes: 50, Comments: 10, DurationSec: 600, Published: "2024-03-01"},
		{ID: "b", Title: "Go shorts", Description: "quick tip", Views: 500, Likes: 1, Comments: 1, DurationSec: 45, Published: "2024-05-01"},
		{ID: "c", Title: "Rust review", Description: "a review", Views: 2000, Likes: 100, Comments: 30, DurationSec: 1200, Published: "2024-01-01"},
	}
}

func TestDiscoverRequiresYouTubeKey(t *testing.T) {
	svc := NewDiscoveryService(nil, &fakeGenerator{}, testConfig())

	_, err := svc.Discover(context.Background(), DiscoverRequest{Query: "go"})

	var cfgErr *models.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestDiscoverDefaultsMaxResults(t *testing.T) {
	yt := &fakeSearcher{}
	svc := NewDiscoveryService(yt, &fakeGenerator{}, testConfig())

	_, err := svc.Discover(context.Background(), DiscoverRequest{Query: "go"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), yt.gotMax)
}

func TestDiscoverEmptyResults(t *testing.T) {
	yt := &fakeSearcher{}
	gen := &fakeGenerator{}
	svc := NewDiscoveryService(yt, gen, testConfig())

	res, err := svc.Discover(context.Background(), DiscoverRequest{Query: "go"})

	require.NoError(t, err)
	assert.Empty(t, res.Videos)
	assert.Equal(t, "No data yet", res.Sentiment.Text)
	assert.Zero(t, res.Difficulty.Top1)
	assert.Nil(t, res.Averages.Likes)
	assert.Empty(t, res.AIInsight)
	assert.Zero(t, gen.calls, "no AI call for an empty result set")
}

func TestDiscoverDurationFilters(t *testing.T) {
	yt := &fakeSearcher{videos: discoverFixture()}
	svc := NewDiscoveryService(yt, &fakeGenerator{result: ai.Result{Text: "insight"}}, testConfig())

	minLen := int64(60)
	maxLen := int64(900)
	res, err := svc.Discover(context.Background(), DiscoverRequest{Query: "go", MinLenSec: &minLen, MaxLenSec: &maxLen})

	require.NoError(t, err)
	require.Len(t, res.Videos, 1)
	assert.Equal(t, "a", res.Videos[0].ID)
}

func TestDiscoverTextFilter(t *testing.T) {
	yt := &fakeSearcher{videos: discoverFixture()}
	svc := NewDiscoveryService(yt, &fakeGenerator{result: ai.Result{Text: "insight"}}, testConfig())

	res, err := svc.Discover(context.Background(), DiscoverRequest{Query: "go", TextFilter: "REVIEW"})

	require.NoError(t, err)
	require.Len(t, res.Videos, 1)
	assert.Equal(t, "c", res.Videos[0].ID)
}

func TestDiscoverSorting(t *testing.T) {
	tests := []struct {
		sort string
		want []string
	}{
		{sort: "ranking", want: []string{"a", "b", "c"}},
		{sort: "", want: []string{"a", "b", "c"}},
		{sort: "likes", want: []string{"c", "a", "b"}},
		{sort: "comments", want: []string{"c", "a", "b"}},
		{sort: "views", want: []string{"c", "a", "b"}},
		{sort: "published", want: []string{"b", "a", "c"}},
	}

	for _, tt := range tests {
		t.Run("sort "+tt.sort, func(t *testing.T) {
			yt := &fakeSearcher{videos: discoverFixture()}
			svc := NewDiscoveryService(yt, &fakeGenerator{result: ai.Result{Text: "insight"}}, testConfig())

			res, err := svc.Discover(context.Background(), DiscoverRequest{Query: "go", Sort: tt.sort})
			require.NoError(t, err)

			got := make([]string, 0, len(res.Videos))
			for _, v := range res.Videos {
				got = append(got, v.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscoverAveragesAndRatio(t *testing.T) {
	yt := &fakeSearcher{videos: []models.VideoRecord{
		{ID: "a", Views: 1000, Likes: 50, Comments: 10},
		{ID: "b", Views: 0, Likes: 10, Comments: 2},
	}}
	svc := NewDiscoveryService(yt, &fakeGenerator{result: ai.Result{Text: "insight"}}, testConfig())

	res, err := svc.Discover(context.Background(), DiscoverRequest{Query: "go"})
	require.NoError(t, err)
	require.Len(t, res.Videos, 2)

	require.NotNil(t, res.Videos[0].Ratio)
	assert.InDelta(t, 0.05, *res.Videos[0].Ratio, 1e-9)
	assert.Nil(t, res.Videos[1].Ratio, "hidden view counts have no ratio")
	assert.Equal(t, "1k", res.Videos[0].ViewsShort)
	assert.Equal(t, "50", res.Videos[0].LikesShort)

	assert.InDelta(t, 30.0, *res.Averages.Likes, 1e-9)
	assert.InDelta(t, 500.0, *res.Averages.Views, 1e-9)
	assert.InDelta(t, 6.0, *res.Averages.Comments, 1e-9)
	// Only one video contributes a ratio.
	assert.InDelta(t, 0.05, *res.Averages.Ratio, 1e-9)
}

func TestClassifySentiment(t *testing.T) {
	low := 0.005
	mid := 0.02
	high := 0.05

	assert.Equal(t, "😞", classifySentiment(nil).Emoji)
	assert.Equal(t, "😞", classifySentiment(&low).Emoji)
	assert.Equal(t, "😐", classifySentiment(&mid).Emoji)
	assert.Equal(t, "😊", classifySentiment(&high).Emoji)
}

func TestDifficultyScore(t *testing.T) {
	assert.Equal(t, 0, difficultyScore(0))
	assert.Equal(t, 60, difficultyScore(999))
	assert.Equal(t, 100, difficultyScore(10_000_000_000))
}

func TestEstimateDifficulty(t *testing.T) {
	mk := func(views ...int64) []DiscoverVideo {
		out := make([]DiscoverVideo, len(views))
		for i, v := range views {
			out[i] = DiscoverVideo{VideoRecord: models.VideoRecord{Views: v}}
		}
		return out
	}

	// Fewer than five results fall back to the weakest video.
	d := estimateDifficulty(mk(999, 9))
	assert.Equal(t, 60, d.Top1)
	assert.Equal(t, 20, d.Top5)

	d = estimateDifficulty(mk(999, 999, 999, 999, 9, 0))
	assert.Equal(t, 60, d.Top1)
	assert.Equal(t, 20, d.Top5)
}

func TestDiscoverInsightSampleCapped(t *testing.T) {
	videos := make([]models.VideoRecord, 12)
	for i := range videos {
		videos[i] = models.VideoRecord{ID: string(rune('a' + i)), Title: "video", Views: 100}
	}
	yt := &fakeSearcher{videos: videos}
	gen := &fakeGenerator{result: ai.Result{Text: "insight"}}
	svc := NewDiscoveryService(yt, gen, testConfig())

	res, err := svc.Discover(context.Background(), DiscoverRequest{Query: "go"})
	require.NoError(t, err)

	assert.Equal(t, "insight", res.AIInsight)
	assert.Equal(t, 1, gen.calls)
	// 8 sample entries at most, one "title" key each.
	assert.Equal(t, 8, countSubstrings(gen.gotPrompt, `"title"`))
}

func countSubstrings(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}
	return count
}
