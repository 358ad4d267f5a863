package seo

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
)

func TestScorePackageSearchRelevance(t *testing.T) {
	s := NewScorer(DefaultLexicon())

	draft := models.MetadataDraft{
		Keyword:     "docker tutorial",
		Title:       "Docker Tutorial for Beginners",
		Description: "docker tutorial " + strings.Repeat("containers images volumes networks compose ", 30),
		Tags:        []string{"docker tutorial", "containers"},
	}
	_, pillars, _ := s.ScorePackage(draft, []string{"containers", "compose"}, models.SerpStats{})

	p1 := pillars[0]
	require.Equal(t, "Search Relevance", p1.Name)
	// keyword in title (+8), early (+4), early in description (+6),
	// 120-350 words (+8), 2 entities (+4), keyword in tags (+2) = 32 -> clamp 30
	assert.Equal(t, 30, p1.Score)
	assert.Equal(t, 30, p1.Max)
	assert.Equal(t, 100, p1.Pct)
}

func TestScorePackageEmptyKeywordSkipsKeywordChecks(t *testing.T) {
	s := NewScorer(DefaultLexicon())

	_, pillars, fixes := s.ScorePackage(models.MetadataDraft{Title: "A plain title"}, nil, models.SerpStats{})

	p1 := pillars[0]
	assert.NotContains(t, fixes, "Include the main keyword in the title.")
	for _, d := range p1.Details {
		assert.NotContains(t, d, "keyword")
	}
}

func TestScorePackageClickThrough(t *testing.T) {
	s := NewScorer(DefaultLexicon())

	t.Run("empty title scores zero with a fix", func(t *testing.T) {
		_, pillars, fixes := s.ScorePackage(models.MetadataDraft{}, nil, models.SerpStats{})

		p2 := pillars[1]
		require.Equal(t, "Click-Through Potential", p2.Name)
		assert.Equal(t, 0, p2.Score)
		assert.Contains(t, fixes, "Add a compelling title (≤ 70 characters).")
	})

	t.Run("71 character title takes the long-title branch", func(t *testing.T) {
		draft := models.MetadataDraft{Title: strings.Repeat("a", 71)}
		_, pillars, fixes := s.ScorePackage(draft, nil, models.SerpStats{})

		p2 := pillars[1]
		assert.Equal(t, 3, p2.Score)
		assert.Contains(t, fixes, "Shorten the title so the key hook fits in the first ~60–70 characters.")
	})

	t.Run("70 character title takes the in-range branch", func(t *testing.T) {
		draft := models.MetadataDraft{Title: strings.Repeat("a", 70)}
		_, pillars, _ := s.ScorePackage(draft, nil, models.SerpStats{})

		assert.Equal(t, 6, pillars[1].Score)
	})

	t.Run("all click signals stack and clamp at 25", func(t *testing.T) {
		draft := models.MetadataDraft{
			Title:              "Stop Wasting Time: The Truth About 7 Hidden Docker Secrets You Need",
			HasCustomThumbnail: true,
		}
		// length (+6), 2 power words (+5), curiosity (+4), loss aversion (+2),
		// number (+3), direct address (+2), thumbnail (+3) = 25
		_, pillars, _ := s.ScorePackage(draft, nil, models.SerpStats{})
		assert.Equal(t, 25, pillars[1].Score)
	})
}

func TestScorePackageRetention(t *testing.T) {
	s := NewScorer(DefaultLexicon())

	t.Run("chapter timestamps earn the chapter bonus", func(t *testing.T) {
		with := models.MetadataDraft{Description: "Intro at 0:00 and deep dive at 12:34 later on"}
		without := models.MetadataDraft{Description: "Intro first and deep dive later on today"}

		_, withPillars, _ := s.ScorePackage(with, nil, models.SerpStats{})
		_, withoutPillars, withoutFixes := s.ScorePackage(without, nil, models.SerpStats{})

		assert.Equal(t, 7, withPillars[2].Score-withoutPillars[2].Score)
		assert.Contains(t, withoutFixes, "Add timestamps/chapters in the description for easier navigation and better retention.")
	})

	t.Run("hook phrase must appear within the first 200 characters", func(t *testing.T) {
		late := strings.Repeat("x ", 110) + "in this video we explain everything"
		_, pillars, fixes := s.ScorePackage(models.MetadataDraft{Description: late}, nil, models.SerpStats{})

		assert.Contains(t, fixes, "Use the first 1–2 lines of the description to clearly state what the viewer will get.")
		assert.NotContains(t, pillars[2].Details, "First lines clearly state the value and structure (good hook for retention).")
	})

	t.Run("series marker detected case-insensitively", func(t *testing.T) {
		plain := models.MetadataDraft{Description: "In this video you will learn a lot about testing"}
		series := models.MetadataDraft{Description: "In this video you will learn a lot. Part 3 of the saga"}

		_, plainPillars, _ := s.ScorePackage(plain, nil, models.SerpStats{})
		_, seriesPillars, _ := s.ScorePackage(series, nil, models.SerpStats{})
		assert.Equal(t, 3, seriesPillars[2].Score-plainPillars[2].Score)
	})
}

func TestScorePackageEnvironment(t *testing.T) {
	s := NewScorer(DefaultLexicon())

	tests := []struct {
		name        string
		medianViews int64
		wantBase    int
		wantFix     bool
	}{
		{name: "no competition data", medianViews: 0, wantBase: 6},
		{name: "low competition", medianViews: 49999, wantBase: 10},
		{name: "moderate competition lower bound", medianViews: 50000, wantBase: 7},
		{name: "moderate competition upper bound", medianViews: 200000, wantBase: 7},
		{name: "heavy competition", medianViews: 200001, wantBase: 4, wantFix: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := models.SerpStats{MedianViews: tt.medianViews}
			_, pillars, fixes := s.ScorePackage(models.MetadataDraft{}, nil, stats)

			assert.Equal(t, tt.wantBase, pillars[3].Score)
			hasFix := false
			for _, f := range fixes {
				if strings.Contains(f, "Environment is competitive") {
					hasFix = true
				}
			}
			assert.Equal(t, tt.wantFix, hasFix)
		})
	}

	t.Run("playlist and session cues add up", func(t *testing.T) {
		draft := models.MetadataDraft{
			Description: "Check the next video in the playlist",
			InPlaylists: true,
		}
		_, pillars, _ := s.ScorePackage(draft, nil, models.SerpStats{})
		// no competition data (+6), playlists (+5), session cue (+5)
		assert.Equal(t, 16, pillars[3].Score)
	})
}

func TestScorePackageBounds(t *testing.T) {
	s := NewScorer(DefaultLexicon())
	rng := rand.New(rand.NewSource(1))

	alphabet := []rune("abc XYZ 0123:45 你好 émoji🎥 stop secret you 12:34 part 7 ")
	randText := func(n int) string {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		return b.String()
	}

	for i := 0; i < 200; i++ {
		draft := models.MetadataDraft{
			Keyword:            randText(rng.Intn(30)),
			Title:              randText(rng.Intn(300)),
			Description:        randText(rng.Intn(3000)),
			Tags:               strings.Fields(randText(rng.Intn(200))),
			HasCustomThumbnail: rng.Intn(2) == 0,
			InPlaylists:        rng.Intn(2) == 0,
		}
		entities := strings.Fields(randText(rng.Intn(80)))
		stats := models.SerpStats{MedianViews: rng.Int63n(1_000_000)}

		overall, pillars, _ := s.ScorePackage(draft, entities, stats)

		require.GreaterOrEqual(t, overall, 0)
		require.LessOrEqual(t, overall, 100)
		for _, p := range pillars {
			require.GreaterOrEqual(t, p.Score, 0, "pillar %s", p.Name)
			require.LessOrEqual(t, p.Score, p.Max, "pillar %s", p.Name)
			require.GreaterOrEqual(t, p.Pct, 0)
			require.LessOrEqual(t, p.Pct, 100)
		}
	}
}

func TestScorePackageIdempotent(t *testing.T) {
	s := NewScorer(DefaultLexicon())
	draft := models.MetadataDraft{
		Keyword:     "go testing",
		Title:       "Go Testing: 5 Mistakes You Should Avoid",
		Description: "In this video we cover table tests. 0:00 Intro. Watch next for part 2.",
		Tags:        []string{"go", "testing", "go testing"},
		InPlaylists: true,
	}
	entities := []string{"testing", "table", "mocks"}
	stats := models.SerpStats{MedianViews: 12000}

	o1, p1, f1 := s.ScorePackage(draft, entities, stats)
	o2, p2, f2 := s.ScorePackage(draft, entities, stats)

	assert.Equal(t, o1, o2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, f1, f2)
}
