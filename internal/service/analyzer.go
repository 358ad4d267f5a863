package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/tuberank/youtube-seo-assistant-go/internal/config"
	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
	"github.com/tuberank/youtube-seo-assistant-go/internal/seo"
	"github.com/tuberank/youtube-seo-assistant-go/internal/service/ai"
	"github.com/tuberank/youtube-seo-assistant-go/pkg/logger"
)

// Searcher is the slice of the YouTube client the services need.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int64) ([]models.VideoRecord, error)
}

// Generator is the slice of the Gemini client the services need.
type Generator interface {
	Generate(ctx context.Context, prompt string) ai.Result
	GenerateMetadata(ctx context.Context, prompt string) (*ai.Metadata, ai.Result)
}

// AnalyzeRequest carries a metadata draft into the analyzer.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type AnalyzeRequest struct {
	Keyword            string
	Title              string
	Description        string
	Tags               []string
	HasCustomThumbnail bool
	InPlaylists        bool
}

// Checks echoes the boolean inputs back to the UI.
type Checks struct {
	CustomThumbnail bool `json:"custom_thumbnail"`
	InPlaylists     bool `json:"in_playlists"`
}

// Analysis is the full result of an optimize run: the pillar score, the
// metadata-only score, rule-based suggestions and the optional AI draft.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Analysis struct {
	Entities      []string              `json:"entities"`
	Score         int                   `json:"score"`
	Breakdown     map[string]int        `json:"breakdown"`
	Pillars       []models.PillarResult `json:"pillars"`
	Fixes         []string              `json:"fixes"`
	SerpCount     int                   `json:"serp_count"`
	TitleLen      int                   `json:"title_len"`
	DescLen       int                   `json:"desc_len"`
	TagsCount     int                   `json:"tags_count"`
	Checks        Checks                `json:"checks"`
	MetaScore     int                   `json:"meta_score"`
	MetaBreakdown []models.Dimension    `json:"meta_breakdown"`
	MetaFixes     []string              `json:"meta_fixes"`

	SuggestedTitles      []string `json:"suggested_titles"`
	SuggestedDescription string   `json:"suggested_description"`
	SuggestedTags        []string `json:"suggested_tags"`
	SuggestedHashtags    []string `json:"suggested_hashtags"`

	AIMetadata    *ai.Metadata `json:"ai_metadata,omitempty"`
	AIMetadataRaw string       `json:"ai_metadata_raw,omitempty"`
}

// AnalyzerService runs the optimize flow: SERP lookup, entity extraction,
// scoring and suggestions. It also fronts the standalone AI generators.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type AnalyzerService struct {
	yt        Searcher
	gen       Generator
	scorer    *seo.Scorer
	extractor *seo.Extractor
	suggester *seo.Suggester
	cfg       *config.Config
}

// NewAnalyzerService creates the analyzer. yt may be nil when no YouTube
// key is configured; analyses with a keyword then fail with a
// ConfigurationError while keyword-less analyses still work.
func NewAnalyzerService(yt Searcher, gen Generator, lexicon *seo.Lexicon, cfg *config.Config) *AnalyzerService {
	return &AnalyzerService{
		yt:        yt,
		gen:       gen,
		scorer:    seo.NewScorer(lexicon),
		extractor: seo.NewExtractor(lexicon),
		suggester: seo.NewSuggester(lexicon),
		cfg:       cfg,
	}
}

// Analyze scores the draft against the live SERP for its keyword and
// attaches rule-based and AI-generated suggestions.
func (s *AnalyzerService) Analyze(ctx context.Context, req AnalyzeRequest) (*Analysis, error) {
	var serp []models.VideoRecord
	if req.Keyword != "" {
		if s.yt == nil {
			return nil, &models.ConfigurationError{Message: "Missing YOUTUBE_API_KEY. Add it to your .env file."}
		}
		var err error
		serp, err = s.yt.Search(ctx, req.Keyword, int64(s.cfg.YouTube.SerpResults))
		if err != nil {
			return nil, err
		}
	}

	corpus := make([]string, 0, len(serp))
	for _, v := range serp {
		corpus = append(corpus, v.Title+" "+v.Description)
	}
	entities := s.extractor.TopEntities(corpus, s.cfg.Scoring.EntityTopK)
	stats := seo.ComputeSerpStats(serp)

	draft := models.MetadataDraft{
		Keyword:            req.Keyword,
		Title:              req.Title,
		Description:        req.Description,
		Tags:               req.Tags,
		HasCustomThumbnail: req.HasCustomThumbnail,
		InPlaylists:        req.InPlaylists,
	}
	overall, pillars, pillarFixes := s.scorer.ScorePackage(draft, entities, stats)

	metaHashtags := s.suggester.Hashtags(req.Tags, req.Keyword, s.cfg.Scoring.HashtagCap)
	metaScore, metaBreakdown, metaFixes := seo.ScoreMetadata(req.Title, req.Description, req.Tags, metaHashtags)

	breakdown := make(map[string]int, len(pillars))
	for _, p := range pillars {
		breakdown[p.Name] = p.Score
	}

	suggestedTags := s.suggester.Tags(req.Keyword, entities)

	analysis := &Analysis{
		Entities:      entities,
		Score:         overall,
		Breakdown:     breakdown,
		Pillars:       pillars,
		Fixes:         append(append([]string{}, pillarFixes...), metaFixes...),
		SerpCount:     len(serp),
		TitleLen:      len([]rune(req.Title)),
		DescLen:       len([]rune(req.Description)),
		TagsCount:     len(req.Tags),
		Checks:        Checks{CustomThumbnail: req.HasCustomThumbnail, InPlaylists: req.InPlaylists},
		MetaScore:     metaScore,
		MetaBreakdown: metaBreakdown,
		MetaFixes:     metaFixes,

		SuggestedTitles:      s.suggester.Titles(req.Keyword, entities),
		SuggestedDescription: s.suggester.Description(req.Keyword, entities),
		SuggestedTags:        suggestedTags,
		SuggestedHashtags:    s.suggester.Hashtags(suggestedTags, req.Keyword, s.cfg.Scoring.HashtagFeedCap),
	}

	if req.Keyword != "" || req.Title != "" || req.Description != "" {
		s.attachAIMetadata(ctx, req, entities, analysis)
	}

	return analysis, nil
}

func (s *AnalyzerService) attachAIMetadata(ctx context.Context, req AnalyzeRequest, entities []string, analysis *Analysis) {
	payload := map[string]interface{}{
		"keyword":             req.Keyword,
		"current_title":       req.Title,
		"current_description": req.Description,
		"current_tags":        req.Tags,
		"entities":            entities,
	}
	payloadJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		logger.Log.Error("Failed to serialize AI payload", zap.Error(err))
		return
	}

	meta, raw := s.gen.GenerateMetadata(ctx, optimizeMetadataPrompt(string(payloadJSON)))
	if meta != nil {
		analysis.AIMetadata = meta
		return
	}
	analysis.AIMetadataRaw = raw.Display()
}

// GenerateMetadataText produces the free-form metadata pack for a topic.
func (s *AnalyzerService) GenerateMetadataText(ctx context.Context, topic string) string {
	return s.gen.Generate(ctx, generatorPrompt(topic)).Display()
}

// FindTags produces a comma-separated tag line for a topic.
func (s *AnalyzerService) FindTags(ctx context.Context, topic string) string {
	return s.gen.Generate(ctx, tagFinderPrompt(topic)).Display()
}

// FindHashtags produces a space-separated hashtag line for a topic.
func (s *AnalyzerService) FindHashtags(ctx context.Context, topic string) string {
	return s.gen.Generate(ctx, hashtagFinderPrompt(topic)).Display()
}
