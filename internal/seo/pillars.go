package seo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
)

// Pillar score caps. The four pillars sum to the 0-100 overall score.
const (
	searchRelevanceMax = 30
	clickThroughMax    = 25
	retentionMax       = 25
	environmentMax     = 20
)

var (
	scoreTokenRe = regexp.MustCompile(`[A-Za-z0-9']+`)
	chapterRe    = regexp.MustCompile(`\b\d{1,2}:\d{2}(:\d{2})?\b`)
	numberRe     = regexp.MustCompile(`\b\d+\b`)
	directYouRe  = regexp.MustCompile(`\byou\b|\byour\b`)
	seriesRe     = regexp.MustCompile(`\bpart\s+\d+\b|\bepisode\s+\d+\b`)
)

// Scorer computes the holistic, pillar-based package score.
type Scorer struct {
	lexicon *Lexicon
}

// NewScorer creates a Scorer over the given lexicon.
func NewScorer(lexicon *Lexicon) *Scorer {
	return &Scorer{lexicon: lexicon}
}

func countOccurrences(text string, words map[string]bool) int {
	if text == "" {
		return 0
	}
	n := 0
	for _, tok := range scoreTokenRe.FindAllString(strings.ToLower(text), -1) {
		if words[tok] {
			n++
		}
	}
	return n
}

func hasAnyPhrase(text string, phrases []string) bool {
	if text == "" {
		return false
	}
	tl := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(tl, p) {
			return true
		}
	}
	return false
}

// hasChapters is a rough check for timestamps like 0:00, 12:34, 1:02:45.
func hasChapters(description string) bool {
	return description != "" && chapterRe.MatchString(description)
}

func wordCount(text string) int {
	return len(scoreTokenRe.FindAllString(text, -1))
}

// firstRunes returns the first n runes of s (the whole string when shorter).
func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// runeIndex is strings.Index measured in runes, -1 when absent.
func runeIndex(s, substr string) int {
	i := strings.Index(s, substr)
	if i < 0 {
		return -1
	}
	return len([]rune(s[:i]))
}

func clamp(score, max int) int {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}

func pct(score, max int) int {
	if max == 0 {
		return 0
	}
	return score * 100 / max
}

// ScorePackage scores a metadata draft against the competitive environment.
// It returns the overall 0-100 score, the four pillar results in display
// order, and the accumulated fix suggestions.
func (s *Scorer) ScorePackage(
	draft models.MetadataDraft,
	entities []string,
	stats models.SerpStats,
) (int, []models.PillarResult, []string) {
	var fixes []string

	kw := strings.ToLower(strings.TrimSpace(draft.Keyword))
	title := strings.TrimSpace(draft.Title)
	desc := strings.TrimSpace(draft.Description)
	titleLc := strings.ToLower(title)
	descLc := strings.ToLower(desc)

	var tags []string
	for _, t := range draft.Tags {
		if tt := strings.ToLower(strings.TrimSpace(t)); tt != "" {
			tags = append(tags, tt)
		}
	}

	descWords := wordCount(desc)

	p1 := s.scoreSearchRelevance(kw, titleLc, descLc, descWords, entities, tags, &fixes)
	p2 := s.scoreClickThrough(title, titleLc, draft.HasCustomThumbnail, &fixes)
	p3 := s.scoreRetention(desc, descLc, descWords, &fixes)
	p4 := s.scoreEnvironment(descLc, stats, draft.InPlaylists, &fixes)

	pillars := []models.PillarResult{p1, p2, p3, p4}
	overall := clamp(p1.Score+p2.Score+p3.Score+p4.Score, 100)
	return overall, pillars, fixes
}

func (s *Scorer) scoreSearchRelevance(
	kw, titleLc, descLc string,
	descWords int,
	entities, tags []string,
	fixes *[]string,
) models.PillarResult {
	score := 0
	var details []string

	if kw != "" {
		if strings.Contains(titleLc, kw) {
			score += 8
			details = append(details, "Main keyword present in title.")
			if runeIndex(titleLc, kw) <= 15 {
				score += 4
				details = append(details, "Keyword appears early in the title.")
			}
		} else {
			details = append(details, "Keyword is missing from title.")
			*fixes = append(*fixes, "Include the main keyword in the title.")
		}

		// Keyword "above the fold" in the description (first ~80 chars).
		if strings.Contains(firstRunes(descLc, 80), kw) {
			score += 6
			details = append(details, "Keyword appears early in the description.")
		} else if strings.Contains(descLc, kw) {
			score += 3
			details = append(details, "Keyword appears in the description (not early).")
		} else {
			*fixes = append(*fixes, "Mention the main keyword near the start of the description.")
		}
	}

	switch {
	case descWords == 0:
		details = append(details, "No description text.")
		*fixes = append(*fixes, "Add a descriptive, keyword-rich description (min 150–250 words).")
	case descWords < 120:
		score += 4
		details = append(details, "Short description – add more context and variations of your keyword.")
		*fixes = append(*fixes, "Expand the description to better explain the content and include related phrases.")
	case descWords <= 350:
		score += 8
		details = append(details, "Solid description length for Search.")
	default:
		score += 6
		details = append(details, "Very detailed description – good for Search, ensure it remains readable.")
	}

	entMatches := 0
	for _, e := range entities {
		el := strings.ToLower(e)
		if strings.Contains(titleLc, el) || strings.Contains(descLc, el) {
			entMatches++
		}
	}
	if entMatches > 0 {
		bonus := entMatches * 2
		if bonus > 8 {
			bonus = 8
		}
		score += bonus
		details = append(details, fmt.Sprintf("Includes %d important topic entities from top results.", entMatches))
	} else {
		details = append(details, "Does not clearly reflect SERP entities in title/description.")
		*fixes = append(*fixes, "Include 2–4 of the important terms your competitors use (entities).")
	}

	if len(tags) > 0 {
		keywordInTags := false
		if kw != "" {
			for _, t := range tags {
				if strings.Contains(t, kw) {
					keywordInTags = true
					break
				}
			}
		}
		if keywordInTags {
			score += 2
			details = append(details, "Keyword appears in tags (ok but low-importance).")
		} else if len(tags) >= 5 {
			score++
			details = append(details, "Tags present (low-importance).")
		}
	}

	score = clamp(score, searchRelevanceMax)
	return models.PillarResult{
		Name:    "Search Relevance",
		Score:   score,
		Max:     searchRelevanceMax,
		Pct:     pct(score, searchRelevanceMax),
		Details: details,
	}
}

func (s *Scorer) scoreClickThrough(title, titleLc string, hasCustomThumbnail bool, fixes *[]string) models.PillarResult {
	score := 0
	var details []string

	switch tlen := len([]rune(title)); {
	case tlen == 0:
		details = append(details, "No title – cannot generate clicks.")
		*fixes = append(*fixes, "Add a compelling title (≤ 70 characters).")
	case tlen <= 70:
		score += 6
		details = append(details, "Title length is within the recommended range.")
	default:
		score += 3
		details = append(details, "Title is quite long; may get truncated on mobile.")
		*fixes = append(*fixes, "Shorten the title so the key hook fits in the first ~60–70 characters.")
	}

	switch pw := countOccurrences(title, s.lexicon.PowerWords); {
	case pw >= 2:
		score += 5
		details = append(details, "Title uses strong emotional/power words to stand out.")
	case pw == 1:
		score += 3
		details = append(details, "Title includes one emotional/power word.")
	default:
		details = append(details, "Title may be too neutral; consider adding one emotional/power word.")
	}

	if hasAnyPhrase(title, s.lexicon.CuriosityPhrases) {
		score += 4
		details = append(details, "Title creates a curiosity gap (very good for CTR).")
	}
	if countOccurrences(title, s.lexicon.LossAversionWords) >= 1 {
		score += 2
		details = append(details, "Title uses loss-aversion language (e.g., 'stop', 'avoid').")
	}

	if numberRe.MatchString(title) {
		score += 3
		details = append(details, "Number in the title suggests structure (lists, steps).")
	}

	if directYouRe.MatchString(titleLc) {
		score += 2
		details = append(details, "Title speaks directly to the viewer ('you', 'your').")
	}

	if hasCustomThumbnail {
		score += 3
		details = append(details, "Custom thumbnail enabled – critical for CTR.")
	} else {
		*fixes = append(*fixes, "Design and upload a custom thumbnail; default frames perform poorly for CTR.")
	}

	score = clamp(score, clickThroughMax)
	return models.PillarResult{
		Name:    "Click-Through Potential",
		Score:   score,
		Max:     clickThroughMax,
		Pct:     pct(score, clickThroughMax),
		Details: details,
	}
}

func (s *Scorer) scoreRetention(desc, descLc string, descWords int, fixes *[]string) models.PillarResult {
	score := 0
	var details []string

	switch {
	case descWords == 0:
		details = append(details, "No description – hard to set expectations or reinforce the hook.")
	case descWords < 80:
		score += 4
		details = append(details, "Very short description – add more context and structure.")
	case descWords <= 300:
		score += 8
		details = append(details, "Good description length for setting expectations.")
	default:
		score += 6
		details = append(details, "Long description – may be strong if well structured.")
	}

	if hasChapters(desc) {
		score += 7
		details = append(details, "Description includes timestamps/chapters – helps segment-based retention.")
	} else {
		*fixes = append(*fixes, "Add timestamps/chapters in the description for easier navigation and better retention.")
	}

	if hasAnyPhrase(firstRunes(desc, 200), s.lexicon.HookPhrases) {
		score += 5
		details = append(details, "First lines clearly state the value and structure (good hook for retention).")
	} else {
		*fixes = append(*fixes, "Use the first 1–2 lines of the description to clearly state what the viewer will get.")
	}

	if seriesRe.MatchString(descLc) {
		score += 3
		details = append(details, "Part of a series – can improve binge-watching and overall retention.")
	}

	score = clamp(score, retentionMax)
	return models.PillarResult{
		Name:    "Retention Potential",
		Score:   score,
		Max:     retentionMax,
		Pct:     pct(score, retentionMax),
		Details: details,
	}
}

func (s *Scorer) scoreEnvironment(descLc string, stats models.SerpStats, inPlaylists bool, fixes *[]string) models.PillarResult {
	score := 0
	var details []string

	switch medViews := stats.MedianViews; {
	case medViews == 0:
		score += 6
		details = append(details, "No clear competition data – environment may be open.")
	case medViews < 50000:
		score += 10
		details = append(details, fmt.Sprintf("Median views ≈ %d – relatively low competition.", medViews))
	case medViews <= 200000:
		score += 7
		details = append(details, fmt.Sprintf("Median views ≈ %d – moderate competition.", medViews))
	default:
		score += 4
		details = append(details, fmt.Sprintf("Median views ≈ %d – heavy competition; title/thumbnail must be exceptional.", medViews))
		*fixes = append(*fixes, "Environment is competitive – lean harder into a bold hook and strong thumbnail contrast.")
	}

	if inPlaylists {
		score += 5
		details = append(details, "Video will be in playlists – good for session time and binge-watching.")
	} else {
		*fixes = append(*fixes, "Add this video to at least one relevant playlist to increase session watch time.")
	}

	if hasAnyPhrase(descLc, s.lexicon.SessionCues) {
		score += 5
		details = append(details, "Description hints at next videos/playlist – good for extending sessions.")
	} else {
		*fixes = append(*fixes, "Add a clear call-to-action to a relevant 'next video' or playlist to extend session time.")
	}

	score = clamp(score, environmentMax)
	return models.PillarResult{
		Name:    "Environment & Session",
		Score:   score,
		Max:     environmentMax,
		Pct:     pct(score, environmentMax),
		Details: details,
	}
}
