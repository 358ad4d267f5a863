package seo

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxTitleLen       = 70
	maxDescriptionLen = 1200
	maxTags           = 20
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonAlnumRe   = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// Suggester produces deterministic, rule-based metadata suggestions from a
// keyword and the entity list extracted from competitor videos.
type Suggester struct {
	lexicon  *Lexicon
	bannedRe []*regexp.Regexp
}

// NewSuggester compiles the banned-phrase filters for the given lexicon.
func NewSuggester(lexicon *Lexicon) *Suggester {
	banned := make([]*regexp.Regexp, 0, len(lexicon.BannedPhrases))
	for _, p := range lexicon.BannedPhrases {
		banned = append(banned, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(p)))
	}
	return &Suggester{lexicon: lexicon, bannedRe: banned}
}

func clean(text string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
}

// limit truncates cleaned text to n runes, cutting at the last word
// boundary when one lies in the second half and marking the cut with an
// ellipsis.
func limit(text string, n int) string {
	t := clean(text)
	runes := []rune(t)
	if len(runes) <= n {
		return t
	}
	cut := string(runes[:n-1])
	if idx := strings.LastIndex(cut, " "); idx > n/2 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ") + "…"
}

// filterClickbait removes banned phrases case-insensitively.
func (s *Suggester) filterClickbait(text string) string {
	t := text
	for _, re := range s.bannedRe {
		t = re.ReplaceAllString(t, "")
	}
	return clean(t)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Titles returns up to 5 safe, concise title candidates (≤70 chars each),
// never empty and free of banned phrases.
func (s *Suggester) Titles(keyword string, entities []string) []string {
	k := clean(keyword)
	var ents []string
	for _, e := range entities {
		if len(e) >= 3 {
			ents = append(ents, e)
		}
		if len(ents) == 5 {
			break
		}
	}

	first := func() string {
		if len(ents) > 0 {
			return ents[0]
		}
		return ""
	}
	pair := func(sep string) string {
		n := len(ents)
		if n > 2 {
			n = 2
		}
		return strings.Join(ents[:n], sep)
	}

	patterns := make([]string, 0, 5)
	if p := pair(" "); p != "" {
		patterns = append(patterns, fmt.Sprintf("%s: %s", k, p))
	} else {
		patterns = append(patterns, fmt.Sprintf("%s: Complete Guide", k))
	}
	if p := pair(" & "); p != "" {
		patterns = append(patterns, fmt.Sprintf("%s — %s", k, p))
	} else {
		patterns = append(patterns, fmt.Sprintf("%s — What You Need to Know", k))
	}
	if e := first(); e != "" {
		patterns = append(patterns,
			fmt.Sprintf("How to %s (%s)", k, e),
			fmt.Sprintf("%s Explained in %s", k, titleCase(e)),
		)
	} else {
		patterns = append(patterns,
			fmt.Sprintf("How to %s", k),
			fmt.Sprintf("%s Explained", k),
		)
	}
	patterns = append(patterns, fmt.Sprintf("%s: Tips, Mistakes, Best Practices", k))

	var out []string
	for _, p := range patterns {
		t := s.filterClickbait(limit(p, maxTitleLen))
		if t == "" || containsString(out, t) {
			continue
		}
		out = append(out, t)
		if len(out) == 5 {
			break
		}
	}
	return out
}

// Description builds a compact outline paragraph targeting the
// 150–1500 character band.
func (s *Suggester) Description(keyword string, entities []string) string {
	k := clean(keyword)
	lines := []string{
		fmt.Sprintf("%s — In this video, we cover the key points and common pitfalls so you can act with confidence.", k),
	}
	if len(entities) > 0 {
		n := len(entities)
		if n > 6 {
			n = 6
		}
		lines = append(lines, "We’ll touch on: "+strings.Join(entities[:n], ", "))
	}
	lines = append(lines,
		"Timestamps: 00:00 Intro · 00:30 Basics · 02:00 Examples · 04:00 Tips · 05:30 Wrap-up.",
		"If this helped, consider subscribing and leaving a comment with your questions.",
		"Resources and credits are in the description below.",
	)
	desc := s.filterClickbait(clean(strings.Join(lines, ". ")))
	return limit(desc, maxDescriptionLen)
}

// Tags returns the keyword, the leading entities and keyword+entity
// combinations, deduplicated case-insensitively and capped at 20.
func (s *Suggester) Tags(keyword string, entities []string) []string {
	base := []string{keyword}
	for i, e := range entities {
		if i == 12 {
			break
		}
		base = append(base, e)
	}
	for i, e := range entities {
		if i == 6 {
			break
		}
		base = append(base, keyword+" "+e, e+" "+keyword)
	}

	seen := make(map[string]bool)
	var tags []string
	for _, t := range base {
		tt := clean(t)
		if tt == "" || seen[strings.ToLower(tt)] {
			continue
		}
		seen[strings.ToLower(tt)] = true
		tags = append(tags, tt)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

// Hashtags derives "#"-prefixed hashtags from the keyword and tags. Each
// hashtag is stripped to alphanumerics, capped at 30 characters and
// deduplicated case-insensitively; generation stops at cap entries.
// Call sites use cap 6 (optimize flow) or 15 (suggestion feed).
func (s *Suggester) Hashtags(tags []string, keyword string, maxCount int) []string {
	raw := make([]string, 0, len(tags)+1)
	if keyword != "" {
		raw = append(raw, keyword)
	}
	raw = append(raw, tags...)

	seen := make(map[string]bool)
	var out []string
	for _, r := range raw {
		h := "#" + nonAlnumRe.ReplaceAllString(r, "")
		if len(h) > 30 {
			h = h[:30]
		}
		if len(h) < 3 || seen[strings.ToLower(h)] {
			continue
		}
		seen[strings.ToLower(h)] = true
		out = append(out, h)
		if len(out) == maxCount {
			break
		}
	}
	return out
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
