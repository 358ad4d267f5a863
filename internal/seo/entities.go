package seo

import (
	"regexp"
	"sort"
	"strings"
)

var tokenRe = regexp.MustCompile(`[A-Za-z0-9]+`)

// Extractor derives ranked topic entities from competitor text.
type Extractor struct {
	lexicon *Lexicon
}

// NewExtractor creates an Extractor using the given lexicon's stopwords.
func NewExtractor(lexicon *Lexicon) *Extractor {
	return &Extractor{lexicon: lexicon}
}

// tokenize lower-cases text, splits it into maximal alphanumeric runs and
// drops tokens shorter than 3 characters or present in the stopword set.
func (e *Extractor) tokenize(text string) []string {
	if text == "" {
		return nil
	}
	words := tokenRe.FindAllString(strings.ToLower(text), -1)
	out := words[:0]
	for _, w := range words {
		if len(w) >= 3 && !e.lexicon.Stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

// TopEntities counts token frequency across the whole corpus and returns
// the topK most frequent tokens. Ties are broken by first-seen order, so
// the result is deterministic for a given corpus. An empty corpus yields
// an empty slice, never an error.
func (e *Extractor) TopEntities(corpus []string, topK int) []string {
	if topK <= 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, text := range corpus {
		for _, tok := range e.tokenize(text) {
			if _, ok := counts[tok]; !ok {
				firstSeen[tok] = order
				order++
			}
			counts[tok]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(counts))
	for tok := range counts {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return firstSeen[tokens[i]] < firstSeen[tokens[j]]
	})

	if len(tokens) > topK {
		tokens = tokens[:topK]
	}
	return tokens
}
