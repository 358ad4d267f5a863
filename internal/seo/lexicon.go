// Package seo implements the metadata scoring engine: text feature
// extraction, SERP aggregation, pillar and legacy scoring, and rule-based
// metadata suggestions. Everything in this package is a pure function of
// its inputs; word lists are injected through a Lexicon so tests can swap
// them out.
package seo

// Lexicon holds the fixed word lists the scorers and generators consult.
// The zero value is unusable; construct with DefaultLexicon or build one
// by hand in tests.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Lexicon struct {
	// Stopwords are dropped during entity extraction.
	Stopwords map[string]bool
	// PowerWords are emotionally charged title words rewarded by the
	// click-through pillar.
	PowerWords map[string]bool
	// CuriosityPhrases are substring-matched against the title.
	CuriosityPhrases []string
	// LossAversionWords are urgency words like "stop" and "avoid".
	LossAversionWords map[string]bool
	// HookPhrases are retention hooks looked for in the first lines of
	// the description.
	HookPhrases []string
	// SessionCues hint at a next video or playlist in the description.
	SessionCues []string
	// BannedPhrases are clickbait terms stripped from generated metadata.
	BannedPhrases []string
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// DefaultLexicon returns the built-in English lexicon.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Stopwords: wordSet(
			"the", "a", "an", "and", "or", "for", "with", "without", "in", "on", "of", "to", "from", "by", "at", "is", "are",
			"be", "this", "that", "those", "these", "it", "its", "as", "you", "your", "yours", "ours", "we", "us", "our",
			"how", "what", "why", "when", "where", "who", "will", "can", "could", "should", "would", "i", "me", "my",
			"vs", "vs.", "&", "-", "_", "best", "new", "top", "2023", "2024", "2025",
		),
		PowerWords: wordSet(
			"secret", "secrets", "mistake", "mistakes", "hidden", "insane", "crazy",
			"shocking", "simple", "easy", "ultimate", "pro", "advanced", "powerful",
			"killer", "dangerous", "hack", "hacks", "fix", "fixes", "broken",
		),
		CuriosityPhrases: []string{
			"no one tells you",
			"nobody tells you",
			"what no one",
			"what nobody",
			"the truth about",
			"you won't believe",
			"stop doing this",
			"before you",
			"no one is talking about",
		},
		LossAversionWords: wordSet(
			"stop", "avoid", "never", "lose", "losing", "wasting", "ruin", "kill",
		),
		HookPhrases: []string{
			"in this video", "you will learn", "we cover", "step-by-step", "tutorial",
		},
		SessionCues: []string{
			"watch next", "next video", "playlist", "series", "part 2", "episode 2",
		},
		BannedPhrases: []string{
			"unbelievable", "shocking", "insane", "secret hacks", "groundbreaking",
			"must-see", "click here", "you won’t believe", "crazy", "exposed",
		},
	}
}
