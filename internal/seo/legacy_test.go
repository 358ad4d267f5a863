package seo

import (
	"strings"
	"testing"
)

func dimension(t *testing.T, dims []dimEntry, name string) int {
	t.Helper()
	for _, d := range dims {
		if d.name == name {
			return d.score
		}
	}
	t.Fatalf("dimension %q not found", name)
	return 0
}

type dimEntry struct {
	name  string
	score int
}

func legacyDims(title, description string, tags, hashtags []string) (int, []dimEntry, []string) {
	total, breakdown, fixes := ScoreMetadata(title, description, tags, hashtags)
	dims := make([]dimEntry, 0, len(breakdown))
	for _, d := range breakdown {
		dims = append(dims, dimEntry{name: d.Name, score: d.Score})
	}
	return total, dims, fixes
}

func TestScoreMetadataTitleBands(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  int
	}{
		{name: "in range", title: "A fine title", want: 25},
		{name: "exactly 70", title: strings.Repeat("a", 70), want: 25},
		{name: "empty", title: "", want: 0},
		{name: "75 chars penalized", title: strings.Repeat("a", 75), want: 24},
		{name: "very long floors at 8", title: strings.Repeat("a", 500), want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, dims, _ := legacyDims(tt.title, "", nil, nil)
			if got := dimension(t, dims, "Title length & clarity"); got != tt.want {
				t.Errorf("title score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreMetadataDescriptionBands(t *testing.T) {
	tests := []struct {
		name string
		dlen int
		want int
	}{
		{name: "lower bound", dlen: 150, want: 25},
		{name: "upper bound", dlen: 1500, want: 25},
		{name: "empty", dlen: 0, want: 0},
		{name: "slightly short", dlen: 100, want: 25},   // delta 50 -> 50/80 == 0
		{name: "far too short", dlen: 10, want: 24},     // delta 140 -> -1
		{name: "far too long floors", dlen: 5000, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, dims, _ := legacyDims("t", strings.Repeat("d", tt.dlen), nil, nil)
			if got := dimension(t, dims, "Description adequacy"); got != tt.want {
				t.Errorf("description score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreMetadataTagBands(t *testing.T) {
	mk := func(n int) []string {
		tags := make([]string, n)
		for i := range tags {
			tags[i] = "tag"
		}
		return tags
	}

	tests := []struct {
		name    string
		tags    []string
		want    int
		wantFix bool
	}{
		{name: "fifteen tags score full", tags: mk(15), want: 25},
		{name: "ten tags score full", tags: mk(10), want: 25},
		{name: "no tags", tags: nil, want: 0, wantFix: true},
		{name: "five tags proportional", tags: mk(5), want: 8},
		{name: "thirty tags capped", tags: mk(30), want: 25},
		{name: "empty strings ignored", tags: []string{"", "", ""}, want: 0, wantFix: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, dims, fixes := legacyDims("t", "", tt.tags, nil)
			if got := dimension(t, dims, "Tags coverage"); got != tt.want {
				t.Errorf("tags score = %d, want %d", got, tt.want)
			}
			hasFix := false
			for _, f := range fixes {
				if strings.Contains(f, "Add tags") {
					hasFix = true
				}
			}
			if hasFix != tt.wantFix {
				t.Errorf("tags fix present = %v, want %v", hasFix, tt.wantFix)
			}
		})
	}
}

func TestScoreMetadataHashtagBands(t *testing.T) {
	mk := func(n int) []string {
		hs := make([]string, n)
		for i := range hs {
			hs[i] = "#tag"
		}
		return hs
	}

	tests := []struct {
		name     string
		hashtags []string
		want     int
	}{
		{name: "three is full", hashtags: mk(3), want: 25},
		{name: "six is full", hashtags: mk(6), want: 25},
		{name: "none", hashtags: nil, want: 5},
		{name: "one", hashtags: mk(1), want: 16},
		{name: "ten", hashtags: mk(10), want: 10},
		{name: "many floors at 10", hashtags: mk(15), want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, dims, _ := legacyDims("t", "", nil, tt.hashtags)
			if got := dimension(t, dims, "Hashtags"); got != tt.want {
				t.Errorf("hashtags score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreMetadataTotalBounds(t *testing.T) {
	total, _, _ := ScoreMetadata(
		"A perfectly sized title under seventy characters for sure",
		strings.Repeat("d", 400),
		[]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
		[]string{"#a1", "#b2", "#c3"},
	)
	if total != 100 {
		t.Errorf("total = %d, want 100", total)
	}

	total, _, _ = ScoreMetadata("", "", nil, nil)
	if total != 5 {
		t.Errorf("empty draft total = %d, want 5 (hashtag floor)", total)
	}
}

func TestScoreMetadataIdempotent(t *testing.T) {
	t1, b1, f1 := ScoreMetadata("t", "d", []string{"x"}, []string{"#x1"})
	t2, b2, f2 := ScoreMetadata("t", "d", []string{"x"}, []string{"#x1"})
	if t1 != t2 || len(b1) != len(b2) || len(f1) != len(f2) {
		t.Error("ScoreMetadata is not idempotent")
	}
}
