package seo

import (
	"fmt"

	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
)

// ScoreMetadata is the metadata-only scorer kept from the first version of
// the product. It looks solely at length and composition of the draft and
// ignores entities and SERP data, so it is reported next to the pillar
// score rather than merged into it. Each dimension caps at 25 and the
// total clamps to 0-100.
func ScoreMetadata(title, description string, tags, hashtags []string) (int, []models.Dimension, []string) {
	total := 0
	var breakdown []models.Dimension
	var fixes []string

	// Title length
	var titleScore int
	switch tlen := len([]rune(title)); {
	case tlen >= 1 && tlen <= 70:
		titleScore = 25
	case tlen == 0:
		titleScore = 0
		fixes = append(fixes, "Add a title (keep it ≤ 70 characters).")
	default:
		titleScore = 25 - (tlen-70)/5
		if titleScore < 8 {
			titleScore = 8
		}
		fixes = append(fixes, fmt.Sprintf("Title is long (%d chars). Consider trimming below 70.", tlen))
	}
	total += titleScore
	breakdown = append(breakdown, models.Dimension{Name: "Title length & clarity", Score: titleScore, Max: 25})

	// Description length
	var descScore int
	switch dlen := len([]rune(description)); {
	case dlen >= 150 && dlen <= 1500:
		descScore = 25
	case dlen == 0:
		descScore = 0
		fixes = append(fixes, "Add a description (aim for 150–1500 characters).")
	default:
		delta := 150 - dlen
		if dlen > 1500 {
			delta = dlen - 1500
		}
		descScore = 25 - delta/80
		if descScore < 5 {
			descScore = 5
		}
	}
	total += descScore
	breakdown = append(breakdown, models.Dimension{Name: "Description adequacy", Score: descScore, Max: 25})

	// Tags count
	tagCount := 0
	for _, t := range tags {
		if t != "" {
			tagCount++
		}
	}
	var tagScore int
	switch {
	case tagCount >= 10 && tagCount <= 20:
		tagScore = 25
	case tagCount == 0:
		tagScore = 0
		fixes = append(fixes, "Add tags (aim for 10–20 relevant tags).")
	default:
		tagScore = int(float64(tagCount) * 1.6)
		if tagScore > 25 {
			tagScore = 25
		}
	}
	total += tagScore
	breakdown = append(breakdown, models.Dimension{Name: "Tags coverage", Score: tagScore, Max: 25})

	// Hashtags
	hashCount := 0
	for _, h := range hashtags {
		if h != "" {
			hashCount++
		}
	}
	var hashScore int
	switch {
	case hashCount >= 3 && hashCount <= 6:
		hashScore = 25
	case hashCount == 0:
		hashScore = 5
		fixes = append(fixes, "Add a small set of hashtags (3–6).")
	default:
		diff := 4 - hashCount
		if diff < 0 {
			diff = -diff
		}
		hashScore = 25 - diff*3
		if hashScore < 10 {
			hashScore = 10
		}
	}
	total += hashScore
	breakdown = append(breakdown, models.Dimension{Name: "Hashtags", Score: hashScore, Max: 25})

	return clamp(total, 100), breakdown, fixes
}
