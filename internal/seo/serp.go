package seo

import (
	"sort"

	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
)

// ComputeSerpStats summarizes the competitive environment from a list of
// search results. An empty list yields the zero value rather than an error.
//
// Median views uses the standard median (the two central values are
// averaged for even-length input). The engagement medians are computed on
// per-video normalized rates so large channels do not dominate the raw
// sums; each derived sequence is sorted on its own and its upper median
// (the element at index len/2) is taken.
func ComputeSerpStats(videos []models.VideoRecord) models.SerpStats {
	if len(videos) == 0 {
		return models.SerpStats{}
	}

	views := make([]int64, 0, len(videos))
	likesPer1k := make([]float64, 0, len(videos))
	commentsPer1k := make([]float64, 0, len(videos))
	for _, v := range videos {
		views = append(views, v.Views)
		// Floor the denominator at 1 so hidden stats don't divide by zero.
		vw := v.Views
		if vw < 1 {
			vw = 1
		}
		likesPer1k = append(likesPer1k, float64(v.Likes)*1000/float64(vw))
		commentsPer1k = append(commentsPer1k, float64(v.Comments)*1000/float64(vw))
	}

	sort.Slice(views, func(i, j int) bool { return views[i] < views[j] })
	sort.Float64s(likesPer1k)
	sort.Float64s(commentsPer1k)

	mid := len(views) / 2
	var medianViews int64
	if len(views)%2 == 0 {
		medianViews = int64((float64(views[mid-1]) + float64(views[mid])) / 2)
	} else {
		medianViews = views[mid]
	}

	return models.SerpStats{
		MedianViews:           medianViews,
		MedianLikesPer1000:    likesPer1k[len(likesPer1k)/2],
		MedianCommentsPer1000: commentsPer1k[len(commentsPer1k)/2],
	}
}
