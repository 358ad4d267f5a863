// Package format provides display helpers for numeric stats.
package format

import (
	"fmt"
	"strings"
)

// ShortNum renders a count compactly: 950 -> "950", 4300 -> "4.3k",
// 1250000 -> "1.3M", 2500000000 -> "2.5B". A trailing ".0" is dropped.
func ShortNum(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	var value float64
	var suffix string
	switch {
	case abs >= 1_000_000_000:
		value, suffix = float64(n)/1_000_000_000, "B"
	case abs >= 1_000_000:
		value, suffix = float64(n)/1_000_000, "M"
	case abs >= 1_000:
		value, suffix = float64(n)/1_000, "k"
	default:
		return fmt.Sprintf("%d", n)
	}

	s := fmt.Sprintf("%.1f", value)
	s = strings.TrimSuffix(s, ".0")
	return s + suffix
}
