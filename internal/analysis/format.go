package analysis

import (
	"fmt"
	"math"
)

// Percent returns part-of-total as a whole percentage, rounded to the
// nearest integer. A zero total is 0, never NaN.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// FormatPercent renders Percent with a trailing percent sign.
func FormatPercent(part, total int) string {
	return fmt.Sprintf("%d%%", Percent(part, total))
}

// FormatNumber abbreviates large counts for display: 950 stays "950",
// 1500 becomes "1.5K", 2300000 becomes "2.3M".
func FormatNumber(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
