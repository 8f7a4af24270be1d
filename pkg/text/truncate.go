package text

// Ellipsis is appended to the last kept line when truncation discards text.
const Ellipsis = "..."

// ellipsisSwapThreshold is the line length (in runes) above which the
// ellipsis replaces the line's tail instead of extending it.
const ellipsisSwapThreshold = 10

// Truncate caps lines to at most maxLines entries.
//
// A sequence within the cap is returned unchanged. Otherwise the first
// maxLines-1 lines are kept verbatim and the line at index maxLines-1 is
// replaced with an ellipsis-suffixed variant: when it is longer than 10
// runes its last 3 runes are dropped before the ellipsis is appended (net
// same length), otherwise the ellipsis is appended outright. Everything
// beyond is discarded.
func Truncate(lines []string, maxLines int) []string {
	if maxLines < 1 || len(lines) <= maxLines {
		return lines
	}

	out := make([]string, maxLines)
	copy(out, lines[:maxLines-1])

	last := []rune(lines[maxLines-1])
	if len(last) > ellipsisSwapThreshold {
		last = last[:len(last)-len([]rune(Ellipsis))]
	}
	out[maxLines-1] = string(last) + Ellipsis
	return out
}
