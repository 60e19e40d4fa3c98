package extract

import "strings"

// FindBalancedBlock locates the first balanced {...} block at or after from.
// It returns the half-open span [start, end) covering the block including
// both braces, or ok=false when no opening brace exists after from or the
// text ends before the depth returns to zero (truncated input).
//
// Depth counting is byte-level and deliberately quote-unaware: a brace
// inside a string or backtick literal shifts the detected boundary. Callers
// tolerate the resulting misses instead of this scanner tracking quotes.
func FindBalancedBlock(text string, from int) (start, end int, ok bool) {
	if from < 0 {
		from = 0
	}
	if from > len(text) {
		return 0, 0, false
	}
	rel := strings.IndexByte(text[from:], '{')
	if rel < 0 {
		return 0, 0, false
	}
	start = from + rel

	depth := 1
	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return start, i + 1, true
			}
		}
	}
	return 0, 0, false
}
