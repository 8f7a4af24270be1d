// Package text implements the text measurement and wrapping engine.
//
// The engine is purely computational: it estimates pixel widths with a fixed
// proportional approximation, wraps paragraphs into lines under a pixel
// budget while honoring kinsoku prohibition rules, and caps line counts with
// an ellipsis. It holds no state and performs no I/O, so concurrent use is
// safe.
package text

// Unicode ranges treated as full width. This is a deliberate simplification,
// not true display width: combining marks, emoji, and anything outside these
// ranges count as half width.
const (
	cjkPunctLo = 0x3000 // CJK Symbols and Punctuation
	cjkPunctHi = 0x303F
	hiraganaLo = 0x3040
	hiraganaHi = 0x309F
	katakanaLo = 0x30A0
	katakanaHi = 0x30FF
	cjkIdeoLo  = 0x4E00 // CJK Unified Ideographs
	cjkIdeoHi  = 0x9FFF
	fullFormLo = 0xFF00 // Halfwidth and Fullwidth Forms
	fullFormHi = 0xFFEF
)

// CharWidth returns 2 for code points in the full-width ranges and 1 for
// everything else, in half-width units.
func CharWidth(r rune) int {
	switch {
	case r >= cjkPunctLo && r <= cjkPunctHi,
		r >= hiraganaLo && r <= hiraganaHi,
		r >= katakanaLo && r <= katakanaHi,
		r >= cjkIdeoLo && r <= cjkIdeoHi,
		r >= fullFormLo && r <= fullFormHi:
		return 2
	default:
		return 1
	}
}

// PixelWidth estimates the rendered width of a single character at the given
// font size. A full-width character occupies one em, a half-width character
// half an em; the same ratio is used for every font family.
func PixelWidth(r rune, fontSize float64) float64 {
	return float64(CharWidth(r)) * fontSize * 0.5
}

// Width returns the width of s in half-width units. It is used where only
// relative comparison matters, not absolute pixels.
func Width(s string) int {
	w := 0
	for _, r := range s {
		w += CharWidth(r)
	}
	return w
}

// StringPixelWidth estimates the rendered width of s at the given font size.
func StringPixelWidth(s string, fontSize float64) float64 {
	w := 0.0
	for _, r := range s {
		w += PixelWidth(r, fontSize)
	}
	return w
}
