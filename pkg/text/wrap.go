package text

import "strings"

// KinsokuRules holds the two character sets driving Japanese line-breaking
// prohibitions: characters that may never start a line (closing punctuation,
// small kana, sound marks) and characters that may never end one (opening
// brackets).
type KinsokuRules struct {
	lineStart map[rune]struct{}
	lineEnd   map[rune]struct{}
}

// NewKinsokuRules builds rules from the configured prohibition strings.
// Every rune of lineStartProhibited is forbidden at a line start; every rune
// of lineEndProhibited is forbidden at a line end.
func NewKinsokuRules(lineStartProhibited, lineEndProhibited string) KinsokuRules {
	rules := KinsokuRules{
		lineStart: make(map[rune]struct{}, len(lineStartProhibited)),
		lineEnd:   make(map[rune]struct{}, len(lineEndProhibited)),
	}
	for _, r := range lineStartProhibited {
		rules.lineStart[r] = struct{}{}
	}
	for _, r := range lineEndProhibited {
		rules.lineEnd[r] = struct{}{}
	}
	return rules
}

// ProhibitedAtStart reports whether r may not begin a line.
func (k KinsokuRules) ProhibitedAtStart(r rune) bool {
	_, ok := k.lineStart[r]
	return ok
}

// ProhibitedAtEnd reports whether r may not end a line.
func (k KinsokuRules) ProhibitedAtEnd(r rune) bool {
	_, ok := k.lineEnd[r]
	return ok
}

// Wrap splits s into lines whose estimated pixel width does not exceed
// maxWidth at the given font size, honoring the kinsoku rules.
//
// Embedded newlines split s into paragraphs; a paragraph consisting only of
// whitespace yields a single empty line, preserving blank-line spacing.
// A single character wider than maxWidth is emitted on a line of its own
// rather than looping.
func Wrap(s string, maxWidth, fontSize float64, rules KinsokuRules) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		lines = wrapParagraph(lines, []rune(para), maxWidth, fontSize, rules)
	}
	return lines
}

// wrapParagraph appends the wrapped lines of a single paragraph to lines.
//
// Characters are scanned left to right with a running width. When the next
// character would overflow a non-empty line, a break is triggered: a
// prohibited line-end character is detached from the current line first,
// then one more character is detached if the incoming character is
// prohibited at a line start. Both detachments may apply to the same break.
// Detachment stops while the current line has only one character left to
// give up, so content is never collapsed into an empty line.
func wrapParagraph(lines []string, runes []rune, maxWidth, fontSize float64, rules KinsokuRules) []string {
	var cur []rune
	width := 0.0

	for _, r := range runes {
		w := PixelWidth(r, fontSize)
		if width+w > maxWidth && len(cur) > 0 {
			var carry []rune

			if rules.ProhibitedAtEnd(cur[len(cur)-1]) && len(cur) > 1 {
				carry = append(carry, cur[len(cur)-1])
				cur = cur[:len(cur)-1]
			}
			if rules.ProhibitedAtStart(r) && len(cur) > 1 {
				carry = append([]rune{cur[len(cur)-1]}, carry...)
				cur = cur[:len(cur)-1]
			}

			if len(cur) > 0 {
				lines = append(lines, string(cur))
			}

			cur = append(carry, r)
			width = 0
			for _, c := range cur {
				width += PixelWidth(c, fontSize)
			}
			continue
		}
		cur = append(cur, r)
		width += w
	}

	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
