package text

import (
	"reflect"
	"strings"
	"testing"
)

func defaultRules() KinsokuRules {
	return NewKinsokuRules(
		"、。，．・：；？！゛゜ヽヾゝゞ々ー）〕］｝〉》」』】ぁぃぅぇぉっゃゅょゎァィゥェォッャュョヮ…‥",
		"（〔［｛〈《「『【",
	)
}

func TestWrapPullsCommaWithPrecedingChar(t *testing.T) {
	// 160px at size 16 fits ten full-width characters. The comma after the
	// tenth would start line two, so it drags the preceding character along.
	lines := Wrap("あいうえおかきくけこ、さしすせそ", 160, 16, defaultRules())

	want := []string{"あいうえおかきくけ", "こ、さしすせそ"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Wrap() = %q, want %q", lines, want)
	}
}

func TestWrapFullStopNeverFirst(t *testing.T) {
	lines := Wrap("これはテストです。次の文章が続きます", 128, 16, defaultRules())

	if len(lines) < 2 {
		t.Fatalf("Wrap() = %q, want at least 2 lines", lines)
	}
	if lines[0] != "これはテストで" {
		t.Errorf("first line = %q, want %q", lines[0], "これはテストで")
	}
	if !strings.HasPrefix(lines[1], "す。") {
		t.Errorf("second line = %q, want prefix %q", lines[1], "す。")
	}
}

func TestWrapOpeningBracketCarriedToNextLine(t *testing.T) {
	// Eight full-width characters fit at 128px; the opening bracket would end
	// line one, so it is detached and carried over.
	lines := Wrap("あいうえおかき「くけこさし", 128, 16, defaultRules())

	want := []string{"あいうえおかき", "「くけこさし"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Wrap() = %q, want %q", lines, want)
	}
}

func TestWrapBothDetachmentsOnOneBreak(t *testing.T) {
	// The seventh character is an opening bracket (end-prohibited) and the
	// incoming eighth is a comma (start-prohibited): the break removes two
	// trailing characters from the current line at once.
	lines := Wrap("あいうえおか「、くけこ", 112, 16, defaultRules())

	want := []string{"あいうえお", "か「、くけこ"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Wrap() = %q, want %q", lines, want)
	}
}

func TestWrapLatinText(t *testing.T) {
	lines := Wrap("hello world", 40, 16, defaultRules())

	// 8px per character: five characters per 40px line.
	want := []string{"hello", " worl", "d"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Wrap() = %q, want %q", lines, want)
	}
}

func TestWrapBlankParagraphYieldsEmptyLine(t *testing.T) {
	lines := Wrap("あい\n\nうえ", 160, 16, defaultRules())

	want := []string{"あい", "", "うえ"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Wrap() = %q, want %q", lines, want)
	}
}

func TestWrapWhitespaceOnlyParagraph(t *testing.T) {
	lines := Wrap("あい\n   \nうえ", 160, 16, defaultRules())

	want := []string{"あい", "", "うえ"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Wrap() = %q, want %q", lines, want)
	}
}

func TestWrapSingleOverwideCharacter(t *testing.T) {
	// A single character wider than the budget still emits alone.
	lines := Wrap("あ", 8, 16, defaultRules())

	want := []string{"あ"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Wrap() = %q, want %q", lines, want)
	}
}

func TestWrapEveryCharacterOverwide(t *testing.T) {
	lines := Wrap("あいう", 8, 16, defaultRules())

	want := []string{"あ", "い", "う"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Wrap() = %q, want %q", lines, want)
	}
}

func TestWrapTinyParagraphKeepsProhibitedPlacement(t *testing.T) {
	// With fewer than two characters available to redistribute, the
	// prohibition is waived rather than losing content.
	lines := Wrap("あ。", 16, 16, defaultRules())

	want := []string{"あ", "。"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Wrap() = %q, want %q", lines, want)
	}
}

func TestWrapWidthInvariant(t *testing.T) {
	const (
		maxWidth = 160.0
		fontSize = 16.0
	)
	rules := defaultRules()

	samples := []string{
		"あいうえおかきくけこ、さしすせそたちつてと。なにぬねの",
		"The quick brown fox jumps over the lazy dog",
		"日本語とEnglishの混在テキストです。改行も、含みます",
		"「括弧」や（丸括弧）も、正しく扱われること。",
	}

	for _, s := range samples {
		for _, line := range Wrap(s, maxWidth, fontSize, rules) {
			w := StringPixelWidth(line, fontSize)
			if w > maxWidth && len([]rune(line)) > 1 {
				t.Errorf("line %q width %g exceeds budget %g", line, w, maxWidth)
			}
		}
	}
}

func TestWrapProhibitionInvariant(t *testing.T) {
	rules := defaultRules()

	samples := []string{
		"あいうえおかきくけこ、さしすせそたちつてと。なにぬねの",
		"「こんにちは」と、彼は言った。そして「さようなら」とも。",
		"ひとつ。ふたつ。みっつ。よっつ。いつつ。むっつ。ななつ。",
	}

	for _, s := range samples {
		for _, width := range []float64{96, 128, 160, 224} {
			for _, line := range Wrap(s, width, 16, rules) {
				runes := []rune(line)
				if len(runes) == 0 {
					continue
				}
				if len(runes) > 1 && rules.ProhibitedAtStart(runes[0]) {
					t.Errorf("width %g: line %q starts with prohibited character", width, line)
				}
				if len(runes) > 1 && rules.ProhibitedAtEnd(runes[len(runes)-1]) {
					t.Errorf("width %g: line %q ends with prohibited character", width, line)
				}
			}
		}
	}
}

func TestWrapNoContentLost(t *testing.T) {
	rules := defaultRules()
	input := "あいうえお、かきくけこ。「さしすせそ」たちつてと"

	for _, width := range []float64{64, 96, 128, 160} {
		joined := strings.Join(Wrap(input, width, 16, rules), "")
		if joined != input {
			t.Errorf("width %g: content changed\n got %q\nwant %q", width, joined, input)
		}
	}
}

func TestWrapEmptyInput(t *testing.T) {
	lines := Wrap("", 160, 16, defaultRules())

	// An empty input is a single blank paragraph.
	want := []string{""}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Wrap(\"\") = %q, want %q", lines, want)
	}
}
