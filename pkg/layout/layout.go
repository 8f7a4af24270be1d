// Package layout plans the card geometry for one render.
//
// Given the quote data and a configuration, the planner wraps each section
// at its base font size, drops every section to its minimum size when any
// section overflows its line ceiling, truncates to the ceilings, and derives
// the total canvas height from the resulting line counts. The planner is
// purely functional: it takes its inputs by value and returns a new Plan
// with no side effects, so concurrent invocations are safe.
package layout

import (
	"strings"

	"github.com/tkurosawa/quotecard/pkg/config"
	"github.com/tkurosawa/quotecard/pkg/errors"
	"github.com/tkurosawa/quotecard/pkg/text"
)

// QuoteData is the immutable input for one card: the required quote text
// plus optional title and author. It is created once per invocation and
// never mutated.
type QuoteData struct {
	Quote  string `json:"quote"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}

// FontSizes holds the per-section sizes chosen for one render. Derived, not
// stored: recomputed on every plan.
type FontSizes struct {
	Quote  float64 `json:"quote"`
	Title  float64 `json:"title"`
	Author float64 `json:"author"`
}

// Plan is the planner's sole output, consumed by rendering.
// Line slices are in top-to-bottom rendering order and may contain empty
// strings for blank paragraph lines. CanvasHeight is always within the
// configured [MinHeight, MaxHeight] range.
type Plan struct {
	FontSizes    FontSizes `json:"font_sizes"`
	CanvasHeight float64   `json:"canvas_height"`

	QuoteLines  []string `json:"quote_lines"`
	TitleLines  []string `json:"title_lines,omitempty"`
	AuthorLines []string `json:"author_lines,omitempty"`
}

// baseSizes returns the configured base font sizes.
func baseSizes(cfg config.Config) FontSizes {
	return FontSizes{
		Quote:  cfg.Font.QuoteSize,
		Title:  cfg.Font.TitleSize,
		Author: cfg.Font.AuthorSize,
	}
}

// minSizes returns the configured minimum font sizes.
func minSizes(cfg config.Config) FontSizes {
	return FontSizes{
		Quote:  cfg.Font.QuoteMinSize,
		Title:  cfg.Font.TitleMinSize,
		Author: cfg.Font.AuthorMinSize,
	}
}

// PlanLayout computes the layout plan for data under cfg.
//
// Font sizing is all-or-nothing: when any section's wrapped line count
// exceeds its ceiling at the base sizes, all three sections are re-wrapped
// at their minimum sizes together. Sections are then truncated to their
// ceilings and the canvas height is derived and clamped.
func PlanLayout(data QuoteData, cfg config.Config) (Plan, error) {
	sizes := baseSizes(cfg)
	mins := minSizes(cfg)
	for _, s := range []float64{sizes.Quote, sizes.Title, sizes.Author, mins.Quote, mins.Title, mins.Author} {
		if s <= 0 {
			return Plan{}, errors.New(errors.ErrCodeFontSizeCalculation, "configured font sizes must be positive")
		}
	}

	maxWidth := cfg.MaxTextWidth()
	rules := text.NewKinsokuRules(cfg.Text.LineStartProhibited, cfg.Text.LineEndProhibited)

	quote, title, author := wrapSections(data, maxWidth, sizes, rules)

	if len(quote) > cfg.Text.QuoteMaxLines ||
		len(title) > cfg.Text.TitleMaxLines ||
		len(author) > cfg.Text.AuthorMaxLines {
		sizes = mins
		quote, title, author = wrapSections(data, maxWidth, sizes, rules)
	}

	quote = text.Truncate(quote, cfg.Text.QuoteMaxLines)
	title = text.Truncate(title, cfg.Text.TitleMaxLines)
	author = text.Truncate(author, cfg.Text.AuthorMaxLines)

	return Plan{
		FontSizes:    sizes,
		CanvasHeight: canvasHeight(cfg, sizes, len(quote), len(title), len(author)),
		QuoteLines:   quote,
		TitleLines:   title,
		AuthorLines:  author,
	}, nil
}

// wrapSections wraps the three sections at the given sizes. Absent sections
// (empty after trimming) yield no lines at all rather than one blank line.
func wrapSections(data QuoteData, maxWidth float64, sizes FontSizes, rules text.KinsokuRules) (quote, title, author []string) {
	quote = text.Wrap(data.Quote, maxWidth, sizes.Quote, rules)
	if strings.TrimSpace(data.Title) != "" {
		title = text.Wrap(data.Title, maxWidth, sizes.Title, rules)
	}
	if strings.TrimSpace(data.Author) != "" {
		author = text.Wrap(data.Author, maxWidth, sizes.Author, rules)
	}
	return quote, title, author
}

// canvasHeight derives the total height: the start offset, each present
// section's lines at fontSize plus its line gap, an inter-section gap after
// the quote and (when a title is present) after the title, and the footer
// reservation. The result is clamped into [MinHeight, MaxHeight].
func canvasHeight(cfg config.Config, sizes FontSizes, quoteLines, titleLines, authorLines int) float64 {
	h := cfg.Spacing.StartY

	h += float64(quoteLines) * (sizes.Quote + cfg.Spacing.QuoteLineGap)
	h += cfg.Spacing.SectionGap

	if titleLines > 0 {
		h += float64(titleLines) * (sizes.Title + cfg.Spacing.TitleLineGap)
		h += cfg.Spacing.SectionGap
	}
	if authorLines > 0 {
		h += float64(authorLines) * (sizes.Author + cfg.Spacing.AuthorLineGap)
	}

	h += cfg.Canvas.FooterHeight

	return clamp(h, cfg.Canvas.MinHeight, cfg.Canvas.MaxHeight)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
