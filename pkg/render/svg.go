package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/tkurosawa/quotecard/pkg/config"
	"github.com/tkurosawa/quotecard/pkg/errors"
	"github.com/tkurosawa/quotecard/pkg/layout"
)

// decorativeQuoteMark sits behind the top of the quote block.
const decorativeQuoteMark = "“"

// footerBrand is the small label in the footer band.
const footerBrand = "quotecard"

// RenderSVG writes the card as SVG markup.
//
// The card is drawn top to bottom: background, the decorative quotation
// mark, the quote lines, a separator rule, then title and author, and
// finally the footer brand. All user text is XML-escaped.
func RenderSVG(plan layout.Plan, data layout.QuoteData, cfg config.Config) ([]byte, error) {
	if len(plan.QuoteLines) == 0 {
		return nil, errors.New(errors.ErrCodeSVGGeneration, "layout plan has no quote lines")
	}

	width := cfg.Canvas.Width
	height := plan.CanvasHeight

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", width, height, cfg.Colors.Background)

	// Decorative quotation mark, anchored above the first quote baseline.
	fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" fill="%s" fill-opacity="%.2f">%s</text>`+"\n",
		cfg.Canvas.Margin/2,
		cfg.Spacing.StartY-cfg.Font.QuoteSize,
		escapeXML(cfg.Font.Family),
		cfg.Spacing.QuoteMarkSize,
		cfg.Colors.Accent,
		cfg.Opacity.QuoteMark,
		decorativeQuoteMark)

	y := cfg.Spacing.StartY

	family := escapeXML(cfg.Font.FamilyJP)
	for _, line := range plan.QuoteLines {
		if line != "" {
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
				cfg.Canvas.Margin, y, family, plan.FontSizes.Quote, cfg.Colors.Text, escapeXML(line))
		}
		y += plan.FontSizes.Quote + cfg.Spacing.QuoteLineGap
	}

	// Separator rule inside the gap after the quote block.
	sepY := y + cfg.Spacing.SectionGap/2
	fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-opacity="%.2f" stroke-width="1"/>`+"\n",
		cfg.Canvas.Margin, sepY, cfg.Canvas.Margin+cfg.Spacing.SeparatorWidth, sepY,
		cfg.Colors.Accent, cfg.Opacity.Separator)
	y += cfg.Spacing.SectionGap

	if len(plan.TitleLines) > 0 {
		for _, line := range plan.TitleLines {
			if line != "" {
				fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
					cfg.Canvas.Margin, y, family, plan.FontSizes.Title, cfg.Colors.Text, escapeXML(line))
			}
			y += plan.FontSizes.Title + cfg.Spacing.TitleLineGap
		}
		y += cfg.Spacing.SectionGap
	}

	for _, line := range plan.AuthorLines {
		if line != "" {
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="end" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
				width-cfg.Canvas.Margin, y, family, plan.FontSizes.Author, cfg.Colors.Footer,
				escapeXML(authorLabel(line)))
		}
		y += plan.FontSizes.Author + cfg.Spacing.AuthorLineGap
	}

	fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="11" fill="%s">%s</text>`+"\n",
		width/2, height-cfg.Canvas.FooterHeight/2, escapeXML(cfg.Font.Family), cfg.Colors.Footer, footerBrand)

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// authorLabel prefixes the attribution dash.
func authorLabel(line string) string {
	return "— " + line
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
