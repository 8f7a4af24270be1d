package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/tkurosawa/quotecard/pkg/config"
	"github.com/tkurosawa/quotecard/pkg/errors"
	"github.com/tkurosawa/quotecard/pkg/layout"
)

// footerFontSize matches the SVG footer label size.
const footerFontSize = 11

// PNGOption configures the PNG rasterizer.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	quoteTTF []byte // font for all card text; defaults to the embedded Go fonts
}

// WithFontTTF supplies TTF data used for every text section. The embedded Go
// fonts carry no CJK glyphs, so Japanese cards need a real font file here.
func WithFontTTF(ttf []byte) PNGOption {
	return func(r *pngRenderer) { r.quoteTTF = ttf }
}

// RenderPNG rasterizes the card with the same geometry as the SVG sink and
// encodes it as PNG.
func RenderPNG(plan layout.Plan, data layout.QuoteData, cfg config.Config, opts ...PNGOption) ([]byte, error) {
	if len(plan.QuoteLines) == 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "layout plan has no quote lines")
	}

	var r pngRenderer
	for _, opt := range opts {
		opt(&r)
	}

	quoteFont, bodyFont, err := r.loadFonts()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to parse font")
	}

	palette, err := loadPalette(cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "invalid color palette")
	}

	width := int(cfg.Canvas.Width)
	height := int(plan.CanvasHeight)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(palette.background), image.Point{}, draw.Src)

	// Decorative quotation mark.
	markFace, err := newFace(quoteFont, cfg.Spacing.QuoteMarkSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to create face")
	}
	drawString(img, markFace, withAlpha(palette.accent, cfg.Opacity.QuoteMark),
		cfg.Canvas.Margin/2, cfg.Spacing.StartY-cfg.Font.QuoteSize, decorativeQuoteMark)

	y := cfg.Spacing.StartY

	quoteFace, err := newFace(quoteFont, plan.FontSizes.Quote)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to create face")
	}
	for _, line := range plan.QuoteLines {
		if line != "" {
			drawString(img, quoteFace, palette.text, cfg.Canvas.Margin, y, line)
		}
		y += plan.FontSizes.Quote + cfg.Spacing.QuoteLineGap
	}

	// Separator rule inside the gap after the quote block.
	sepY := int(y + cfg.Spacing.SectionGap/2)
	sep := withAlpha(palette.accent, cfg.Opacity.Separator)
	for x := int(cfg.Canvas.Margin); x < int(cfg.Canvas.Margin+cfg.Spacing.SeparatorWidth) && x < width; x++ {
		if sepY >= 0 && sepY < height {
			img.Set(x, sepY, sep)
		}
	}
	y += cfg.Spacing.SectionGap

	if len(plan.TitleLines) > 0 {
		titleFace, err := newFace(bodyFont, plan.FontSizes.Title)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to create face")
		}
		for _, line := range plan.TitleLines {
			if line != "" {
				drawString(img, titleFace, palette.text, cfg.Canvas.Margin, y, line)
			}
			y += plan.FontSizes.Title + cfg.Spacing.TitleLineGap
		}
		y += cfg.Spacing.SectionGap
	}

	if len(plan.AuthorLines) > 0 {
		authorFace, err := newFace(bodyFont, plan.FontSizes.Author)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to create face")
		}
		for _, line := range plan.AuthorLines {
			if line != "" {
				label := authorLabel(line)
				w := measureString(authorFace, label)
				drawString(img, authorFace, palette.footer, cfg.Canvas.Width-cfg.Canvas.Margin-w, y, label)
			}
			y += plan.FontSizes.Author + cfg.Spacing.AuthorLineGap
		}
	}

	footerFace, err := newFace(bodyFont, footerFontSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to create face")
	}
	brandW := measureString(footerFace, footerBrand)
	drawString(img, footerFace, palette.footer,
		(cfg.Canvas.Width-brandW)/2, plan.CanvasHeight-cfg.Canvas.FooterHeight/2, footerBrand)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}

// loadFonts returns the quote font and the body font. A caller-supplied TTF
// replaces both; otherwise the embedded Go fonts are used (bold for the
// quote, regular for everything else).
func (r *pngRenderer) loadFonts() (quote, body *opentype.Font, err error) {
	if r.quoteTTF != nil {
		f, err := opentype.Parse(r.quoteTTF)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}

	quote, err = opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, nil, err
	}
	body, err = opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, nil, err
	}
	return quote, body, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// cardPalette is the parsed color palette.
type cardPalette struct {
	background color.NRGBA
	text       color.NRGBA
	accent     color.NRGBA
	footer     color.NRGBA
}

func loadPalette(cfg config.Config) (cardPalette, error) {
	var p cardPalette
	var err error
	if p.background, err = parseHexColor(cfg.Colors.Background); err != nil {
		return p, err
	}
	if p.text, err = parseHexColor(cfg.Colors.Text); err != nil {
		return p, err
	}
	if p.accent, err = parseHexColor(cfg.Colors.Accent); err != nil {
		return p, err
	}
	if p.footer, err = parseHexColor(cfg.Colors.Footer); err != nil {
		return p, err
	}
	return p, nil
}

// drawString draws s with its baseline at (x, y).
func drawString(img *image.RGBA, face font.Face, c color.NRGBA, x, y float64, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

// measureString returns the advance width of s in pixels.
func measureString(face font.Face, s string) float64 {
	d := &font.Drawer{Face: face}
	return float64(d.MeasureString(s)) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
