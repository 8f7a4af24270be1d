package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/tkurosawa/quotecard/pkg/config"
	"github.com/tkurosawa/quotecard/pkg/errors"
	"github.com/tkurosawa/quotecard/pkg/layout"
)

func TestRenderPNG(t *testing.T) {
	cfg := config.Default()
	data := layout.QuoteData{Quote: "Stay hungry, stay foolish.", Author: "Steve Jobs"}
	plan := testPlan(t, data)

	out, err := RenderPNG(plan, data, cfg)
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != int(cfg.Canvas.Width) {
		t.Errorf("width = %d, want %g", bounds.Dx(), cfg.Canvas.Width)
	}
	if bounds.Dy() != int(plan.CanvasHeight) {
		t.Errorf("height = %d, want %g", bounds.Dy(), plan.CanvasHeight)
	}

	// The corner pixel carries the background color.
	r, g, b, _ := img.At(0, 0).RGBA()
	wantBG, err := parseHexColor(cfg.Colors.Background)
	if err != nil {
		t.Fatal(err)
	}
	if uint8(r>>8) != wantBG.R || uint8(g>>8) != wantBG.G || uint8(b>>8) != wantBG.B {
		t.Errorf("corner pixel = (%d,%d,%d), want background %v", r>>8, g>>8, b>>8, wantBG)
	}
}

func TestRenderPNGEmptyPlan(t *testing.T) {
	_, err := RenderPNG(layout.Plan{}, layout.QuoteData{}, config.Default())
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("RenderPNG(empty) code = %v, want RENDER_FAILED", errors.GetCode(err))
	}
}

func TestRenderPNGInvalidPalette(t *testing.T) {
	cfg := config.Default()
	cfg.Colors.Background = "papayawhip"

	data := layout.QuoteData{Quote: "quote"}
	plan := testPlan(t, data)

	_, err := RenderPNG(plan, data, cfg)
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("RenderPNG(bad palette) code = %v, want RENDER_FAILED", errors.GetCode(err))
	}
}

func TestRenderPNGRejectsBadTTF(t *testing.T) {
	data := layout.QuoteData{Quote: "quote"}
	plan := testPlan(t, data)

	_, err := RenderPNG(plan, data, config.Default(), WithFontTTF([]byte("not a font")))
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("RenderPNG(bad ttf) code = %v, want RENDER_FAILED", errors.GetCode(err))
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantErr bool
	}{
		{"#000000", 0, 0, 0, false},
		{"#FFFFFF", 255, 255, 255, false},
		{"#2B2B2B", 0x2B, 0x2B, 0x2B, false},
		{"", 0, 0, 0, true},
		{"2B2B2B", 0, 0, 0, true},
		{"#FFF", 0, 0, 0, true},
		{"#GGGGGG", 0, 0, 0, true},
	}

	for _, tt := range tests {
		c, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && (c.R != tt.wantR || c.G != tt.wantG || c.B != tt.wantB) {
			t.Errorf("parseHexColor(%q) = %v", tt.in, c)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c, err := parseHexColor("#FFFFFF")
	if err != nil {
		t.Fatal(err)
	}

	if got := withAlpha(c, 0.5).A; got != 127 {
		t.Errorf("withAlpha(0.5).A = %d, want 127", got)
	}
	if got := withAlpha(c, 2).A; got != 255 {
		t.Errorf("withAlpha(2).A = %d, want clamped 255", got)
	}
	if got := withAlpha(c, -1).A; got != 0 {
		t.Errorf("withAlpha(-1).A = %d, want clamped 0", got)
	}
}
