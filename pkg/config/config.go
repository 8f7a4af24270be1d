// Package config defines the card configuration and its defaults.
//
// A Config is an immutable bundle of the numeric and string options that
// drive layout and rendering: canvas geometry, per-section font sizing,
// line-count ceilings, the kinsoku prohibition sets, the color palette,
// opacities, and spacing. Exactly one default instance exists ([Default]);
// callers override subtrees structurally by decoding a TOML file on top of
// the defaults ([Load]), which produces a new value and never mutates the
// defaults in place.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/tkurosawa/quotecard/pkg/errors"
)

// Canvas holds the output canvas geometry in pixels.
type Canvas struct {
	Width        float64 `toml:"width"`
	MinHeight    float64 `toml:"min_height"`
	MaxHeight    float64 `toml:"max_height"`
	Margin       float64 `toml:"margin"`
	FooterHeight float64 `toml:"footer_height"`
}

// Font holds font families and per-section base/minimum sizes.
// Minimum sizes are used when any section overflows its line ceiling at the
// base size (the downgrade applies to all sections at once).
type Font struct {
	Family   string `toml:"family"`
	FamilyJP string `toml:"family_jp"`

	QuoteSize     float64 `toml:"quote_size"`
	QuoteMinSize  float64 `toml:"quote_min_size"`
	TitleSize     float64 `toml:"title_size"`
	TitleMinSize  float64 `toml:"title_min_size"`
	AuthorSize    float64 `toml:"author_size"`
	AuthorMinSize float64 `toml:"author_min_size"`
}

// Text holds line-count ceilings and the kinsoku prohibition sets.
// LineStartProhibited characters may never begin a wrapped line;
// LineEndProhibited characters may never end one.
type Text struct {
	QuoteMaxLines  int `toml:"quote_max_lines"`
	TitleMaxLines  int `toml:"title_max_lines"`
	AuthorMaxLines int `toml:"author_max_lines"`

	LineStartProhibited string `toml:"line_start_prohibited"`
	LineEndProhibited   string `toml:"line_end_prohibited"`
}

// Colors holds the card palette as CSS hex strings.
type Colors struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Accent     string `toml:"accent"`
	Footer     string `toml:"footer"`
}

// Opacity holds opacities for decorative elements.
type Opacity struct {
	QuoteMark float64 `toml:"quote_mark"`
	Separator float64 `toml:"separator"`
}

// Spacing holds vertical rhythm and decorative element sizes.
type Spacing struct {
	StartY     float64 `toml:"start_y"`
	SectionGap float64 `toml:"section_gap"`

	QuoteLineGap  float64 `toml:"quote_line_gap"`
	TitleLineGap  float64 `toml:"title_line_gap"`
	AuthorLineGap float64 `toml:"author_line_gap"`

	QuoteMarkSize  float64 `toml:"quote_mark_size"`
	SeparatorWidth float64 `toml:"separator_width"`
}

// Config is the full card configuration.
type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	Font    Font    `toml:"font"`
	Text    Text    `toml:"text"`
	Colors  Colors  `toml:"colors"`
	Opacity Opacity `toml:"opacity"`
	Spacing Spacing `toml:"spacing"`
}

// Default returns the default configuration.
// The result is a value; callers may modify their copy freely.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:        800,
			MinHeight:    400,
			MaxHeight:    1280,
			Margin:       80,
			FooterHeight: 72,
		},
		Font: Font{
			Family:   "Georgia, 'Times New Roman', serif",
			FamilyJP: "'Hiragino Mincho ProN', 'Yu Mincho', serif",

			QuoteSize:     32,
			QuoteMinSize:  24,
			TitleSize:     22,
			TitleMinSize:  17,
			AuthorSize:    18,
			AuthorMinSize: 14,
		},
		Text: Text{
			QuoteMaxLines:  8,
			TitleMaxLines:  2,
			AuthorMaxLines: 1,

			// Characters that must not start a line: closing punctuation,
			// small kana, sound marks, and sentence-ending marks.
			LineStartProhibited: "、。，．・：；？！゛゜ヽヾゝゞ々ー）〕］｝〉》」』】ぁぃぅぇぉっゃゅょゎァィゥェォッャュョヮ…‥",
			// Characters that must not end a line: opening brackets.
			LineEndProhibited: "（〔［｛〈《「『【",
		},
		Colors: Colors{
			Background: "#FBF8F1",
			Text:       "#2B2B2B",
			Accent:     "#A8926D",
			Footer:     "#8A8578",
		},
		Opacity: Opacity{
			QuoteMark: 0.18,
			Separator: 0.6,
		},
		Spacing: Spacing{
			StartY:     120,
			SectionGap: 36,

			QuoteLineGap:  12,
			TitleLineGap:  8,
			AuthorLineGap: 6,

			QuoteMarkSize:  64,
			SeparatorWidth: 48,
		},
	}
}

// Load returns the default configuration overlaid with the TOML file at path.
// Keys absent from the file keep their default values; present keys replace
// the whole value. The defaults themselves are never mutated.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to load config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MaxTextWidth returns the horizontal pixel budget for wrapped text:
// the canvas width minus the margin on both sides.
func (c Config) MaxTextWidth() float64 {
	return c.Canvas.Width - 2*c.Canvas.Margin
}

// Validate checks the configuration for impossible geometry or sizing.
// All violations are reported with the INVALID_CONFIG code.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas width must be positive, got %g", c.Canvas.Width)
	}
	if c.Canvas.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas margin cannot be negative, got %g", c.Canvas.Margin)
	}
	if c.MaxTextWidth() <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margins leave no room for text (width %g, margin %g)", c.Canvas.Width, c.Canvas.Margin)
	}
	if c.Canvas.MinHeight <= 0 || c.Canvas.MaxHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas heights must be positive")
	}
	if c.Canvas.MinHeight > c.Canvas.MaxHeight {
		return errors.New(errors.ErrCodeInvalidConfig, "min height %g exceeds max height %g", c.Canvas.MinHeight, c.Canvas.MaxHeight)
	}
	if c.Font.Family == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "font family cannot be empty")
	}
	for _, s := range []struct {
		name string
		size float64
	}{
		{"quote_size", c.Font.QuoteSize},
		{"quote_min_size", c.Font.QuoteMinSize},
		{"title_size", c.Font.TitleSize},
		{"title_min_size", c.Font.TitleMinSize},
		{"author_size", c.Font.AuthorSize},
		{"author_min_size", c.Font.AuthorMinSize},
	} {
		if s.size <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "font %s must be positive, got %g", s.name, s.size)
		}
	}
	if c.Text.QuoteMaxLines < 1 || c.Text.TitleMaxLines < 1 || c.Text.AuthorMaxLines < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "max line counts must be at least 1")
	}
	return nil
}
