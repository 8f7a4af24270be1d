// Package pipeline provides the card generation pipeline for quotecard.
//
// This package implements the complete validate → layout → render → write
// pipeline that the CLI and embedders share. Centralizing it here keeps
// behavior consistent across entry points and avoids duplicating the
// caching and diagnostics logic.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Validate: Check the quote text and the output destination
//  2. Layout: Wrap the text, pick font sizes, derive the canvas height
//  3. Render: Encode the card in the requested format (PNG or SVG)
//  4. Write: Persist the artifact to the output path
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, recorder, logger)
//	opts := pipeline.Options{
//	    Quote:  "一日一歩",
//	    Author: "不明",
//	    Output: "card.png",
//	    Format: "png",
//	}
//	result, err := runner.Execute(ctx, opts)
package pipeline

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tkurosawa/quotecard/pkg/config"
	"github.com/tkurosawa/quotecard/pkg/errors"
	"github.com/tkurosawa/quotecard/pkg/layout"
	"github.com/tkurosawa/quotecard/pkg/render"
)

// DefaultFormat is the output format used when none is requested.
const DefaultFormat = render.FormatPNG

// DefaultOutputBase is the file name (sans extension) derived when no
// output path is given.
const DefaultOutputBase = "quote"

// Options contains all configuration for one card generation.
// This struct supports JSON serialization for embedders.
type Options struct {
	// Card content
	Quote  string `json:"quote"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`

	// Output options
	Output string `json:"output,omitempty"`
	Format string `json:"format,omitempty"`

	// Render options
	FontPath string `json:"font_path,omitempty"` // TTF used for PNG rasterization

	// Refresh bypasses the artifact cache and re-renders.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Config *config.Config `json:"-"`
	Logger *log.Logger    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Data is the validated card content that was laid out.
	Data layout.QuoteData

	// Plan is the computed layout.
	Plan layout.Plan

	// Artifact is the encoded card image.
	Artifact []byte

	// Output is the path the artifact was written to.
	Output string

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks whether the render stage hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayoutTime time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	RenderHit bool // Whether the artifact came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !render.ValidFormats[format] {
		return errors.New(errors.ErrCodeRenderFailed, "invalid format: %q (must be one of: png, svg)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	quote, err := errors.ValidateQuote(o.Quote)
	if err != nil {
		return err
	}
	o.Quote = quote
	o.Title = strings.TrimSpace(o.Title)
	o.Author = strings.TrimSpace(o.Author)

	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}

	if o.Output == "" {
		o.Output = DefaultOutputBase + render.Ext(o.Format)
	}
	path, err := errors.ValidateOutputPathExt(o.Output, render.Ext(o.Format))
	if err != nil {
		return err
	}
	o.Output = filepath.Clean(path)

	if o.Config == nil {
		cfg := config.Default()
		o.Config = &cfg
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// QuoteData returns the validated card content as layout input.
func (o *Options) QuoteData() layout.QuoteData {
	return layout.QuoteData{
		Quote:  o.Quote,
		Title:  o.Title,
		Author: o.Author,
	}
}
