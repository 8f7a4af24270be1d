// Package pkg provides the core libraries for quotecard image generation.
//
// # Overview
//
// Quotecard turns a quote, an optional title, and an optional author into a
// typeset card image with Japanese line-breaking rules applied. The pkg
// directory is organized into three main areas:
//
//  1. Text engine - width estimation, wrapping, truncation
//  2. Card assembly - configuration, layout planning, rendering, output
//  3. Infrastructure - errors, caching, diagnostics, observability
//
// # Architecture
//
// The typical data flow through quotecard:
//
//	Quote text (+ title, author)
//	         ↓
//	    [errors] package (validation)
//	         ↓
//	    [text] package (width estimation + kinsoku wrapping)
//	         ↓
//	    [layout] package (font sizing + canvas height)
//	         ↓
//	    [render] package (SVG or PNG encoding)
//	         ↓
//	    [output] package (file write)
//
// # Quick Start
//
// Generate a card through the pipeline:
//
//	import (
//	    "context"
//	    "github.com/tkurosawa/quotecard/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Quote:  "一日一歩、三日で三歩",
//	    Author: "不明",
//	    Output: "card.png",
//	})
//
// Or use the stages directly:
//
//	cfg := config.Default()
//	plan, _ := layout.PlanLayout(layout.QuoteData{Quote: text}, cfg)
//	png, _ := render.RenderPNG(plan, data, cfg)
//
// # Main Packages
//
// [text] - Character width estimation (half vs full width by Unicode
// range), line wrapping with kinsoku shori prohibition rules, and ellipsis
// truncation.
//
// [layout] - Layout planning: wraps each section, downgrades all font
// sizes together when any section overflows its line ceiling, and derives
// the canvas height from the line counts.
//
// [config] - Card configuration (canvas, fonts, colors, spacing, kinsoku
// character sets) with TOML file overlay.
//
// [render] - SVG and PNG sinks sharing the same card geometry. PNG
// rasterizes with embedded Go fonts or a caller-supplied TTF.
//
// [output] - Filesystem sink creating parent directories as needed.
//
// [errors] - Structured errors with machine-readable codes, plus input
// validation.
//
// [cache] - Content-addressed artifact cache so identical runs reuse the
// rendered bytes.
//
// [diag] - Append-only failure log, one file per process, injected into
// the pipeline rather than global.
//
// [observability] - No-op hook registry for instrumenting pipeline and
// cache events.
//
// [pipeline] - Complete validate → layout → render → write orchestration
// used by the CLI and embedders.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/text/...     # Specific package
//
// [text]: https://pkg.go.dev/github.com/tkurosawa/quotecard/pkg/text
// [layout]: https://pkg.go.dev/github.com/tkurosawa/quotecard/pkg/layout
// [config]: https://pkg.go.dev/github.com/tkurosawa/quotecard/pkg/config
// [render]: https://pkg.go.dev/github.com/tkurosawa/quotecard/pkg/render
// [output]: https://pkg.go.dev/github.com/tkurosawa/quotecard/pkg/output
// [errors]: https://pkg.go.dev/github.com/tkurosawa/quotecard/pkg/errors
// [cache]: https://pkg.go.dev/github.com/tkurosawa/quotecard/pkg/cache
// [diag]: https://pkg.go.dev/github.com/tkurosawa/quotecard/pkg/diag
// [observability]: https://pkg.go.dev/github.com/tkurosawa/quotecard/pkg/observability
// [pipeline]: https://pkg.go.dev/github.com/tkurosawa/quotecard/pkg/pipeline
package pkg
