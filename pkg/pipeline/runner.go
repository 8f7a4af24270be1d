package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tkurosawa/quotecard/pkg/cache"
	"github.com/tkurosawa/quotecard/pkg/config"
	"github.com/tkurosawa/quotecard/pkg/diag"
	"github.com/tkurosawa/quotecard/pkg/errors"
	"github.com/tkurosawa/quotecard/pkg/layout"
	"github.com/tkurosawa/quotecard/pkg/observability"
	"github.com/tkurosawa/quotecard/pkg/output"
	"github.com/tkurosawa/quotecard/pkg/render"
)

// Runner encapsulates pipeline execution with caching and failure
// diagnostics.
//
// The Runner is stateless except for the cache, recorder, and logger. It
// does not store pipeline results, so multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Diag   diag.Recorder
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and failure recorder.
// If cache is nil, a NullCache is used (caching disabled).
// If recorder is nil, a NullRecorder is used (diagnostics disabled).
func NewRunner(c cache.Cache, rec diag.Recorder, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if rec == nil {
		rec = diag.NewNullRecorder()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Diag:   rec,
		Logger: logger,
	}
}

// Execute runs the complete validate → layout → render → write pipeline.
// Every failure is recorded to the diagnostic log before being returned.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	hooks := observability.Pipeline()

	validateStart := time.Now()
	hooks.OnValidateStart(ctx)
	err := opts.ValidateAndSetDefaults()
	hooks.OnValidateComplete(ctx, time.Since(validateStart), err)
	if err != nil {
		return nil, r.fail(ctx, err, map[string]any{"output": opts.Output})
	}

	logger := r.logger(opts)

	result := &Result{
		Data:   opts.QuoteData(),
		Output: opts.Output,
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, len([]rune(opts.Quote)))
	plan, err := layout.PlanLayout(result.Data, *opts.Config)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, len(plan.QuoteLines), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, r.fail(ctx, err, map[string]any{"quote": opts.Quote})
	}
	result.Plan = plan

	logger.Info("planned layout",
		"quote_lines", len(plan.QuoteLines),
		"font_size", plan.FontSizes.Quote,
		"height", plan.CanvasHeight,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Format)
	artifact, renderHit, err := r.renderWithCache(ctx, plan, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Format, len(artifact), result.Stats.RenderTime, err)
	if err != nil {
		return nil, r.fail(ctx, err, map[string]any{"format": opts.Format})
	}
	result.Artifact = artifact
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered card",
		"format", opts.Format,
		"bytes", len(artifact),
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	// Stage 3: Write
	writeStart := time.Now()
	if err := output.Write(opts.Output, artifact); err != nil {
		return nil, r.fail(ctx, err, map[string]any{"output": opts.Output})
	}
	result.Stats.WriteTime = time.Since(writeStart)

	logger.Info("wrote output",
		"path", opts.Output,
		"duration", result.Stats.WriteTime)

	return result, nil
}

// Plan runs validation and layout only, without rendering or writing.
// The plan subcommand uses this for layout inspection.
func (r *Runner) Plan(ctx context.Context, opts Options) (layout.Plan, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Plan{}, r.fail(ctx, err, nil)
	}
	plan, err := layout.PlanLayout(opts.QuoteData(), *opts.Config)
	if err != nil {
		return layout.Plan{}, r.fail(ctx, err, map[string]any{"quote": opts.Quote})
	}
	return plan, nil
}

// renderWithCache renders the card, consulting the artifact cache first.
// The key covers every render input, so a hit can never be stale.
func (r *Runner) renderWithCache(ctx context.Context, plan layout.Plan, opts Options) ([]byte, bool, error) {
	key, keyed := artifactKey(plan, opts)

	if keyed && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	var pngOpts []render.PNGOption
	if opts.FontPath != "" {
		ttf, err := renderFont(opts.FontPath)
		if err != nil {
			return nil, false, err
		}
		pngOpts = append(pngOpts, render.WithFontTTF(ttf))
	}

	data, err := render.Render(opts.Format, plan, opts.QuoteData(), *opts.Config, pngOpts...)
	if err != nil {
		return nil, false, err
	}

	if keyed {
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return data, false, nil
}

// fail records err to the diagnostic log and returns it unchanged. The
// recorder is best-effort: a failing recorder never masks the original
// error.
func (r *Runner) fail(ctx context.Context, err error, fields map[string]any) error {
	entry := diag.Entry{
		Code:    string(errors.GetCode(err)),
		Message: err.Error(),
		Context: fields,
	}
	if recErr := r.Diag.Record(ctx, entry); recErr != nil {
		r.Logger.Warn("failed to record diagnostic entry", "error", recErr)
	}
	return err
}

// logger returns the per-run logger, preferring the one set on opts.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// renderFont loads a caller-supplied TTF for the PNG sink.
func renderFont(path string) ([]byte, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to read font file %s", path)
	}
	return ttf, nil
}

// artifactKey derives the cache key for a render from all of its inputs,
// including the configuration since colors and spacing affect the pixels
// without affecting the plan. Returns false if the inputs cannot be
// serialized, in which case caching is skipped for this run.
func artifactKey(plan layout.Plan, opts Options) (string, bool) {
	payload := struct {
		Plan   layout.Plan      `json:"plan"`
		Data   layout.QuoteData `json:"data"`
		Config config.Config    `json:"config"`
		Format string           `json:"format"`
		Font   string           `json:"font,omitempty"`
	}{
		Plan:   plan,
		Data:   opts.QuoteData(),
		Config: *opts.Config,
		Format: opts.Format,
		Font:   opts.FontPath,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", false
	}
	return "artifact:" + cache.Hash(data), true
}
