package cli

import (
	"context"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tkurosawa/quotecard/pkg/config"
	"github.com/tkurosawa/quotecard/pkg/observability"
	"github.com/tkurosawa/quotecard/pkg/pipeline"
)

// generateCommand creates the generate command for rendering a quote card.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		title      string
		author     string
		outputPath string
		format     string
		configPath string
		fontPath   string
		width      float64
		margin     float64
		noCache    bool
		noDiag     bool
		noTUI      bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "generate [quote]",
		Short: "Generate a quote card image",
		Long: `Generate a quote card image from quote text.

The quote is the only required input. Title and author are optional and
get their own sections on the card. Text is wrapped with Japanese
line-breaking rules (kinsoku shori), font sizes shrink automatically when
the text would not fit, and the canvas height adapts to the line count.

A literal \n in the quote, title, or author is treated as a line break.

Rendered cards are cached locally for faster repeat runs; failures are
appended to a diagnostic log under the state directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Quote:    unescapeNewlines(args[0]),
				Title:    unescapeNewlines(title),
				Author:   unescapeNewlines(author),
				Output:   outputPath,
				Format:   format,
				FontPath: fontPath,
				Refresh:  refresh,
			}
			cfg, err := loadConfig(configPath, width, margin)
			if err != nil {
				return err
			}
			opts.Config = cfg
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runGenerate(ctx, opts, noCache, noDiag, noTUI)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "title section text")
	cmd.Flags().StringVarP(&author, "author", "a", "", "author section text")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default quote.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: png (default), svg")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file overriding the defaults")
	cmd.Flags().StringVar(&fontPath, "font", "", "TTF font file used for PNG rendering")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width in pixels (overrides config)")
	cmd.Flags().Float64Var(&margin, "margin", 0, "horizontal text margin in pixels (overrides config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&noDiag, "no-diag", false, "disable the failure diagnostic log")
	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "plain progress output instead of the interactive display")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even when a cached artifact exists")

	return cmd
}

// runGenerate executes the pipeline with either the TUI or plain progress.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, noCache, noDiag, noTUI bool) error {
	runner, err := c.newRunner(noCache, noDiag)
	if err != nil {
		return err
	}

	if noTUI {
		return c.runGeneratePlain(ctx, runner, opts)
	}
	return c.runGenerateTUI(ctx, runner, opts)
}

// runGeneratePlain runs the pipeline behind a spinner with log output.
func (c *CLI) runGeneratePlain(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Generating card...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		if spinner.Cancelled() {
			return context.Canceled
		}
		return err
	}
	spinner.Stop()
	prog.done("Generated card")

	printSuccess("Card generated")
	printFile(result.Output)
	printStats(len(result.Plan.QuoteLines), result.Plan.CanvasHeight, result.CacheInfo.RenderHit)
	return nil
}

// runGenerateTUI runs the pipeline behind the staged progress display.
// Pipeline stage events reach the display through the observability hooks,
// and runner logs are silenced so they cannot corrupt the screen.
func (c *CLI) runGenerateTUI(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) error {
	runner.Logger = newLogger(io.Discard, LogInfo)
	opts.Logger = runner.Logger

	p := tea.NewProgram(NewGenerateModel(opts.Output),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr))

	observability.SetPipelineHooks(&teaHooks{program: p})
	defer observability.Reset()

	go func() {
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			p.Send(failMsg{err: err})
			return
		}
		p.Send(doneMsg{result: result})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := final.(GenerateModel)
	if !ok {
		return nil
	}
	if m.Err != nil {
		return m.Err
	}
	if m.Result != nil {
		printStats(len(m.Result.Plan.QuoteLines), m.Result.Plan.CanvasHeight, m.Result.CacheInfo.RenderHit)
	}
	return nil
}

// loadConfig resolves the effective configuration: the TOML file if given,
// otherwise the defaults, with flag overrides applied on top. Returns nil
// when nothing overrides the defaults so the pipeline uses its own.
func loadConfig(path string, width, margin float64) (*config.Config, error) {
	if path == "" && width <= 0 && margin <= 0 {
		return nil, nil
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if width > 0 {
		cfg.Canvas.Width = width
	}
	if margin > 0 {
		cfg.Canvas.Margin = margin
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// unescapeNewlines turns literal \n sequences from the shell into real
// line breaks. An escaped backslash (\\n) stays literal.
func unescapeNewlines(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
