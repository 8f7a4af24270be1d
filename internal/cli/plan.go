package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkurosawa/quotecard/pkg/pipeline"
)

// planCommand creates the plan command for inspecting the layout.
func (c *CLI) planCommand() *cobra.Command {
	var (
		title      string
		author     string
		configPath string
		width      float64
		margin     float64
	)

	cmd := &cobra.Command{
		Use:   "plan [quote]",
		Short: "Print the computed layout as JSON",
		Long: `Print the computed layout as JSON without rendering anything.

The output shows the wrapped lines per section, the chosen font sizes,
and the derived canvas height. Useful for debugging line breaks and for
tuning a configuration file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Quote:  unescapeNewlines(args[0]),
				Title:  unescapeNewlines(title),
				Author: unescapeNewlines(author),
				Logger: c.Logger,
			}
			cfg, err := loadConfig(configPath, width, margin)
			if err != nil {
				return err
			}
			opts.Config = cfg

			runner := pipeline.NewRunner(nil, nil, c.Logger)
			plan, err := runner.Plan(cmd.Context(), opts)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(plan, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "title section text")
	cmd.Flags().StringVarP(&author, "author", "a", "", "author section text")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file overriding the defaults")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width in pixels (overrides config)")
	cmd.Flags().Float64Var(&margin, "margin", 0, "horizontal text margin in pixels (overrides config)")

	return cmd
}
