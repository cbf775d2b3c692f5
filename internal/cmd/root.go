// Package cmd wires the trc command tree: convert, inspect, config and the
// MCP server, plus the global flags shared between them.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salmonumbrella/tracwiki-cli/internal/config"
	"github.com/salmonumbrella/tracwiki-cli/internal/logging"
	"github.com/salmonumbrella/tracwiki-cli/internal/output"
	"github.com/salmonumbrella/tracwiki-cli/internal/ui"
)

func newRootCmd(app *App) *cobra.Command {
	// Global flags
	var (
		debugMode    bool
		outputFlag   string
		queryFlag    string
		jsonPathFlag string
		colorFlag    string
		quietFlag    bool
	)

	rootCmd := &cobra.Command{
		Use:   "trc",
		Short: "Convert Markdown to Trac wiki markup",
		Long: `trc converts Markdown documents into Trac-style wiki markup, with
column-width-aware table rendering and dummy header synthesis for tables
the dialect considers header-less.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Cobra's own error/usage text is suppressed; errors are printed
			// centrally in App.Execute.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			logging.Setup(debugMode, app.Stderr)

			// Load config file (skip for config commands to avoid recursion)
			var cfg *config.Config
			if !isConfigCommand(cmd) {
				loadedCfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = loadedCfg
			} else {
				cfg = &config.Config{}
			}

			opts, err := parseGlobalOptions(cfg, globalFlagInput{
				outputFlag:   outputFlag,
				colorFlag:    colorFlag,
				quietFlag:    quietFlag,
				outputSet:    cmd.Flags().Changed("output"),
				stderrIsTerm: term.IsTerminal(int(os.Stderr.Fd())),
			})
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			ctx = withConfig(ctx, cfg)
			ctx = withOptions(ctx, opts)
			ctx = ui.WithUI(ctx, ui.New(opts.Color))
			ctx = output.WithQuery(ctx, queryFlag)
			ctx = output.WithJSONPath(ctx, jsonPathFlag)
			cmd.SetContext(ctx)
			return nil
		},
	}

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("trc %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))

	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "Inspect output format: text|json|yaml")
	rootCmd.PersistentFlags().StringVarP(&queryFlag, "query", "q", "", "JQ expression to filter JSON output")
	rootCmd.PersistentFlags().StringVar(&jsonPathFlag, "jsonpath", "", "Extract a value using JSONPath (e.g. $.stats.tables)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color mode: auto|always|never")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress non-essential output")

	rootCmd.AddCommand(newConvertCmd(app))
	rootCmd.AddCommand(newInspectCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newMCPCmd(app))

	return rootCmd
}

func isConfigCommand(cmd *cobra.Command) bool {
	if cmd.Name() == "config" {
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "config"
}

// globalFlagInput carries raw persistent flag values into option parsing.
type globalFlagInput struct {
	outputFlag   string
	colorFlag    string
	quietFlag    bool
	outputSet    bool
	stderrIsTerm bool
}

func parseGlobalOptions(cfg *config.Config, in globalFlagInput) (Options, error) {
	// Flags beat config; config beats defaults.
	outputValue := in.outputFlag
	if !in.outputSet && cfg.GetOutput() != "" {
		outputValue = cfg.GetOutput()
	}
	format, err := output.ParseFormat(outputValue)
	if err != nil {
		return Options{}, err
	}

	colorValue := in.colorFlag
	if colorValue == "" {
		colorValue = cfg.GetColor()
	}
	color, err := ui.ParseColorMode(colorValue)
	if err != nil {
		return Options{}, err
	}
	if color == ui.ColorAuto && !in.stderrIsTerm {
		color = ui.ColorNever
	}

	return Options{Format: format, Color: color, Quiet: in.quietFlag}, nil
}
