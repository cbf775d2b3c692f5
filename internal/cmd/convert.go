package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/salmonumbrella/tracwiki-cli/internal/cmdutil"
	"github.com/salmonumbrella/tracwiki-cli/internal/config"
	"github.com/salmonumbrella/tracwiki-cli/internal/markdown"
	"github.com/salmonumbrella/tracwiki-cli/internal/tracwiki"
	"github.com/salmonumbrella/tracwiki-cli/internal/ui"
)

func newConvertCmd(app *App) *cobra.Command {
	var (
		outPath        string
		preserveBreaks bool
		columnWidths   []string
		langAliases    []string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a Markdown document to wiki markup",
		Long: `Convert reads Markdown from a file, @file, or stdin ("-" or no
argument) and writes the wiki markup to stdout or --out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			opts := optionsFromContext(ctx)

			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			source, err := cmdutil.ResolveInput(arg)
			if err != nil {
				return err
			}

			tOpts, err := transcoderOptions(cmd.Flags(), cfg)
			if err != nil {
				return err
			}

			doc := markdown.Parse([]byte(source))
			out := tracwiki.New(tOpts...).Render(doc)
			slog.Debug("converted document", "bytes_in", len(source), "bytes_out", len(out))
			if out == "" && !opts.Quiet {
				ui.FromContext(ctx).Warning("document is empty; nothing to convert")
			}

			if err := cmdutil.WriteOutput(app.Stdout, outPath, out); err != nil {
				return err
			}
			if outPath != "" && outPath != "-" && !opts.Quiet {
				ui.FromContext(ctx).Success("wrote %s", outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write output to a file instead of stdout")
	cmd.Flags().BoolVar(&preserveBreaks, "preserve-breaks", false, "Keep source line breaks instead of reflowing paragraphs")
	cmd.Flags().StringArrayVar(&columnWidths, "column-width", nil, "Explicit table column width as COL=WIDTH (repeatable)")
	cmd.Flags().StringArrayVar(&langAliases, "lang-alias", nil, "Code block language renaming as FROM=TO (repeatable)")

	return cmd
}

// transcoderOptions merges config-file defaults with convert's flags.
// Flags beat config; widths and aliases accumulate, with flag entries
// overriding config entries for the same key.
func transcoderOptions(flags *pflag.FlagSet, cfg *config.Config) ([]tracwiki.Option, error) {
	preserveBreaks, _ := flags.GetBool("preserve-breaks")
	columnWidths, _ := flags.GetStringArray("column-width")
	langAliases, _ := flags.GetStringArray("lang-alias")

	widths, err := cmdutil.ParseColumnWidths(columnWidths)
	if err != nil {
		return nil, err
	}
	aliases, err := cmdutil.ParseAliases(langAliases)
	if err != nil {
		return nil, err
	}

	opts := []tracwiki.Option{}
	if preserveBreaks || (!flags.Changed("preserve-breaks") && cfg.PreserveBreaks) {
		opts = append(opts, tracwiki.WithPreserveBreaks(true))
	}
	if len(cfg.ColumnWidths) > 0 {
		opts = append(opts, tracwiki.WithColumnWidths(cfg.ColumnWidths))
	}
	if len(widths) > 0 {
		opts = append(opts, tracwiki.WithColumnWidths(widths))
	}
	if len(cfg.LanguageAliases) > 0 {
		opts = append(opts, tracwiki.WithLanguageAliases(cfg.LanguageAliases))
	}
	if len(aliases) > 0 {
		opts = append(opts, tracwiki.WithLanguageAliases(aliases))
	}
	return opts, nil
}
