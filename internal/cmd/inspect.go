package cmd

import (
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/tracwiki-cli/internal/cmdutil"
	"github.com/salmonumbrella/tracwiki-cli/internal/doctree"
	"github.com/salmonumbrella/tracwiki-cli/internal/markdown"
	"github.com/salmonumbrella/tracwiki-cli/internal/output"
)

func newInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the parsed document tree",
		Long: `Inspect parses a Markdown document and prints its node tree and
summary statistics, as text, JSON (--output json, filterable with --query),
or YAML.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := optionsFromContext(ctx)

			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			source, err := cmdutil.ResolveInput(arg)
			if err != nil {
				return err
			}

			doc := markdown.Parse([]byte(source))
			result := map[string]any{
				"stats": documentStats(doc),
				"tree":  doctree.Summary(doc),
			}
			return output.NewPrinter(app.Stdout, opts.Format).Print(ctx, result)
		},
	}
	return cmd
}

// documentStats counts the node kinds that matter when eyeballing a
// conversion: section and block structure, plus tables.
func documentStats(doc *doctree.Document) map[string]int {
	stats := map[string]int{}
	var walk func(n doctree.Node)
	walk = func(n doctree.Node) {
		switch n.(type) {
		case *doctree.Headline:
			stats["headlines"]++
		case *doctree.Paragraph:
			stats["paragraphs"]++
		case *doctree.Table:
			stats["tables"]++
		case *doctree.CodeBlock, *doctree.ExampleBlock:
			stats["code_blocks"]++
		case *doctree.List:
			stats["lists"]++
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(doc)
	return stats
}
