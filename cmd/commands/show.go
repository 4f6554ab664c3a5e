package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/blockpad/internal/cli"
	"github.com/pluqqy/blockpad/pkg/files"
	"github.com/pluqqy/blockpad/pkg/render"
	"github.com/pluqqy/blockpad/pkg/utils"
)

var (
	showWidth    int
	showMetadata bool
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <page>",
		Short: "Print a page without opening the editor",
		Long: `Print a page the way the editor shows it before it becomes interactive.

The page can be a built-in slug, the slug of a file under .blockpad/pages,
or a path to a page file.

Examples:
  # Show a built-in page
  blockpad show goals

  # Wrap at 60 columns
  blockpad show travel-plans --width 60

  # Output the page definition as YAML
  blockpad show ./notes.yaml -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().IntVar(&showWidth, "width", 0, "Wrap text at this width (0 uses the editor setting)")
	cmd.Flags().BoolVarP(&showMetadata, "metadata", "m", false, "Show page metadata")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	page, path, err := files.ResolvePage(args[0])
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, page)
	}

	width := showWidth
	if width == 0 {
		if settings, err := files.ReadSettings(); err == nil {
			width = settings.Editor.Width
		}
	}

	out := cmd.OutOrStdout()
	if showMetadata {
		fmt.Fprintf(out, "Slug: %s\n", page.Slug)
		fmt.Fprintf(out, "Title: %s\n", page.DisplayTitle())
		stats := utils.Stats(page.Blocks)
		fmt.Fprintf(out, "Blocks: %d (%d empty)\n", stats.Blocks, stats.Empty)
		fmt.Fprintf(out, "Words: %d\n", stats.Words)
		fmt.Fprintf(out, "Estimated tokens: %s\n", utils.FormatTokenCount(stats.Tokens))
		if path == "" {
			path = "built-in"
		}
		fmt.Fprintf(out, "Source: %s\n", path)
		if page.LastEdited != "" {
			fmt.Fprintf(out, "Last edited: %s\n", page.LastEdited)
		}
		rule := width
		if rule <= 0 {
			rule = 80
		}
		fmt.Fprintln(out, strings.Repeat("-", rule))
	}

	fmt.Fprintln(out, render.PlainPage(render.StaticPage(page.Blocks), width))
	return nil
}
