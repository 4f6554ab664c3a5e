package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/blockpad/internal/cli"
	"github.com/pluqqy/blockpad/pkg/files"
	"github.com/pluqqy/blockpad/pkg/pages"
	"github.com/pluqqy/blockpad/pkg/utils"
)

// PageListResult is the structured output of the pages command
type PageListResult struct {
	Items []PageListItem `json:"items" yaml:"items"`
	Count int            `json:"count" yaml:"count"`
}

// PageListItem describes one openable page
type PageListItem struct {
	Slug   string `json:"slug" yaml:"slug"`
	Title  string `json:"title" yaml:"title"`
	Source string `json:"source" yaml:"source"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
	Blocks int    `json:"blocks" yaml:"blocks"`
	Words  int    `json:"words" yaml:"words"`
}

const (
	sourceBuiltin = "built-in"
	sourceProject = "project"
)

var pagesShowPaths bool

// NewPagesCommand creates the pages command
func NewPagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pages",
		Aliases: []string{"list", "ls"},
		Short:   "List the pages that can be opened",
		Long: `List built-in pages and the pages stored under .blockpad/pages.

A project page with the same slug as a built-in page replaces it.

Examples:
  blockpad pages
  blockpad pages --paths
  blockpad pages -o json`,
		Args: cobra.NoArgs,
		RunE: runPages,
	}

	cmd.Flags().BoolVar(&pagesShowPaths, "paths", false, "Show file paths")

	return cmd
}

func runPages(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	items, err := collectPages()
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, PageListResult{Items: items, Count: len(items)})
	}

	if len(items) == 0 {
		cli.PrintInfo("No pages found")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	if pagesShowPaths {
		table.Header("SLUG", "TITLE", "BLOCKS", "WORDS", "SOURCE", "PATH")
	} else {
		table.Header("SLUG", "TITLE", "BLOCKS", "WORDS", "SOURCE")
	}
	for _, item := range items {
		row := []string{
			item.Slug,
			cli.TruncateString(item.Title, 30),
			strconv.Itoa(item.Blocks),
			strconv.Itoa(item.Words),
			item.Source,
		}
		if pagesShowPaths {
			row = append(row, item.Path)
		}
		table.Row(row...)
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d pages\n", len(items))
	return nil
}

// collectPages merges project pages over the built-ins, sorted by slug
func collectPages() ([]PageListItem, error) {
	bySlug := make(map[string]PageListItem)
	for _, p := range pages.All() {
		bySlug[p.Slug] = PageListItem{
			Slug:   p.Slug,
			Title:  p.DisplayTitle(),
			Source: sourceBuiltin,
			Blocks: len(p.Blocks),
			Words:  utils.Stats(p.Blocks).Words,
		}
	}

	project, skipped, err := files.LoadProjectPages()
	if err != nil {
		return nil, err
	}
	skippedPaths := make([]string, 0, len(skipped))
	for path := range skipped {
		skippedPaths = append(skippedPaths, path)
	}
	sort.Strings(skippedPaths)
	for _, path := range skippedPaths {
		cli.PrintWarning("Skipping %s: %v", path, skipped[path])
	}
	for slug, p := range project {
		bySlug[slug] = PageListItem{
			Slug:   slug,
			Title:  p.Page.DisplayTitle(),
			Source: sourceProject,
			Path:   p.Path,
			Blocks: len(p.Page.Blocks),
			Words:  utils.Stats(p.Page.Blocks).Words,
		}
	}

	items := make([]PageListItem, 0, len(bySlug))
	for _, item := range bySlug {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Slug < items[j].Slug })
	return items, nil
}
