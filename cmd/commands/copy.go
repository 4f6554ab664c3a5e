package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/blockpad/internal/cli"
	"github.com/pluqqy/blockpad/pkg/files"
	"github.com/pluqqy/blockpad/pkg/render"
)

var errNoClipboard = errors.New("no clipboard utility available")

// writeClipboard is replaced in tests
var writeClipboard = func(text string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(text)
}

var copyBlockID string

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "copy <page>",
		Aliases: []string{"clip"},
		Short:   "Copy a page or one block to the clipboard",
		Long: `Copy a page's text to the system clipboard.

With --block only that block's content is copied, exactly as stored.
When no clipboard is available the text is printed instead so it can be
copied by hand.

Examples:
  blockpad copy goals
  blockpad copy goals --block b3`,
		Args: cobra.ExactArgs(1),
		RunE: runCopy,
	}

	cmd.Flags().StringVarP(&copyBlockID, "block", "b", "", "Copy only the block with this id")

	return cmd
}

func runCopy(cmd *cobra.Command, args []string) error {
	page, _, err := files.ResolvePage(args[0])
	if err != nil {
		return err
	}

	var content, what string
	if copyBlockID != "" {
		found := false
		for _, b := range page.Blocks {
			if b.ID == copyBlockID {
				content, found = b.Content, true
				break
			}
		}
		if !found {
			return fmt.Errorf("block %q not found in page %s", copyBlockID, page.Slug)
		}
		what = fmt.Sprintf("Block '%s'", copyBlockID)
	} else {
		ps := render.StaticPage(page.Blocks)
		for i := range ps {
			// empty blocks copy as blank lines
			ps[i].Placeholder = ""
		}
		content = render.PlainPage(ps, 0)
		what = fmt.Sprintf("Page '%s'", page.Slug)
	}

	if err := writeClipboard(content); err != nil {
		cli.PrintWarning("Clipboard unavailable (%v), copy the text below manually", err)
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}

	cli.PrintSuccess("%s copied to clipboard", what)

	preview, _, more := strings.Cut(content, "\n")
	if more {
		preview += " ..."
	}
	cli.PrintInfo("Preview: %s", cli.TruncateString(preview, 80))
	return nil
}
