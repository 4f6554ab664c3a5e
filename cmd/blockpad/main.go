package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pluqqy/blockpad/cmd/commands"
	"github.com/pluqqy/blockpad/internal/cli"
	"github.com/pluqqy/blockpad/internal/logging"
	"github.com/pluqqy/blockpad/pkg/files"
	"github.com/pluqqy/blockpad/pkg/models"
	"github.com/pluqqy/blockpad/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	outputFormat string
	quietFlag    bool
	noColorFlag  bool
	pageRef      string
	watchFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "blockpad [page]",
	Short: "Block-based page editor for the terminal",
	Long: `Blockpad edits pages made of blocks: headings, lists, to-dos, quotes and more.
Type '/' inside a block to change its type. Pages are plain YAML files under
.blockpad/pages, and a set of built-in pages is always available.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli.SetGlobalFlags(quietFlag, noColorFlag)
		return cli.ValidateOutputFormat(outputFormat)
	},
	RunE: runEditor,
}

func runEditor(cmd *cobra.Command, args []string) error {
	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}

	log, err := logging.New().
		FromPath(settings.Log.Path).
		WithLevel(settings.Log.Level).
		FromEnv().
		Make()
	if err != nil {
		return err
	}
	defer log.Close()

	ref := pageRef
	if len(args) == 1 {
		ref = args[0]
	}
	if ref == "" {
		ref = settings.UI.DefaultPage
	}

	page, path, err := files.ResolvePage(ref)
	if err != nil {
		// an unknown default page still opens an untitled page
		if !errors.Is(err, files.ErrPageNotFound) || ref != settings.UI.DefaultPage {
			return err
		}
		log.Logger.Warn().Str("page", ref).Msg("default page not found")
		page = &models.Page{Slug: ref}
	}
	log.Logger.Info().Str("page", page.Slug).Str("path", path).Msg("opening page")

	app := tui.NewApp(tui.Options{
		Page:      page,
		Settings:  settings,
		Logger:    &log.Logger,
		Clipboard: tui.SystemClipboard{},
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if settings.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app, opts...)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)

	if watchFlag {
		if path == "" {
			cli.PrintWarning("%s is a built-in page, --watch has no file to follow", page.Slug)
		} else {
			g.Go(func() error {
				err := files.WatchPage(gCtx, path, log.Logger, func(page *models.Page, err error) {
					p.Send(tui.PageReloadedMsg{Page: page, Err: err})
				})
				if err != nil {
					// the editor keeps running without live reload
					log.Logger.Error().Err(err).Str("path", path).Msg("watcher stopped")
					p.Send(tui.StatusMsg(fmt.Sprintf("× Watch failed: %v", err)))
				}
				return nil
			})
		}
	}

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	})

	return g.Wait()
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Blockpad project",
	Long:  `Creates the .blockpad folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Blockpad project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .blockpad folder structure")
		fmt.Println("\nRun 'blockpad' to open the editor.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Blockpad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Blockpad version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	rootCmd.Flags().StringVarP(&pageRef, "page", "p", "", "Page slug or file to open")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Reload the page when its file changes")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewPagesCommand())
	rootCmd.AddCommand(commands.NewCopyCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
