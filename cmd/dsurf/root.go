package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vidyasagar/dsurf/internal/nav"
	"github.com/vidyasagar/dsurf/internal/shell"
	"github.com/vidyasagar/dsurf/internal/storage"
	"github.com/vidyasagar/dsurf/internal/theme"
)

var (
	version = "0.1.0"

	themeName string

	rootCmd = &cobra.Command{
		Use:   "dsurf",
		Short: "surf your directory history",
		Long: `dsurf - a directory history navigator for your shell

dsurf records every directory you visit into a browser-style history:
step back and forward, jump to any entry, or pick one interactively.
Stepping back and then cd'ing somewhere new abandons the forward branch,
exactly like browser history.

Install the shell hook once:
  eval "$(dsurf init bash)"    # or zsh; fish uses: dsurf init fish | source

Then:
  dp / dn        back / forward in history
  dg 3, dg -2    jump to entry 3, or two entries back
  dh             show the history with the current entry marked
  db             interactive picker
  dj name        jump to a named mark`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme (default, gruvbox, catppuccin, nord, dracula, solarized, tokyonight)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(gotoCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(unmarkCmd)
	rootCmd.AddCommand(marksCmd)
	rootCmd.AddCommand(jumpCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(themesCmd)
}

// Execute runs the CLI. Called by main.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// env wires the per-invocation session: config, stores and the navigation
// controller. Commands build it on demand and close it when done.
type env struct {
	cfg    *storage.Config
	docs   *storage.DocumentStore
	db     *storage.DB // nil when the database could not be opened
	visits *storage.VisitStore
	marks  *storage.MarkStore
	ctrl   *nav.Controller
	logger *log.Logger
}

func newEnv() (*env, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "dsurf",
	})
	if os.Getenv("DSURF_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := storage.LoadConfig()
	if err != nil {
		// A broken config file should not brick navigation.
		logger.Warn("could not load config, using defaults", "err", err)
		def := storage.DefaultConfig()
		cfg = &def
	}

	applyTheme(cfg, logger)

	historyFile, err := cfg.ResolveHistoryFile()
	if err != nil {
		return nil, fmt.Errorf("resolving history file: %w", err)
	}
	docs := storage.NewDocumentStoreAt(historyFile)

	e := &env{
		cfg:    cfg,
		docs:   docs,
		logger: logger,
	}

	dataDir, err := cfg.ResolveDataDir()
	if err == nil {
		if db, dbErr := storage.OpenDB(dataDir); dbErr != nil {
			logger.Warn("visit database unavailable", "err", dbErr)
		} else {
			e.db = db
			e.visits = storage.NewVisitStore(db)
			e.marks = storage.NewMarkStore(db)
		}
	}

	reloc := &shell.EmitRelocator{Out: os.Stdout}
	e.ctrl = nav.NewController(docs, reloc, e.visits, logger)
	return e, nil
}

func (e *env) Close() {
	if e.db != nil {
		e.db.Close()
	}
}

func applyTheme(cfg *storage.Config, logger *log.Logger) {
	name := themeName
	if name == "" {
		name = cfg.Theme
	}
	if name == "" {
		return
	}
	if !theme.Set(name) {
		logger.Warn("unknown theme, keeping default", "theme", name)
	}
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range theme.List() {
			fmt.Println(name)
		}
		return nil
	},
}
