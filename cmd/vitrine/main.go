package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmelani/vitrine/internal/catalog"
	"github.com/dmelani/vitrine/internal/config"
	"github.com/dmelani/vitrine/internal/prefs"
	"github.com/dmelani/vitrine/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("vitrine %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := config.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = config.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting vitrine", "version", Version)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("vitrine needs an interactive terminal")
	}

	// Load the catalog: configured file first, embedded otherwise
	projects, err := catalog.LoadEmbedded()
	if cfg.Catalog.File != "" {
		projects, err = catalog.LoadFile(cfg.Catalog.File)
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	source := catalog.New(projects, logger)
	logger.Info("catalog loaded", "projects", source.Len())

	// Open the preference store; a broken store degrades to config defaults
	store, err := prefs.Open(config.DataDir())
	if err != nil {
		logger.Warn("preference store unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	model := tui.NewModel(cfg, source, store, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
