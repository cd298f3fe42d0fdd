package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/logger"
	"github.com/bethropolis/dir-tree/internal/summary"
	"github.com/bethropolis/dir-tree/internal/tree"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer // exported so main can close an output file
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	// Set up output destination. A -version run exits before rendering,
	// so it must not create or truncate the output file.
	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" && !cfg.ShowVersion {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		// Note: file will be closed by main function
		output = file
	}

	// Set up logger. Verbose and quiet take precedence over -log-level.
	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	switch {
	case cfg.Verbose:
		log.WithLevel(logger.LevelDebug)
	case cfg.Quiet:
		log.WithLevel(logger.LevelWarn)
	case cfg.LogLevel != "":
		log.SetLevel(cfg.LogLevel)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: output,
	}
}

// Run executes the main application logic
func (a *App) Run() {
	startTime := time.Now()

	// Show version and exit if requested
	if a.cfg.ShowVersion {
		fmt.Printf("dir-tree version %s\n", a.cfg.Version)
		os.Exit(0)
	}

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	a.log.Debug("Color output: %v", a.cfg.UseColors)
	a.log.Debug("Directory: %s", a.cfg.RootDir)

	// --- Directory validation ---
	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		a.log.Error("Invalid root directory path '%s': %v", a.cfg.RootDir, err)
		os.Exit(1)
	}

	dirInfo, err := os.Stat(absRootDir)
	if err != nil {
		if os.IsNotExist(err) {
			a.log.Error("Root directory '%s' not found.", absRootDir)
		} else {
			a.log.Error("Could not access root directory '%s': %v", absRootDir, err)
		}
		os.Exit(1)
	}
	if !dirInfo.IsDir() {
		a.log.Error("Specified path '%s' is not a directory.", absRootDir)
		os.Exit(1)
	}

	// --- Load ignore rules ---
	matcher, err := ignore.Load(absRootDir, ignore.WithLogger(a.log))
	if err != nil {
		a.log.Error("Error loading ignore rules: %v", err)
		os.Exit(1)
	}
	if matcher != nil {
		a.log.Debug("Loaded %d ignore patterns from %s", matcher.PatternCount(), ignore.IgnoreFileName)
	} else {
		a.log.Debug("No %s found; rendering unfiltered", ignore.IgnoreFileName)
	}

	// --- Render the tree ---
	infoLog("Rendering directory: %s", absRootDir)

	stats, err := tree.Render(absRootDir, matcher,
		tree.WithOutput(a.Output),
		tree.WithLogger(a.log),
	)
	if err != nil {
		a.log.Error("Critical error during directory walk: %v", err)
		os.Exit(1)
	}

	// --- Show results summary ---
	summary.DisplayResults(a.log, stats, time.Since(startTime), a.cfg.Quiet)

	// --- Show Ignored Items (if requested) ---
	if a.cfg.ShowIgnored {
		summary.DisplayIgnoredItems(a.log, stats.Ignored, os.Stderr, a.cfg.Quiet)
	}
}
