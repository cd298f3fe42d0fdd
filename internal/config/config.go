package config

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Output settings
	OutputFile  string
	ShowIgnored bool

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a new Config with values from command-line flags
func New() *Config {
	c, err := NewFromArgs(os.Args[1:])
	if err != nil {
		// The flag set already printed the usage message
		os.Exit(2)
	}
	return c
}

// NewFromArgs parses the given argument list into a Config. Split out
// from New so flag parsing stays testable.
func NewFromArgs(args []string) (*Config, error) {
	c := &Config{
		Version: "1.0.0", // Update this when releasing new versions
	}

	fs := flag.NewFlagSet("dir-tree", flag.ContinueOnError)
	fs.StringVar(&c.RootDir, "dir", ".", "The root directory to render")
	fs.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	fs.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	fs.StringVar(&c.LogLevel, "log-level", "INFO", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	fs.StringVar(&c.OutputFile, "output", "", "Write the tree to a file instead of stdout")
	fs.BoolVar(&c.ShowIgnored, "show-ignored", false, "Show a list of ignored files/directories at the end")
	fs.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""

	return c, nil
}
