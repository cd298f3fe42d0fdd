// Package summary handles display of render results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/dir-tree/internal/tree"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults shows the end results of a render pass
func DisplayResults(
	logger Logger,
	stats tree.Stats,
	duration time.Duration,
	quiet bool,
) {
	if !quiet {
		logger.Info("Rendered %d directories and %d files.", stats.Directories, stats.Files)
		logger.Info("Render complete in %v.", duration.Round(time.Millisecond))
	}
}

// DisplayIgnoredItems formats and prints the entries the matcher excluded
func DisplayIgnoredItems(
	logger Logger,
	ignoredItems []tree.IgnoredItem,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Ignored Items (%d) ---", len(ignoredItems))
	if len(ignoredItems) > 0 {
		// Sort for consistent output
		sort.Slice(ignoredItems, func(i, j int) bool {
			return ignoredItems[i].Path < ignoredItems[j].Path
		})
		for _, item := range ignoredItems {
			typeStr := "FILE"
			if item.IsDir {
				typeStr = "DIR " // Add space for alignment
			}
			fmt.Fprintf(output, "Ignored %s: %s\n", typeStr, item.Path)
		}
	} else {
		infoLog("No items were ignored.")
	}
	infoLog("--- End Ignored Items ---")
}
