package tree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/utils"
)

// renderer carries the per-run state threaded through the recursion.
// matcher and rootDir never change after Render sets them up; only the
// prefix differs between recursive calls.
type renderer struct {
	out     io.Writer
	logger  utils.Logger
	matcher *ignore.Matcher
	rootDir string
	stats   Stats
}

// Render draws the tree rooted at rootDir to the configured output.
//
// The first line is the root's base name, followed by one line per
// surviving entry in pre-order, sorted ascending by name within each
// directory. A nil matcher disables filtering. The first listing error
// aborts the walk; lines already written stay written.
func Render(rootDir string, matcher *ignore.Matcher, opts ...Option) (Stats, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return Stats{}, fmt.Errorf("tree: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	r := &renderer{
		out:     options.Output,
		logger:  options.Logger,
		matcher: matcher,
		rootDir: absRootDir,
	}

	// For the filesystem root the base name is the path itself.
	fmt.Fprintln(r.out, filepath.Base(absRootDir))

	if err := r.walk(absRootDir, ""); err != nil {
		return r.stats, err
	}
	return r.stats, nil
}

// walk lists one directory, filters it, prints the surviving entries and
// recurses into subdirectories with an extended prefix.
func (r *renderer) walk(currentDir string, prefix string) error {
	// os.ReadDir returns entries sorted ascending by filename, which is
	// the required deterministic output order.
	entries, err := os.ReadDir(currentDir)
	if err != nil {
		return fmt.Errorf("tree: failed to list directory '%s': %w", currentDir, err)
	}

	var kept []os.DirEntry
	for _, entry := range entries {
		if r.matcher == nil {
			kept = append(kept, entry)
			continue
		}
		relPath, err := filepath.Rel(r.rootDir, filepath.Join(currentDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("tree: failed to compute relative path for '%s': %w", entry.Name(), err)
		}
		if r.matcher.Matches(relPath, entry.IsDir()) {
			r.logger.Debug("tree.walk: Ignoring %q", relPath)
			r.stats.Ignored = append(r.stats.Ignored, IgnoredItem{Path: relPath, IsDir: entry.IsDir()})
			continue
		}
		kept = append(kept, entry)
	}

	for i, entry := range kept {
		isLast := i == len(kept)-1

		connector := branchConnector
		if isLast {
			connector = cornerConnector
		}
		fmt.Fprintln(r.out, prefix+connector+entry.Name())

		// Symlinks report IsDir false via ReadDir and render as leaves.
		if entry.IsDir() {
			r.stats.Directories++
			segment := continueSegment
			if isLast {
				segment = blankSegment
			}
			if err := r.walk(filepath.Join(currentDir, entry.Name()), prefix+segment); err != nil {
				return err
			}
		} else {
			r.stats.Files++
		}
	}

	return nil
}
