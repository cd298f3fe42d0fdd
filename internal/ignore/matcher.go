package ignore

import (
	"path/filepath"

	"github.com/bethropolis/dir-tree/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher determines whether a path relative to the traversal root is
// excluded by the root ignore file. Immutable once built by Load; a nil
// Matcher matches nothing.
type Matcher struct {
	// The core gitignore object handling the compiled pattern set
	engine gitignore.GitIgnore

	rootDir  string
	patterns []string
	logger   utils.Logger
}

// Matches reports whether relativePath is excluded by the ignore rules.
// relativePath must be relative to the traversal root, never absolute.
func (m *Matcher) Matches(relativePath string, isDir bool) bool {
	if m == nil {
		return false
	}

	// Never ignore the root itself
	if relativePath == "" || relativePath == "." {
		return false
	}

	unixPath := filepath.ToSlash(relativePath) // Ensure forward slashes

	m.logger.Debug("ignore.Matches: Checking path: %q (isDir: %v)", unixPath, isDir)

	var match gitignore.Match
	// Defensive wrapper for library calls
	func() {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("PANIC recovered in gitignore library for path %q: %v", relativePath, r)
				// Cannot determine a verdict; default to not ignoring.
				match = nil
			}
		}()
		match = m.engine.Relative(unixPath, isDir)
	}()

	if match == nil {
		return false
	}
	if match.Ignore() {
		m.logger.Debug("ignore.Matches: Path %q ignored by pattern %q", unixPath, match)
		return true
	}
	// Last matching pattern was a negation, so the path stays included.
	m.logger.Debug("ignore.Matches: Path %q explicitly included by negation rule", unixPath)
	return false
}

// PatternCount reports how many pattern lines survived comment/blank
// filtering when the matcher was loaded.
func (m *Matcher) PatternCount() int {
	if m == nil {
		return 0
	}
	return len(m.patterns)
}

// RootDir returns the absolute traversal root the matcher was loaded for.
func (m *Matcher) RootDir() string {
	if m == nil {
		return ""
	}
	return m.rootDir
}
