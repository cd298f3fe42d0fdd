// Package ignore loads the .gitignore file at the traversal root and
// answers whether a root-relative path is excluded from rendering.
//
// Only the single ignore file directly inside the root directory is
// consulted. A missing file disables filtering entirely; pattern
// semantics (globs, **, anchoring, trailing-slash directory rules,
// ! negation, last-match precedence) are delegated to the gitignore
// library. The package uses the functional options pattern for
// configuration.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/dir-tree/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// IgnoreFileName is the fixed name of the ignore file looked up in the root.
const IgnoreFileName = ".gitignore"

// Load reads the ignore file inside rootDir and compiles it into a Matcher.
//
// A missing ignore file is not an error: Load returns (nil, nil) and the
// caller renders unfiltered. Any other read failure is propagated.
func Load(rootDir string, opts ...Option) (*Matcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	m := &Matcher{
		rootDir: absRootDir,
		logger:  &utils.NoopLogger{},
	}

	// Apply functional options
	for _, opt := range opts {
		opt(m)
	}

	ignorePath := filepath.Join(absRootDir, IgnoreFileName)
	data, err := os.ReadFile(ignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Debug("ignore.Load: no %s in '%s', filtering disabled", IgnoreFileName, absRootDir)
			return nil, nil
		}
		return nil, fmt.Errorf("ignore: failed to read '%s': %w", ignorePath, err)
	}

	// Keep raw pattern lines in file order; the library owns precedence.
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}

	m.engine = gitignore.New(strings.NewReader(strings.Join(m.patterns, "\n")), absRootDir, nil)
	m.logger.Debug("ignore.Load: compiled %d patterns from '%s'", len(m.patterns), ignorePath)

	return m, nil
}
