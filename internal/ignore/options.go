package ignore

import "github.com/bethropolis/dir-tree/internal/utils"

// Option functions for configuration
type Option func(*Matcher)

// WithLogger sets the logger used for match diagnostics
func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}
