package tree

import (
	"io"
	"os"

	"github.com/bethropolis/dir-tree/internal/utils"
)

// RenderOptions configures the behavior of the Render function
type RenderOptions struct {
	Output io.Writer
	Logger utils.Logger
}

// defaultOptions returns the default render options
func defaultOptions() RenderOptions {
	return RenderOptions{
		Output: os.Stdout,
		Logger: &utils.NoopLogger{},
	}
}

// Option is a functional option for configuring RenderOptions
type Option func(*RenderOptions)

// WithOutput sets the writer the tree is rendered to
func WithOutput(w io.Writer) Option {
	return func(opts *RenderOptions) {
		if w != nil {
			opts.Output = w
		}
	}
}

// WithLogger sets a custom logger for the renderer
func WithLogger(logger utils.Logger) Option {
	return func(opts *RenderOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}
