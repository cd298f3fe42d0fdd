// Package tree renders a directory hierarchy as an indented ASCII tree,
// filtering entries through the root ignore rules.
package tree

// Connector glyphs forming the tree layout. The chosen bytes are the
// output contract, not a presentation choice.
const (
	branchConnector = "├── " // entry with siblings below it
	cornerConnector = "└── " // last entry at its depth
	continueSegment = "│   " // ancestor level with siblings still to come
	blankSegment    = "    " // ancestor level that was a last entry
)

// IgnoredItem holds information about an entry excluded by ignore rules.
type IgnoredItem struct {
	Path  string // relative to the traversal root
	IsDir bool
}

// Stats summarizes one render pass.
type Stats struct {
	Directories int // directories rendered (root excluded)
	Files       int // non-directory entries rendered
	Ignored     []IgnoredItem
}
