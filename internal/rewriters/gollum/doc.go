// Package gollum rewrites gollum wiki link syntax into standard markdown.
//
// Two substitution passes run over the whole text, always in this order:
//
//  1. [[text|ref]]  becomes  [text](ref)
//  2. [[dir/file]]  becomes  ![file](pageName/file)
//
// The reference pass runs first so that [[text|dir/file]] is never taken
// for a resource link. Resource links are embedded as images scoped under
// the current page's name; the original directory is dropped.
//
// # Matching
//
// Narrow matching (the default) keeps each construct inside its own
// brackets, so two links on one line are rewritten independently.
// Greedy matching reproduces the historical patterns, where a capture
// extends to the last "]]" on the line.
package gollum
