// Package rewriters provides implementations of the LinkRewriter interface.
// Each rewriter converts one wiki dialect's link syntax into standard markdown
// before the page is rendered.
package rewriters
