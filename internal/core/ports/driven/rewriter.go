package driven

// LinkRewriter rewrites wiki-specific link syntax into standard markdown.
// Implementations must be pure: the same input always yields the same output.
type LinkRewriter interface {
	// Rewrite converts the links in markdown, scoping implicit resources under pageName.
	Rewrite(pageName, markdown string) string
}
