package domain

import "strings"

// MarkdownExt is the file extension of wiki pages.
const MarkdownExt = ".md"

// InternalPrefix marks pages that are partial fragments (sidebars, footers,
// drafts) rather than standalone pages.
const InternalPrefix = "_"

// SourcePage is a markdown file discovered in the wiki directory.
type SourcePage struct {
	// Name is the page identifier: the file name without extension.
	// It doubles as the remote page slug.
	Name string

	// Path is the location of the markdown file on disk.
	Path string
}

// Title returns the display title: the page name with hyphens as word separators.
func (p SourcePage) Title() string {
	return TitleFromName(p.Name)
}

// IsInternal reports whether the page is an internal fragment that must not be published.
func (p SourcePage) IsInternal() bool {
	return IsInternalName(p.Name)
}

// TitleFromName converts a page identifier into its display title.
func TitleFromName(name string) string {
	return strings.ReplaceAll(name, "-", " ")
}

// IsInternalName reports whether a page identifier denotes an internal fragment.
func IsInternalName(name string) bool {
	return strings.HasPrefix(name, InternalPrefix)
}

// RenderedContent is the publishable form of a SourcePage.
type RenderedContent struct {
	// Title is the display title.
	Title string

	// HTML is the final HTML fragment after link rewriting, rendering and post-processing.
	HTML string
}

// PageTree is the ordered set of pages found in one directory.
// Pages are sorted by file name and no two pages share a name.
type PageTree struct {
	// Dir is the scanned directory.
	Dir string

	// Pages are the publishable pages in creation order.
	Pages []SourcePage

	// Skipped lists the internal page names that were excluded.
	Skipped []string
}

// Len returns the number of publishable pages.
func (t *PageTree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Pages)
}
