package gollum

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
)

// Ensure Rewriter implements the interface.
var _ driven.LinkRewriter = (*Rewriter)(nil)

// Matching selects how link captures are bounded.
type Matching int

const (
	// Narrow captures stop at brackets and pipes.
	Narrow Matching = iota

	// Greedy captures extend to the last "]]" on the line.
	Greedy
)

// String returns the matching mode name.
func (m Matching) String() string {
	if m == Greedy {
		return "greedy"
	}
	return "narrow"
}

// Pre-compiled patterns for both matching modes.
var (
	// Narrow captures never cross a line break, like the greedy ones.
	narrowReference = regexp.MustCompile(`\[\[([^\[\]|\n]*)\|([^\[\]\n]*)\]\]`)
	narrowResource  = regexp.MustCompile(`\[\[([^\[\]|\n]*)/([^\[\]|/\n]*)\]\]`)

	greedyReference = regexp.MustCompile(`\[\[(?P<text>.*)\|(?P<ref>.*)\]\]`)
	greedyResource  = regexp.MustCompile(`\[\[(?P<dir>.*)/(?P<file>.*)\]\]`)
)

// Rewriter converts gollum links into standard markdown links and images.
type Rewriter struct {
	reference *regexp.Regexp
	resource  *regexp.Regexp
}

// New creates a rewriter using the given matching mode.
func New(mode Matching) *Rewriter {
	if mode == Greedy {
		return &Rewriter{reference: greedyReference, resource: greedyResource}
	}
	return &Rewriter{reference: narrowReference, resource: narrowResource}
}

// Rewrite converts the gollum links in markdown.
// Text without gollum syntax is returned unchanged.
func (r *Rewriter) Rewrite(pageName, markdown string) string {
	if !strings.Contains(markdown, "[[") {
		return markdown
	}

	// Reference links must go first; see package doc.
	result := r.reference.ReplaceAllString(markdown, "[${1}](${2})")

	prefix := escapeReplacement(pageName)
	result = r.resource.ReplaceAllString(result, "![${2}]("+prefix+"/${2})")
	return result
}

// Tokens lists the gollum links in markdown in the order the rewrite passes
// would see them: all reference links first, then the resource links left over.
func (r *Rewriter) Tokens(markdown string) []domain.LinkToken {
	var tokens []domain.LinkToken

	for _, m := range r.reference.FindAllStringSubmatch(markdown, -1) {
		tokens = append(tokens, domain.LinkToken{
			Kind: domain.LinkKindReference,
			Raw:  m[0],
			Text: m[1],
			Ref:  m[2],
		})
	}

	remaining := r.reference.ReplaceAllString(markdown, "")
	for _, m := range r.resource.FindAllStringSubmatch(remaining, -1) {
		tokens = append(tokens, domain.LinkToken{
			Kind: domain.LinkKindResource,
			Raw:  m[0],
			Dir:  m[1],
			File: m[2],
		})
	}

	return tokens
}

// escapeReplacement makes a literal safe for use in a regexp replacement template.
func escapeReplacement(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
