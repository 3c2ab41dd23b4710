// Package markdown renders markdown into XHTML fragments with goldmark.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.MarkupRenderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*options)

type options struct {
	extensions     []string
	highlightStyle string
}

// WithExtensions enables extra goldmark extensions by name.
// Unknown names are ignored. Tables are always enabled.
func WithExtensions(names ...string) Option {
	return func(o *options) {
		o.extensions = append(o.extensions, names...)
	}
}

// WithHighlightStyle enables code highlighting using the named chroma style.
// Colours are emitted as inline styles so pages need no stylesheet.
func WithHighlightStyle(style string) Option {
	return func(o *options) {
		o.highlightStyle = strings.TrimSpace(style)
	}
}

var extensionRegistry = map[string]goldmark.Extender{
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"meta":          meta.Meta,
}

var extensionAliases = map[string]string{
	"tables":      "table",
	"autolink":    "linkify",
	"frontmatter": "meta",
}

// Renderer transforms markdown sources into XHTML fragments.
// It is stateless after construction and safe to reuse.
type Renderer struct {
	md goldmark.Markdown
}

// New constructs a renderer with the table extension, raw HTML passthrough
// and XHTML output.
func New(opts ...Option) *Renderer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	md := goldmark.New(
		goldmark.WithExtensions(collectExtensions(o)...),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			html.WithXHTML(),
		),
	)
	return &Renderer{md: md}
}

// Render converts markdown into an HTML fragment.
func (r *Renderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

// ExtensionNames returns the names accepted by WithExtensions.
func ExtensionNames() []string {
	names := make([]string, 0, len(extensionRegistry))
	for name := range extensionRegistry {
		names = append(names, name)
	}
	return names
}

// IsExtension reports whether name (or one of its aliases) is a known extension.
func IsExtension(name string) bool {
	_, ok := extensionRegistry[canonicalName(name)]
	return ok
}

func canonicalName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := extensionAliases[key]; ok {
		return alias
	}
	return key
}

func collectExtensions(o options) []goldmark.Extender {
	extenders := []goldmark.Extender{extension.Table}
	seen := map[string]struct{}{"table": {}}

	for _, name := range o.extensions {
		key := canonicalName(name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	if o.highlightStyle != "" {
		extenders = append(extenders, highlighting.NewHighlighting(
			highlighting.WithStyle(o.highlightStyle),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(false),
			),
		))
	}

	return extenders
}
