// Package tableborder gives rendered tables a visible border.
//
// Markdown renderers emit bare <table> tags which most hosted page editors
// display without any cell borders. This processor replaces every bare
// opening tag with one carrying a thin grey collapsed border.
package tableborder

import (
	"context"
	"strings"

	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
)

// Name is the processor's registry name.
const Name = "tableborder"

// DefaultTag is the bordered opening tag: 1px solid #888, collapsed borders, no cell spacing.
const DefaultTag = `<table border="1" bordercolor="#888" cellspacing="0" ` +
	`style="border-collapse:collapse;border-color:rgb(136,136,136);border-width:1px">`

// bareTag is the only form matched. Tags that already carry attributes are left alone.
const bareTag = "<table>"

// Ensure Processor implements the interface.
var _ driven.HTMLProcessor = (*Processor)(nil)

// Processor replaces bare <table> tags.
type Processor struct {
	tag string
}

// Option configures a Processor.
type Option func(*Processor)

// WithTag sets the replacement opening tag.
func WithTag(tag string) Option {
	return func(p *Processor) {
		p.tag = tag
	}
}

// New creates a table border processor.
func New(opts ...Option) *Processor {
	p := &Processor{tag: DefaultTag}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process replaces the bare opening tags.
func (p *Processor) Process(_ context.Context, html string) (string, error) {
	return AddTableBorders(html, p.tag), nil
}

// AddTableBorders replaces every bare <table> opening tag in html with tag.
// All other markup, including cell contents, is preserved.
func AddTableBorders(html, tag string) string {
	return strings.ReplaceAll(html, bareTag, tag)
}
