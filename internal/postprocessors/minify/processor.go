// Package minify shrinks rendered HTML before upload.
//
// Pages are uploaded as XHTML inside an Atom entry, so the fragment is
// minified with the XML minifier: end tags and self-closing void elements
// survive and the result stays well-formed.
package minify

import (
	"context"
	"fmt"

	tdminify "github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/xml"

	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
)

// Name is the processor's registry name.
const Name = "minify"

const mediaType = "text/xml"

// Ensure Processor implements the interface.
var _ driven.HTMLProcessor = (*Processor)(nil)

// Processor minifies XHTML fragments.
type Processor struct {
	keepWhitespace bool
	m              *tdminify.M
}

// Option configures a Processor.
type Option func(*Processor)

// WithKeepWhitespace controls whether whitespace between elements is preserved.
// Preserving it keeps <pre> blocks intact.
func WithKeepWhitespace(keep bool) Option {
	return func(p *Processor) {
		p.keepWhitespace = keep
	}
}

// New creates a minify processor. Whitespace is kept by default.
func New(opts ...Option) *Processor {
	p := &Processor{keepWhitespace: true}
	for _, opt := range opts {
		opt(p)
	}

	p.m = tdminify.New()
	p.m.Add(mediaType, &xml.Minifier{KeepWhitespace: p.keepWhitespace})
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process minifies html.
func (p *Processor) Process(_ context.Context, html string) (string, error) {
	out, err := p.m.String(mediaType, html)
	if err != nil {
		return "", fmt.Errorf("minify: %w", err)
	}
	return out, nil
}
