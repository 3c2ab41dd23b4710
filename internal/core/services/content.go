package services

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driving"
	"github.com/custodia-labs/wiki-push/internal/logger"
)

// Ensure ContentPipeline implements the interface.
var _ driving.ContentBuilder = (*ContentPipeline)(nil)

// ContentPipeline turns a markdown page into publishable HTML.
// Steps always run in the same order: rewrite links, render, post-process.
type ContentPipeline struct {
	rewriter driven.LinkRewriter
	renderer driven.MarkupRenderer
	pipeline driven.HTMLPipeline
}

// NewContentPipeline creates a content pipeline.
// The HTML pipeline is optional; nil skips post-processing.
func NewContentPipeline(
	rewriter driven.LinkRewriter,
	renderer driven.MarkupRenderer,
	pipeline driven.HTMLPipeline,
) *ContentPipeline {
	return &ContentPipeline{
		rewriter: rewriter,
		renderer: renderer,
		pipeline: pipeline,
	}
}

// Build reads the page from disk and converts it.
func (c *ContentPipeline) Build(ctx context.Context, page domain.SourcePage) (domain.RenderedContent, error) {
	raw, err := os.ReadFile(page.Path)
	if err != nil {
		return domain.RenderedContent{}, &domain.PageError{
			Page: page.Name, Op: "read", Err: fmt.Errorf("%w: %w", domain.ErrRead, err),
		}
	}
	return c.Convert(ctx, page.Name, raw)
}

// Convert runs the pipeline over raw markdown already in memory.
func (c *ContentPipeline) Convert(ctx context.Context, name string, raw []byte) (domain.RenderedContent, error) {
	text, err := decodeUTF8(raw)
	if err != nil {
		return domain.RenderedContent{}, &domain.PageError{Page: name, Op: "read", Err: err}
	}

	markdown := c.rewriter.Rewrite(name, text)

	html, err := c.renderer.Render([]byte(markdown))
	if err != nil {
		return domain.RenderedContent{}, &domain.PageError{
			Page: name, Op: "render", Err: fmt.Errorf("%w: %w", domain.ErrRender, err),
		}
	}

	out := string(html)
	if c.pipeline != nil {
		out, err = c.pipeline.Process(ctx, out)
		if err != nil {
			return domain.RenderedContent{}, &domain.PageError{
				Page: name, Op: "postprocess", Err: fmt.Errorf("%w: %w", domain.ErrRender, err),
			}
		}
	}

	logger.Debug("built %s: %d bytes markdown, %d bytes html", name, len(raw), len(out))

	return domain.RenderedContent{
		Title: domain.TitleFromName(name),
		HTML:  out,
	}, nil
}

// decodeUTF8 validates raw as UTF-8 and drops a leading byte order mark.
func decodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: not valid UTF-8", domain.ErrRead)
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrRead, err)
	}
	return string(out), nil
}
