package cli

import (
	"fmt"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
	"github.com/custodia-labs/wiki-push/internal/core/services"
	"github.com/custodia-labs/wiki-push/internal/postprocessors"
	"github.com/custodia-labs/wiki-push/internal/renderers/markdown"
	"github.com/custodia-labs/wiki-push/internal/rewriters/gollum"
)

// newContentPipeline assembles the link rewriter, renderer and HTML pipeline.
func newContentPipeline(opts contentOptions) (*services.ContentPipeline, *gollum.Rewriter, error) {
	mode := gollum.Narrow
	if opts.GreedyLinks {
		mode = gollum.Greedy
	}
	rewriter := gollum.New(mode)

	renderer := markdown.New(
		markdown.WithExtensions(opts.Extensions...),
		markdown.WithHighlightStyle(opts.HighlightStyle),
	)

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	pipeline, err := registry.BuildPipeline(opts.Processors, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w (available: %v)", domain.ErrInvalidInput, err, registry.Names())
	}

	return services.NewContentPipeline(rewriter, renderer, pipeline), rewriter, nil
}
