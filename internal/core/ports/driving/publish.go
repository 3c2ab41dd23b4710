package driving

import (
	"context"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
)

// PageScanner discovers the pages to publish in a wiki directory.
type PageScanner interface {
	// Scan lists the publishable pages in dir, sorted by file name.
	// Internal pages are excluded and reported in PageTree.Skipped.
	Scan(dir string) (*domain.PageTree, error)
}

// ContentBuilder turns a source page into its final HTML.
type ContentBuilder interface {
	// Build reads, rewrites, renders and post-processes a page.
	Build(ctx context.Context, page domain.SourcePage) (domain.RenderedContent, error)
}

// SitePublisher creates the pages of a tree in the remote site.
type SitePublisher interface {
	// Publish creates every page of tree as a child of the entry at parentPath.
	// An empty parentPath publishes under the site root.
	Publish(ctx context.Context, tree *domain.PageTree, parentPath string) (*domain.PublishResult, error)
}

// PublishObserver receives progress notifications during a run.
// Any field may be nil.
type PublishObserver struct {
	// OnSkip is called for each internal page excluded by the scanner.
	OnSkip func(name string)

	// OnCreate is called before a page is created.
	OnCreate func(name string)

	// OnFailure is called when a page fails.
	OnFailure func(name string, err error)
}
