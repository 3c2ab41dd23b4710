// Package domain defines the core entities for wiki-push.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourcePage: A markdown file discovered in the wiki directory
//   - RenderedContent: The title and final HTML body of a page
//   - PageTree: The ordered set of pages to publish under one parent
//   - SiteEntry: A handle to an existing page in the remote site
//   - PublishResult: The outcome of one migration run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
