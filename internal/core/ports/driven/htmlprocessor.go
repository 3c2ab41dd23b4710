package driven

import "context"

// HTMLProcessor applies one presentation-only transformation to rendered HTML.
// Processors are chained in an HTMLPipeline (e.g., table borders, minification).
type HTMLProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process returns the transformed HTML.
	Process(ctx context.Context, html string) (string, error)
}

// HTMLPipeline chains multiple HTMLProcessors.
type HTMLPipeline interface {
	// Process runs the HTML through all processors in order.
	Process(ctx context.Context, html string) (string, error)
}
