// Package postprocessors provides presentation-only HTML processing implementations.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.HTMLPipeline = (*Pipeline)(nil)

// Pipeline chains multiple HTMLProcessors and runs them in order.
type Pipeline struct {
	processors []driven.HTMLProcessor
}

// NewPipeline creates a new processing pipeline with the given processors.
// Processors are executed in the order provided.
func NewPipeline(processors ...driven.HTMLProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Process runs the HTML through all processors in order.
// Each processor receives the previous processor's output.
func (p *Pipeline) Process(ctx context.Context, html string) (string, error) {
	for _, processor := range p.processors {
		var err error
		html, err = processor.Process(ctx, html)
		if err != nil {
			return "", fmt.Errorf("processor %s: %w", processor.Name(), err)
		}
	}

	return html, nil
}

// Add appends a processor to the pipeline.
func (p *Pipeline) Add(processor driven.HTMLProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of processors in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}

// Names returns the processor names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.processors))
	for _, processor := range p.processors {
		names = append(names, processor.Name())
	}
	return names
}
