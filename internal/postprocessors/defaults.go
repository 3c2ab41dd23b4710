package postprocessors

import (
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
	"github.com/custodia-labs/wiki-push/internal/postprocessors/minify"
	"github.com/custodia-labs/wiki-push/internal/postprocessors/tableborder"
)

// DefaultNames is the processor chain used when none is configured.
var DefaultNames = []string{tableborder.Name}

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register(tableborder.Name, buildTableBorder)
	r.Register(minify.Name, buildMinify)
}

// buildTableBorder creates a table border processor.
// Supported config keys:
//   - tag (string): Replacement opening tag (default: the grey 1px border)
func buildTableBorder(cfg map[string]any) (driven.HTMLProcessor, error) {
	var opts []tableborder.Option

	if tag := getStringFromConfig(cfg, "tag"); tag != "" {
		opts = append(opts, tableborder.WithTag(tag))
	}

	return tableborder.New(opts...), nil
}

// buildMinify creates a minify processor.
// Supported config keys:
//   - keep_whitespace (bool): Preserve whitespace between elements (default: true)
func buildMinify(cfg map[string]any) (driven.HTMLProcessor, error) {
	var opts []minify.Option

	if keep, ok := cfg["keep_whitespace"].(bool); ok {
		opts = append(opts, minify.WithKeepWhitespace(keep))
	}

	return minify.New(opts...), nil
}

// getStringFromConfig safely extracts a string from generic config map.
func getStringFromConfig(cfg map[string]any, key string) string {
	val, ok := cfg[key]
	if !ok {
		return ""
	}
	s, _ := val.(string)
	return s
}
