package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
	"github.com/custodia-labs/wiki-push/internal/postprocessors"
	"github.com/custodia-labs/wiki-push/internal/renderers/markdown"
)

// Config keys read from the TOML file.
const (
	keyDomain            = "site.domain"
	keySite              = "site.name"
	keyParentPage        = "site.parent_page"
	keyEmail             = "auth.email"
	keyAccessToken       = "auth.access_token"
	keyRefreshToken      = "auth.refresh_token"
	keyClientID          = "auth.client_id"
	keyClientSecret      = "auth.client_secret"
	keyTokenURL          = "auth.token_url"
	keyGreedyLinks       = "links.greedy"
	keyExtensions        = "render.extensions"
	keyHighlightStyle    = "render.highlight_style"
	keyProcessors        = "postprocess.processors"
	keyFailFast          = "publish.fail_fast"
	keyRequestsPerSecond = "ratelimit.requests_per_second"
	keyBurst             = "ratelimit.burst"
)

// contentOptions control how pages are converted.
type contentOptions struct {
	GreedyLinks    bool
	Extensions     []string
	HighlightStyle string
	Processors     []string
}

// resolveContentOptions merges the shared flags over the config file.
func resolveContentOptions(cmd *cobra.Command, cfg driven.ConfigStore) (contentOptions, error) {
	opts := contentOptions{
		GreedyLinks:    boolOption(cmd, "greedy-links", greedyLinksFlag, cfg, keyGreedyLinks),
		Extensions:     cfg.GetStringSlice(keyExtensions),
		HighlightStyle: cfg.GetString(keyHighlightStyle),
		Processors:     cfg.GetStringSlice(keyProcessors),
	}
	if cmd.Flags().Changed("processors") {
		opts.Processors = processorsFlag
	}
	if len(opts.Processors) == 0 {
		opts.Processors = postprocessors.DefaultNames
	}

	for _, name := range opts.Extensions {
		if !markdown.IsExtension(name) {
			return opts, fmt.Errorf("unknown markdown extension %q (known: %s)",
				name, strings.Join(markdown.ExtensionNames(), ", "))
		}
	}
	return opts, nil
}

// stringOption returns the flag value when set, otherwise the config value.
func stringOption(flagValue string, cfg driven.ConfigStore, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.GetString(key)
}

// boolOption returns the flag value when given on the command line, otherwise the config value.
func boolOption(cmd *cobra.Command, name string, flagValue bool, cfg driven.ConfigStore, key string) bool {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return cfg.GetBool(key)
}
