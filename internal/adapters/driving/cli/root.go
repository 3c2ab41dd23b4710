package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wiki-push/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
	"github.com/custodia-labs/wiki-push/internal/logger"
)

var version = "dev"

// Adapters injected by main.
var (
	sessionFactory driven.SessionFactory
	configLoader   func(path string) (driven.ConfigStore, error)
)

// configStore is loaded before every command runs.
var configStore driven.ConfigStore

// Flags shared by every command.
var (
	debugFlag       bool
	configPathFlag  string
	greedyLinksFlag bool
	processorsFlag  []string
)

var rootCmd = &cobra.Command{
	Use:   "wiki-push [flags] <pagesDir/>",
	Short: "Migrate a gollum wiki directory to Google Sites",
	Long: `Migrates every markdown page of a gollum wiki directory into a Google Site.

Each page is converted to HTML, with gollum [[text|ref]] and [[dir/file]]
links rewritten, and created as a web page under the parent page. Pages
whose names start with an underscore (_Sidebar, _Footer) are skipped.
Subdirectories are not migrated.`,
	Example: `  wiki-push --domain site --site mywiki --email me@example.com pages/
  wiki-push --domain example.com --site wiki --parent-page /docs --dry-run pages/`,
	Args:              exactArgs(1, "<pagesDir/>"),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runPublish,
}

func init() {
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return exitWith(ExitUsage, err)
	})

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&debugFlag, "debug", false, "print debug output to stderr")
	pf.StringVar(&configPathFlag, "config", "", "config file (default ~/.wiki-push/config.toml)")
	pf.BoolVar(&greedyLinksFlag, "greedy-links", false, "match gollum links greedily, one construct per line")
	pf.StringSliceVar(&processorsFlag, "processors", nil, "HTML post-processors to run, in order (default tableborder)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetSessionFactory sets the factory used to open remote sessions.
func SetSessionFactory(f driven.SessionFactory) {
	sessionFactory = f
}

// SetConfigLoader sets the function that loads the config file.
func SetConfigLoader(fn func(path string) (driven.ConfigStore, error)) {
	configLoader = fn
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd, err)
	}
	return ExitCode(err)
}

// exactArgs requires n positional arguments, reporting ExitArgs otherwise.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return exitWith(ExitArgs, fmt.Errorf("expected %s, got %d argument(s)\nUsage: %s", usage, len(args), cmd.UseLine()))
		}
		return nil
	}
}

// loadSettings enables debug logging and loads the config file.
func loadSettings(_ *cobra.Command, _ []string) error {
	logger.SetDebug(debugFlag)

	if configLoader == nil {
		configStore = memory.NewConfigStore()
		return nil
	}
	store, err := configLoader(configPathFlag)
	if err != nil {
		return exitWith(ExitUsage, err)
	}
	logger.Debug("config loaded from %s", store.Path())
	configStore = store
	return nil
}
