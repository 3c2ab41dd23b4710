package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wiki-push/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
)

const testSiteRoot = "https://sites.google.com/site/wiki/"

// mockSessionFactory implements driven.SessionFactory for testing.
type mockSessionFactory struct {
	store  *memory.SiteStore
	err    error
	opened []driven.SessionConfig
}

func (m *mockSessionFactory) Open(_ context.Context, cfg driven.SessionConfig) (driven.SiteStore, error) {
	m.opened = append(m.opened, cfg)
	if m.err != nil {
		return nil, m.err
	}
	return m.store, nil
}

// testEnv replaces the injected adapters for one test.
type testEnv struct {
	factory *mockSessionFactory
	config  *memory.ConfigStore
}

func setupCLITest(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewSiteStore(testSiteRoot)
	store.AddEntry("/docs", "Docs")

	env := &testEnv{
		factory: &mockSessionFactory{store: store},
		config:  memory.NewConfigStore(),
	}

	oldFactory, oldLoader := sessionFactory, configLoader
	sessionFactory = env.factory
	configLoader = func(string) (driven.ConfigStore, error) { return env.config, nil }
	t.Cleanup(func() {
		sessionFactory, configLoader = oldFactory, oldLoader
	})
	return env
}

// resetFlags restores every flag to its default so tests do not leak state.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	for _, cmd := range []*cobra.Command{rootCmd, previewCmd, versionCmd} {
		cmd.Flags().VisitAll(reset)
		cmd.PersistentFlags().VisitAll(reset)
	}
}

// execute runs the root command with args and returns its output and exit status.
func execute(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	resetFlags()

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, err)
	}
	return out.String(), errOut.String(), ExitCode(err)
}

// wikiDir creates a small wiki: two pages and an internal sidebar.
func wikiDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		"Intro.md":           "# Intro",
		"Getting-started.md": "See [[the intro|Intro]]\n\n[[assets/shot.png]]\n",
		"_Sidebar.md":        "nav",
	}
	for name, body := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	return dir
}
