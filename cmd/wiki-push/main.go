// Command wiki-push migrates a gollum wiki directory into Google Sites pages.
package main

import (
	"os"

	"github.com/custodia-labs/wiki-push/internal/adapters/driven/auth"
	"github.com/custodia-labs/wiki-push/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wiki-push/internal/adapters/driving/cli"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetSessionFactory(auth.NewSessionFactory())
	cli.SetConfigLoader(func(path string) (driven.ConfigStore, error) {
		return file.NewConfigStore(path)
	})

	os.Exit(cli.Execute())
}
