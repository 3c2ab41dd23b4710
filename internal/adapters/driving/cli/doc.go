// Package cli implements the wiki-push command line.
//
// The root command migrates one directory of gollum pages:
//
//	wiki-push --domain example.com --site wiki --parent-page /docs pages/
//
// Adapters that reach outside the process (the session factory and the
// config file loader) are injected by main; everything else is assembled here.
package cli
