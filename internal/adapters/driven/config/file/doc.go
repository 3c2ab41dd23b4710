// Package file provides the TOML configuration file adapter.
//
// The file is optional and read-only: a missing file yields an empty
// configuration and nothing is ever written back.
package file
