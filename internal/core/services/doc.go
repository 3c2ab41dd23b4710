// Package services implements the migration use cases: scanning a wiki
// directory, building page content and publishing the pages to a site.
//
// Services depend only on ports; adapters are injected by the CLI.
package services
