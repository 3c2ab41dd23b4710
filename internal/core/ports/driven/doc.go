// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - LinkRewriter: Converts gollum link syntax into standard markdown
//   - MarkupRenderer: Converts markdown into an HTML fragment
//   - HTMLPipeline: Applies presentation-only HTML processors in order
//   - SiteStore: The remote page store pages are created in
//   - SessionFactory: Establishes an authenticated SiteStore
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, renderer or postprocessor package
package driven
