// Package auth opens authenticated sessions against a Google site.
//
// Credentials come from configuration or flags and are turned into an
// oauth2.TokenSource. Nothing is written back: tokens refreshed during a run
// are kept in memory only.
package auth
