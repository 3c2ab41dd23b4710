package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent migration failures.
// The CLI maps each of them to a distinct exit status.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRead indicates a source page could not be read or is not valid UTF-8.
	// Fatal for that page only.
	ErrRead = errors.New("read failed")

	// ErrScan indicates the source directory is missing or unreadable.
	// Fatal for the whole run.
	ErrScan = errors.New("scan failed")

	// ErrParentNotFound indicates the configured parent path does not resolve
	// to an existing entry. No pages are created.
	ErrParentNotFound = errors.New("parent page not found")

	// ErrSession indicates the remote session could not be established.
	ErrSession = errors.New("session failed")

	// ErrPageCreation indicates the remote site rejected a page.
	ErrPageCreation = errors.New("page creation failed")

	// ErrRender indicates markdown rendering or HTML post-processing failed.
	ErrRender = errors.New("render failed")
)

// PageError ties a failure to the page that caused it.
type PageError struct {
	// Page is the page name (file name without extension).
	Page string

	// Op names the step that failed ("read", "render", "create").
	Op string

	// Err is the underlying error, normally wrapping one of the sentinels above.
	Err error
}

// Error implements the error interface.
func (e *PageError) Error() string {
	return fmt.Sprintf("page %s: %s: %v", e.Page, e.Op, e.Err)
}

// Unwrap returns the underlying error so errors.Is matches the sentinels.
func (e *PageError) Unwrap() error {
	return e.Err
}
