package driven

import (
	"context"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
)

// SiteStore is the remote page store migrated pages are created in.
// Authentication, transport and protocol framing are the implementation's concern.
type SiteStore interface {
	// ResolveByPath returns the entry at path (e.g. "/docs").
	// Returns nil and no error when nothing exists at that path.
	ResolveByPath(ctx context.Context, path string) (*domain.SiteEntry, error)

	// CreatePage creates a new page entry and returns its handle.
	// Creation never updates an existing entry.
	CreatePage(ctx context.Context, req domain.PageRequest) (*domain.SiteEntry, error)

	// AlternateLink returns the browsable location of entry, or the site root
	// when entry is nil. Returns empty string when none is exposed.
	AlternateLink(entry *domain.SiteEntry) string
}
