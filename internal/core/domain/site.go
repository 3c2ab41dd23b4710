package domain

// PageKind is the remote entry type requested on creation.
type PageKind string

// PageKindWebPage is the only kind created by a migration.
const PageKindWebPage PageKind = "webpage"

// SiteEntry is a handle to an existing entry in the remote site.
type SiteEntry struct {
	// ID is the remote identifier (the Atom entry id for Google Sites).
	ID string

	// Path is the entry's path within the site, e.g. "/docs/intro".
	Path string

	// Title is the entry's display title.
	Title string

	// PageName is the entry's slug.
	PageName string

	// SelfLink is the API location of the entry, used to reference it as a parent.
	SelfLink string

	// AlternateLink is the browsable location, empty when the site does not expose one.
	AlternateLink string
}

// PageRequest describes a page to create.
type PageRequest struct {
	// Kind is always PageKindWebPage for migrated pages.
	Kind PageKind

	// Title is the display title.
	Title string

	// HTML is the page body.
	HTML string

	// PageName is the stable page identifier.
	PageName string

	// Parent is the entry to create under. Nil means the site root.
	Parent *SiteEntry
}
