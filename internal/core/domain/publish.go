package domain

// PageOutcome records what happened to a single page.
type PageOutcome struct {
	// Page is the page name.
	Page string

	// Entry is the created remote entry, nil on failure.
	Entry *SiteEntry

	// Err is the failure, nil on success.
	Err error
}

// PublishResult is the outcome of one migration run.
type PublishResult struct {
	// RunID identifies the run in logs.
	RunID string

	// Parent is the resolved parent entry, nil for the site root.
	Parent *SiteEntry

	// Location is the browsable location of the parent, empty if none.
	Location string

	// Created lists pages created successfully, in creation order.
	Created []PageOutcome

	// Failed lists pages that could not be read, rendered or created.
	Failed []PageOutcome

	// Skipped lists internal pages excluded by the scanner.
	Skipped []string
}

// Attempted returns the number of pages the run tried to create.
func (r *PublishResult) Attempted() int {
	return len(r.Created) + len(r.Failed)
}

// HasFailures reports whether any page failed.
func (r *PublishResult) HasFailures() bool {
	return len(r.Failed) > 0
}

// FailedPages returns the names of the failed pages, in creation order.
// Operators use it to retry only the failed subset.
func (r *PublishResult) FailedPages() []string {
	names := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		names = append(names, f.Page)
	}
	return names
}
