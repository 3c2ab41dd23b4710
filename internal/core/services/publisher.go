package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driving"
	"github.com/custodia-labs/wiki-push/internal/logger"
)

// Ensure Publisher implements the interface.
var _ driving.SitePublisher = (*Publisher)(nil)

// Publisher creates the pages of a tree in a site.
//
// A run has three phases: resolve the parent entry, create each page in
// scan order, then report the parent's browsable location. Pages are only
// ever created, never updated or deleted.
type Publisher struct {
	store    driven.SiteStore
	builder  driving.ContentBuilder
	observer driving.PublishObserver
	failFast bool
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithObserver sets the progress observer.
func WithObserver(observer driving.PublishObserver) PublisherOption {
	return func(p *Publisher) {
		p.observer = observer
	}
}

// WithFailFast stops the run at the first failing page.
// By default failures are collected and the remaining pages are still created.
func WithFailFast(failFast bool) PublisherOption {
	return func(p *Publisher) {
		p.failFast = failFast
	}
}

// NewPublisher creates a publisher writing to store.
func NewPublisher(store driven.SiteStore, builder driving.ContentBuilder, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		store:   store,
		builder: builder,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish creates every page in tree under the entry at parentPath.
// The returned result is non-nil whenever page creation started, even on error.
func (p *Publisher) Publish(
	ctx context.Context,
	tree *domain.PageTree,
	parentPath string,
) (*domain.PublishResult, error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: nil page tree", domain.ErrInvalidInput)
	}

	result := &domain.PublishResult{
		RunID:   uuid.NewString(),
		Skipped: tree.Skipped,
	}
	logger.Debug("run %s: publishing %d pages from %s", result.RunID, tree.Len(), tree.Dir)

	logger.Section("Resolve parent")
	parent, err := p.resolveParent(ctx, parentPath)
	if err != nil {
		return nil, err
	}
	result.Parent = parent

	logger.Section("Create pages")
	var failures []error
	for _, page := range tree.Pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		entry, err := p.createPage(ctx, page, parent)
		if err != nil {
			result.Failed = append(result.Failed, domain.PageOutcome{Page: page.Name, Err: err})
			if p.observer.OnFailure != nil {
				p.observer.OnFailure(page.Name, err)
			}
			logger.Warn("page %s failed: %v", page.Name, err)
			if p.failFast {
				return result, errors.Join(fmt.Errorf("%w: stopped at %s", domain.ErrPageCreation, page.Name), err)
			}
			failures = append(failures, err)
			continue
		}
		result.Created = append(result.Created, domain.PageOutcome{Page: page.Name, Entry: entry})
	}

	logger.Section("Report")
	result.Location = p.store.AlternateLink(parent)
	logger.Info("run %s: %d created, %d failed", result.RunID, len(result.Created), len(result.Failed))

	if len(failures) > 0 {
		summary := fmt.Errorf("%w: %d of %d pages failed", domain.ErrPageCreation, len(failures), result.Attempted())
		return result, errors.Join(append([]error{summary}, failures...)...)
	}
	return result, nil
}

// resolveParent looks up the parent entry. Trailing slashes are ignored and
// an empty path means the site root.
func (p *Publisher) resolveParent(ctx context.Context, parentPath string) (*domain.SiteEntry, error) {
	parentPath = strings.TrimRight(parentPath, "/")
	if parentPath == "" {
		logger.Debug("no parent page, publishing under the site root")
		return nil, nil
	}

	parent, err := p.store.ResolveByPath(ctx, parentPath)
	if err != nil {
		return nil, fmt.Errorf("resolve parent %s: %w", parentPath, err)
	}
	if parent == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrParentNotFound, parentPath)
	}

	logger.Debug("parent %s resolved to %s", parentPath, parent.ID)
	return parent, nil
}

// createPage builds one page's content and creates it.
func (p *Publisher) createPage(
	ctx context.Context,
	page domain.SourcePage,
	parent *domain.SiteEntry,
) (*domain.SiteEntry, error) {
	if p.observer.OnCreate != nil {
		p.observer.OnCreate(page.Name)
	}

	content, err := p.builder.Build(ctx, page)
	if err != nil {
		return nil, err
	}

	entry, err := p.store.CreatePage(ctx, domain.PageRequest{
		Kind:     domain.PageKindWebPage,
		Title:    content.Title,
		HTML:     content.HTML,
		PageName: page.Name,
		Parent:   parent,
	})
	if err != nil {
		return nil, &domain.PageError{
			Page: page.Name, Op: "create", Err: fmt.Errorf("%w: %w", domain.ErrPageCreation, err),
		}
	}

	logger.Debug("created %s at %s", page.Name, entry.Path)
	return entry, nil
}
