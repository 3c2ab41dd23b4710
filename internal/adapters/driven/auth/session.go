package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/option"

	"github.com/custodia-labs/wiki-push/internal/adapters/driven/sites"
	"github.com/custodia-labs/wiki-push/internal/core/domain"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
	"github.com/custodia-labs/wiki-push/internal/logger"
)

// Ensure SessionFactory implements the interface.
var _ driven.SessionFactory = (*SessionFactory)(nil)

// SessionFactory opens sessions against the Google Sites content feed.
type SessionFactory struct {
	feedURL    string
	siteURL    string
	clientOpts []option.ClientOption
}

// FactoryOption configures a SessionFactory.
type FactoryOption func(*SessionFactory)

// WithFeedURL overrides the content feed base URL.
func WithFeedURL(url string) FactoryOption {
	return func(f *SessionFactory) {
		f.feedURL = url
	}
}

// WithSiteURL overrides the base of browsable page locations.
func WithSiteURL(url string) FactoryOption {
	return func(f *SessionFactory) {
		f.siteURL = url
	}
}

// WithClientOptions appends Google API client options to every session.
func WithClientOptions(opts ...option.ClientOption) FactoryOption {
	return func(f *SessionFactory) {
		f.clientOpts = append(f.clientOpts, opts...)
	}
}

// NewSessionFactory creates a session factory.
func NewSessionFactory(opts ...FactoryOption) *SessionFactory {
	f := &SessionFactory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Open authenticates and checks that the site's content feed is readable.
func (f *SessionFactory) Open(ctx context.Context, cfg driven.SessionConfig) (driven.SiteStore, error) {
	if cfg.Domain == "" || cfg.Site == "" {
		return nil, fmt.Errorf("%w: domain and site are required", domain.ErrSession)
	}

	ts, err := TokenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts := append([]option.ClientOption{option.WithTokenSource(ts)}, f.clientOpts...)
	client, err := sites.New(ctx, sites.Config{
		Domain:            cfg.Domain,
		Site:              cfg.Site,
		FeedURL:           f.feedURL,
		SiteURL:           f.siteURL,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSession, err)
	}

	logger.Debug("validating session against %s", client.FeedURL())
	if err := client.Ping(ctx); err != nil {
		if sites.IsUnauthorized(err) || sites.IsForbidden(err) {
			return nil, fmt.Errorf("%w: credentials rejected for %s/%s: %w", domain.ErrSession, cfg.Domain, cfg.Site, err)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSession, err)
	}

	logger.Info("session open for site %s/%s", cfg.Domain, cfg.Site)
	return client, nil
}
