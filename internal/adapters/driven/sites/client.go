package sites

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
	"github.com/custodia-labs/wiki-push/internal/logger"
)

// Endpoints and protocol constants.
const (
	DefaultFeedURL = "https://sites.google.com/feeds"
	DefaultSiteURL = "https://sites.google.com"

	// Scope is the OAuth2 scope granting access to the content feed.
	Scope = "https://sites.google.com/feeds/"

	gdataVersion = "1.4"
	userAgent    = "wiki-push"

	// ConsumerDomain is the domain name of sites not tied to a Workspace domain.
	ConsumerDomain = "site"
)

// maxErrorBody bounds how much of an error response is kept in messages.
const maxErrorBody = 512

// Ensure Client implements the interface.
var _ driven.SiteStore = (*Client)(nil)

// Config identifies the site and tunes the client.
type Config struct {
	// Domain is the Workspace domain, or "site" for consumer sites.
	Domain string

	// Site is the site name.
	Site string

	// FeedURL overrides DefaultFeedURL.
	FeedURL string

	// SiteURL overrides DefaultSiteURL, the base of browsable locations.
	SiteURL string

	// RequestsPerSecond and Burst pace requests. Zero selects the defaults.
	RequestsPerSecond float64
	Burst             int
}

// Client talks to one site's content feed.
type Client struct {
	http    *http.Client
	feed    string
	root    string
	limiter *RateLimiter
}

// New creates a client for the site in cfg.
// Authentication comes from opts, normally option.WithTokenSource.
func New(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Client, error) {
	if cfg.Domain == "" || cfg.Site == "" {
		return nil, fmt.Errorf("%w: domain and site are required", domain.ErrInvalidInput)
	}

	opts = append([]option.ClientOption{option.WithUserAgent(userAgent)}, opts...)
	hc, _, err := htransport.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	feedURL := strings.TrimSuffix(orDefault(cfg.FeedURL, DefaultFeedURL), "/")
	siteURL := strings.TrimSuffix(orDefault(cfg.SiteURL, DefaultSiteURL), "/")

	return &Client{
		http:    hc,
		feed:    fmt.Sprintf("%s/content/%s/%s", feedURL, url.PathEscape(cfg.Domain), url.PathEscape(cfg.Site)),
		root:    RootURL(siteURL, cfg.Domain, cfg.Site),
		limiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}, nil
}

// RootURL returns the browsable root of a site.
// Consumer sites live under /site/<name>/, Workspace sites under /a/<domain>/<name>/.
func RootURL(siteURL, domainName, site string) string {
	if domainName == ConsumerDomain {
		return fmt.Sprintf("%s/site/%s/", siteURL, site)
	}
	return fmt.Sprintf("%s/a/%s/%s/", siteURL, domainName, site)
}

// FeedURL returns the site's content feed location.
func (c *Client) FeedURL() string {
	return c.feed
}

// Ping requests a single feed entry to check the credentials and the site.
func (c *Client) Ping(ctx context.Context) error {
	var feed atomFeed
	if err := c.get(ctx, c.feed+"?max-results=1", &feed); err != nil {
		return fmt.Errorf("read content feed: %w", err)
	}
	return nil
}

// ResolveByPath returns the entry at path, or nil if the site has none there.
func (c *Client) ResolveByPath(ctx context.Context, path string) (*domain.SiteEntry, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var feed atomFeed
	err := c.get(ctx, c.feed+"?path="+url.QueryEscape(path), &feed)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("look up %s: %w", path, err)
	}
	if len(feed.Entries) == 0 {
		return nil, nil
	}

	entry := toSiteEntry(&feed.Entries[0], path)
	return entry, nil
}

// CreatePage posts a new entry to the content feed.
func (c *Client) CreatePage(ctx context.Context, req domain.PageRequest) (*domain.SiteEntry, error) {
	kind := req.Kind
	if kind == "" {
		kind = domain.PageKindWebPage
	}

	entry := atomEntry{
		Categories: []atomCategory{{Scheme: kindScheme, Term: kindPrefix + string(kind), Label: string(kind)}},
		Title:      req.Title,
		Content:    xhtmlContent(req.HTML),
		PageName:   req.PageName,
	}
	parentPath := ""
	if req.Parent != nil {
		if req.Parent.SelfLink == "" {
			return nil, fmt.Errorf("%w: parent %s has no self link", domain.ErrInvalidInput, req.Parent.Path)
		}
		entry.Links = append(entry.Links, atomLink{Rel: relParent, Type: atomMediaType, Href: req.Parent.SelfLink})
		parentPath = strings.TrimSuffix(req.Parent.Path, "/")
	}

	body, err := xml.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("encode entry: %w", err)
	}

	var created atomEntry
	if err := c.do(ctx, http.MethodPost, c.feed, append([]byte(xml.Header), body...), &created); err != nil {
		return nil, err
	}

	return toSiteEntry(&created, parentPath+"/"+req.PageName), nil
}

// AlternateLink returns the entry's browsable location, or the site root for nil.
func (c *Client) AlternateLink(entry *domain.SiteEntry) string {
	if entry == nil {
		return c.root
	}
	return entry.AlternateLink
}

func (c *Client) get(ctx context.Context, target string, out any) error {
	return c.do(ctx, http.MethodGet, target, nil, out)
}

// do sends one paced request and decodes an Atom response into out.
func (c *Client) do(ctx context.Context, method, target string, body []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("GData-Version", gdataVersion)
	if body != nil {
		req.Header.Set("Content-Type", atomMediaType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()
	logger.Request(method, target, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.RecordRateLimit(resp.Header.Get("Retry-After"))
	}
	if err := googleapi.CheckResponse(resp); err != nil {
		return WrapError(trimError(err))
	}

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// trimError shortens the raw body carried by a googleapi.Error.
// The content feed answers errors with HTML pages that are not useful in full.
func trimError(err error) error {
	if gerr, ok := err.(*googleapi.Error); ok && len(gerr.Body) > maxErrorBody {
		gerr.Body = gerr.Body[:maxErrorBody] + "..."
	}
	return err
}

func toSiteEntry(e *atomEntry, path string) *domain.SiteEntry {
	pageName := e.PageName
	if pageName == "" {
		pageName = path[strings.LastIndex(path, "/")+1:]
	}
	return &domain.SiteEntry{
		ID:            e.ID,
		Path:          path,
		Title:         e.Title,
		PageName:      pageName,
		SelfLink:      e.link(relSelf),
		AlternateLink: e.link(relAlternate),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
