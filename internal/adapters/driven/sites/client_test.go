package sites

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
	"github.com/custodia-labs/wiki-push/internal/core/services"
)

// fakeSite is a minimal content feed for one site.
type fakeSite struct {
	t        *testing.T
	mu       sync.Mutex
	server   *httptest.Server
	pages    map[string]string // path -> page name
	posted   []atomEntry
	queried  []string
	headers  []http.Header
	postCode int
}

func newFakeSite(t *testing.T) *fakeSite {
	f := &fakeSite{t: t, pages: map[string]string{"/docs": "docs"}, postCode: http.StatusCreated}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeSite) entryXML(path, name, title string) string {
	self := f.server.URL + "/feeds/content/site/wiki/id-" + name
	return fmt.Sprintf(`<entry xmlns="http://www.w3.org/2005/Atom" xmlns:sites="http://schemas.google.com/sites/2008">`+
		`<id>%s</id><title>%s</title>`+
		`<link rel="self" type="application/atom+xml" href="%s"/>`+
		`<link rel="alternate" type="text/html" href="https://sites.google.com/site/wiki%s"/>`+
		`<sites:pageName>%s</sites:pageName></entry>`, self, title, self, path, name)
}

func (f *fakeSite) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.headers = append(f.headers, r.Header.Clone())

	if r.URL.Path != "/feeds/content/site/wiki" {
		http.Error(w, "No such site", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		if r.URL.Query().Get("max-results") != "" {
			w.Header().Set("Content-Type", atomMediaType)
			fmt.Fprint(w, `<feed xmlns="http://www.w3.org/2005/Atom"></feed>`)
			return
		}
		path := r.URL.Query().Get("path")
		f.queried = append(f.queried, path)
		name, ok := f.pages[path]
		if !ok {
			http.Error(w, "No content found at path "+path, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", atomMediaType)
		fmt.Fprintf(w, `<feed xmlns="http://www.w3.org/2005/Atom">%s</feed>`, f.entryXML(path, name, "Docs"))

	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		assert.NoError(f.t, err)
		var entry atomEntry
		if !assert.NoError(f.t, xml.Unmarshal(body, &entry)) {
			http.Error(w, "bad entry", http.StatusBadRequest)
			return
		}
		f.posted = append(f.posted, entry)

		if f.postCode != http.StatusCreated {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Rejected", f.postCode)
			return
		}
		w.Header().Set("Content-Type", atomMediaType)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, f.entryXML("/docs/"+entry.PageName, entry.PageName, entry.Title))
	}
}

func (f *fakeSite) client(t *testing.T, opts ...option.ClientOption) *Client {
	t.Helper()
	if len(opts) == 0 {
		opts = []option.ClientOption{option.WithHTTPClient(f.server.Client())}
	}
	c, err := New(context.Background(), Config{
		Domain:            ConsumerDomain,
		Site:              "wiki",
		FeedURL:           f.server.URL + "/feeds/",
		RequestsPerSecond: 1000,
		Burst:             100,
	}, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := New(context.Background(), Config{Site: "wiki"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = New(context.Background(), Config{Domain: "example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRootURL(t *testing.T) {
	assert.Equal(t, "https://sites.google.com/site/wiki/", RootURL(DefaultSiteURL, "site", "wiki"))
	assert.Equal(t, "https://sites.google.com/a/example.com/wiki/", RootURL(DefaultSiteURL, "example.com", "wiki"))
}

func TestClient_FeedURL(t *testing.T) {
	f := newFakeSite(t)
	assert.Equal(t, f.server.URL+"/feeds/content/site/wiki", f.client(t).FeedURL())
}

func TestClient_ResolveByPath(t *testing.T) {
	f := newFakeSite(t)
	c := f.client(t)

	t.Run("existing", func(t *testing.T) {
		entry, err := c.ResolveByPath(context.Background(), "/docs")
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, "/docs", entry.Path)
		assert.Equal(t, "docs", entry.PageName)
		assert.Equal(t, "Docs", entry.Title)
		assert.Equal(t, f.server.URL+"/feeds/content/site/wiki/id-docs", entry.SelfLink)
		assert.Equal(t, "https://sites.google.com/site/wiki/docs", entry.AlternateLink)
	})

	t.Run("missing", func(t *testing.T) {
		entry, err := c.ResolveByPath(context.Background(), "/missing")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("relative path", func(t *testing.T) {
		entry, err := c.ResolveByPath(context.Background(), "docs")
		require.NoError(t, err)
		assert.NotNil(t, entry)
	})

	assert.Equal(t, []string{"/docs", "/missing", "/docs"}, f.queried)

	require.NotEmpty(t, f.headers)
	assert.Equal(t, "1.4", f.headers[0].Get("GData-Version"))
}

// staticBuilder renders every page to the same fragment.
type staticBuilder struct{}

func (staticBuilder) Build(_ context.Context, page domain.SourcePage) (domain.RenderedContent, error) {
	return domain.RenderedContent{Title: page.Title(), HTML: "<p>ok</p>"}, nil
}

func TestClient_PublishParentWithTrailingSlash(t *testing.T) {
	f := newFakeSite(t)
	c := f.client(t)

	tree := &domain.PageTree{Pages: []domain.SourcePage{{Name: "Intro", Path: "Intro.md"}}}
	result, err := services.NewPublisher(c, staticBuilder{}).Publish(context.Background(), tree, "/docs/")
	require.NoError(t, err)

	assert.Equal(t, []string{"/docs"}, f.queried)
	require.NotNil(t, result.Parent)
	assert.Equal(t, "docs", result.Parent.PageName)
	require.Len(t, f.posted, 1)
	assert.Equal(t, "Intro", f.posted[0].PageName)
}

func TestClient_CreatePage(t *testing.T) {
	f := newFakeSite(t)
	c := f.client(t)
	ctx := context.Background()

	parent, err := c.ResolveByPath(ctx, "/docs")
	require.NoError(t, err)

	entry, err := c.CreatePage(ctx, domain.PageRequest{
		Kind:     domain.PageKindWebPage,
		Title:    "Getting started",
		HTML:     "<h1>Intro</h1>\n<p>a<br />b</p>",
		PageName: "Getting-started",
		Parent:   parent,
	})
	require.NoError(t, err)
	assert.Equal(t, "/docs/Getting-started", entry.Path)
	assert.Equal(t, "Getting-started", entry.PageName)
	assert.Equal(t, "https://sites.google.com/site/wiki/docs/Getting-started", entry.AlternateLink)

	require.Len(t, f.posted, 1)
	posted := f.posted[0]
	assert.Equal(t, xml.Name{Space: nsAtom, Local: "entry"}, posted.XMLName)
	assert.Equal(t, "Getting started", posted.Title)
	assert.Equal(t, "Getting-started", posted.PageName)
	require.Len(t, posted.Categories, 1)
	assert.Equal(t, kindScheme, posted.Categories[0].Scheme)
	assert.Equal(t, "http://schemas.google.com/sites/2008#webpage", posted.Categories[0].Term)
	require.NotNil(t, posted.Content)
	assert.Equal(t, "xhtml", posted.Content.Type)
	assert.Contains(t, posted.Content.Inner, nsXHTML)
	assert.Contains(t, posted.Content.Inner, "<h1>Intro</h1>")
	assert.Equal(t, parent.SelfLink, posted.link(relParent))

	last := f.headers[len(f.headers)-1]
	assert.Equal(t, atomMediaType, last.Get("Content-Type"))
	assert.Equal(t, "1.4", last.Get("GData-Version"))
}

func TestClient_CreatePage_Root(t *testing.T) {
	f := newFakeSite(t)
	c := f.client(t)

	_, err := c.CreatePage(context.Background(), domain.PageRequest{Title: "Home", PageName: "Home"})
	require.NoError(t, err)

	require.Len(t, f.posted, 1)
	assert.Empty(t, f.posted[0].link(relParent))
	assert.Equal(t, "http://schemas.google.com/sites/2008#webpage", f.posted[0].Categories[0].Term)
}

func TestClient_CreatePage_ParentWithoutSelfLink(t *testing.T) {
	f := newFakeSite(t)
	c := f.client(t)

	_, err := c.CreatePage(context.Background(), domain.PageRequest{
		PageName: "X",
		Parent:   &domain.SiteEntry{Path: "/docs"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.posted)
}

func TestClient_CreatePage_Errors(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		check func(error) bool
	}{
		{"conflict", http.StatusConflict, IsConflict},
		{"forbidden", http.StatusForbidden, IsForbidden},
		{"unauthorised", http.StatusUnauthorized, IsUnauthorized},
		{"rate limited", http.StatusTooManyRequests, IsRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeSite(t)
			f.postCode = tt.code
			c := f.client(t)

			_, err := c.CreatePage(context.Background(), domain.PageRequest{Title: "A", PageName: "A"})
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
			assert.Contains(t, err.Error(), "Rejected")
		})
	}
}

func TestClient_CreatePage_RateLimitHoldsRequests(t *testing.T) {
	f := newFakeSite(t)
	f.postCode = http.StatusTooManyRequests
	c := f.client(t)

	_, err := c.CreatePage(context.Background(), domain.PageRequest{PageName: "A"})
	require.Error(t, err)
	assert.True(t, IsRateLimited(err))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.limiter.Wait(ctx), context.DeadlineExceeded)
}

func TestClient_Ping(t *testing.T) {
	f := newFakeSite(t)
	assert.NoError(t, f.client(t).Ping(context.Background()))

	bad, err := New(context.Background(), Config{Domain: "site", Site: "other", FeedURL: f.server.URL + "/feeds"},
		option.WithHTTPClient(f.server.Client()))
	require.NoError(t, err)
	err = bad.Ping(context.Background())
	assert.True(t, IsNotFound(err))
}

func TestClient_TokenSource(t *testing.T) {
	f := newFakeSite(t)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "secret-token", TokenType: "Bearer"})
	c := f.client(t, option.WithTokenSource(ts))

	require.NoError(t, c.Ping(context.Background()))
	last := f.headers[len(f.headers)-1]
	assert.Equal(t, "Bearer secret-token", last.Get("Authorization"))
	assert.True(t, strings.Contains(last.Get("User-Agent"), userAgent))
}

func TestClient_AlternateLink(t *testing.T) {
	f := newFakeSite(t)
	c := f.client(t)

	assert.Equal(t, "https://sites.google.com/site/wiki/", c.AlternateLink(nil))
	assert.Equal(t, "https://x/y", c.AlternateLink(&domain.SiteEntry{AlternateLink: "https://x/y"}))
}

func TestClient_CancelledContext(t *testing.T) {
	f := newFakeSite(t)
	c := f.client(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ResolveByPath(ctx, "/docs")
	assert.ErrorIs(t, err, context.Canceled)
}
