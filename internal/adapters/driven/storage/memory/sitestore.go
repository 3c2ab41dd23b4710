package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
)

// Ensure SiteStore implements the interface.
var _ driven.SiteStore = (*SiteStore)(nil)

// SiteStore is an in-memory implementation of driven.SiteStore.
// It backs --dry-run and lets tests observe exactly which pages a run creates.
type SiteStore struct {
	mu      sync.RWMutex
	rootURL string
	entries map[string]*domain.SiteEntry
	created []domain.PageRequest
	failOn  map[string]error
}

// NewSiteStore creates an empty site whose browsable root is rootURL.
// An empty rootURL means the site exposes no browsable locations.
func NewSiteStore(rootURL string) *SiteStore {
	return &SiteStore{
		rootURL: strings.TrimSuffix(rootURL, "/"),
		entries: make(map[string]*domain.SiteEntry),
		failOn:  make(map[string]error),
	}
}

// AddEntry seeds an existing entry at path and returns it.
func (s *SiteStore) AddEntry(path, title string) *domain.SiteEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(normalisePath(path), title)
}

// FailOn makes CreatePage return err for the given page name.
func (s *SiteStore) FailOn(pageName string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn[pageName] = err
}

// ResolveByPath returns the entry at path, or nil when there is none.
func (s *SiteStore) ResolveByPath(ctx context.Context, path string) (*domain.SiteEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[normalisePath(path)]
	if !ok {
		return nil, nil
	}
	cp := *entry
	return &cp, nil
}

// CreatePage creates a page under req.Parent, or under the root when Parent is nil.
func (s *SiteStore) CreatePage(ctx context.Context, req domain.PageRequest) (*domain.SiteEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.failOn[req.PageName]; ok {
		return nil, err
	}
	if req.PageName == "" {
		return nil, fmt.Errorf("%w: empty page name", domain.ErrInvalidInput)
	}

	parentPath := ""
	if req.Parent != nil {
		if _, ok := s.entries[req.Parent.Path]; !ok {
			return nil, fmt.Errorf("parent %s does not exist", req.Parent.Path)
		}
		parentPath = req.Parent.Path
	}
	path := parentPath + "/" + req.PageName
	if _, exists := s.entries[path]; exists {
		return nil, fmt.Errorf("entry already exists at %s", path)
	}

	s.created = append(s.created, req)
	cp := *s.put(path, req.Title)
	return &cp, nil
}

// AlternateLink returns the browsable location of entry, or the root when entry is nil.
func (s *SiteStore) AlternateLink(entry *domain.SiteEntry) string {
	if entry == nil {
		if s.rootURL == "" {
			return ""
		}
		return s.rootURL + "/"
	}
	return entry.AlternateLink
}

// Created returns the requests of every page created so far, in creation order.
func (s *SiteStore) Created() []domain.PageRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.PageRequest, len(s.created))
	copy(result, s.created)
	return result
}

// put stores an entry. Callers hold the write lock.
func (s *SiteStore) put(path, title string) *domain.SiteEntry {
	name := path[strings.LastIndex(path, "/")+1:]
	entry := &domain.SiteEntry{
		ID:       "memory:" + path,
		Path:     path,
		Title:    title,
		PageName: name,
		SelfLink: "memory://entries" + path,
	}
	if s.rootURL != "" {
		entry.AlternateLink = s.rootURL + path
	}
	s.entries[path] = entry
	return entry
}

func normalisePath(path string) string {
	path = strings.TrimRight(path, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
