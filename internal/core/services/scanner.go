package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driving"
	"github.com/custodia-labs/wiki-push/internal/logger"
)

// Ensure PageScanner implements the interface.
var _ driving.PageScanner = (*PageScanner)(nil)

// PageScanner lists the markdown pages of a single directory.
// Subdirectories are not descended into and file contents are not read.
type PageScanner struct {
	onSkip func(name string)
}

// NewPageScanner creates a scanner. onSkip, if non-nil, is called for
// every internal page that is excluded.
func NewPageScanner(onSkip func(name string)) *PageScanner {
	return &PageScanner{onSkip: onSkip}
}

// Scan returns the publishable pages in dir, sorted by file name.
func (s *PageScanner) Scan(dir string) (*domain.PageTree, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrScan, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), domain.MarkdownExt) || !isRegularFile(dir, entry) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	tree := &domain.PageTree{Dir: dir}
	for _, file := range names {
		name := strings.TrimSuffix(file, domain.MarkdownExt)
		if name == "" {
			continue
		}
		if domain.IsInternalName(name) {
			logger.Debug("skipping internal page %s", name)
			tree.Skipped = append(tree.Skipped, name)
			if s.onSkip != nil {
				s.onSkip(name)
			}
			continue
		}
		tree.Pages = append(tree.Pages, domain.SourcePage{
			Name: name,
			Path: filepath.Join(dir, file),
		})
	}

	logger.Info("scanned %s: %d pages, %d skipped", dir, len(tree.Pages), len(tree.Skipped))
	return tree, nil
}

// isRegularFile reports whether entry is a regular file, following symlinks.
// Dangling links and links to directories are not pages.
func isRegularFile(dir string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		logger.Debug("skipping unreadable link %s: %v", entry.Name(), err)
		return false
	}
	return info.Mode().IsRegular()
}
