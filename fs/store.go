// Package fs provides file-based storage for harvested articles.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/offwiki"
)

// IndexFile is the landing page's file name.
const IndexFile = "index.html"

// TitleToPath converts an article title to a file name relative to the
// store directory. Slashes are escaped so every article sits directly in
// the directory: "AC/DC" → "AC%2FDC.html".
func TitleToPath(title string) string {
	return strings.ReplaceAll(title, "/", "%2F") + ".html"
}

// PathToTitle reverses TitleToPath. MediaWiki titles never contain
// percent-encoded sequences, so the mapping is unambiguous.
func PathToTitle(name string) string {
	return strings.ReplaceAll(strings.TrimSuffix(name, ".html"), "%2F", "/")
}

// Ensure Store implements offwiki.ArticleStore at compile time.
var _ offwiki.ArticleStore = (*Store)(nil)

// Store writes cleaned pages as HTML files into one directory.
// Each file is written to a temporary name and renamed into place, so a
// crashed run never leaves a truncated page that Exists would report.
type Store struct {
	dir string
}

// NewStore creates a Store writing into dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Exists reports whether a page for title is already stored.
func (s *Store) Exists(ctx context.Context, title string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, TitleToPath(title)))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

// Titles returns the titles of all stored articles in file name order.
// A missing directory holds no articles.
func (s *Store) Titles(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var titles []string
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || name == IndexFile || !strings.HasSuffix(name, ".html") {
			continue
		}
		titles = append(titles, PathToTitle(name))
	}
	return titles, nil
}

// SaveArticle writes the page for title and returns its path.
func (s *Store) SaveArticle(ctx context.Context, title string, html string) (string, error) {
	if title == "" {
		return "", offwiki.Errorf(offwiki.EINVALID, "article title required")
	}
	return s.write(TitleToPath(title), html)
}

// SaveIndex writes the landing page and returns its path.
func (s *Store) SaveIndex(ctx context.Context, html string) (string, error) {
	return s.write(IndexFile, html)
}

func (s *Store) write(name, content string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.dir, name)

	tmp, err := os.CreateTemp(s.dir, ".offwiki-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}
