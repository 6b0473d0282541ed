package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/offwiki"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ offwiki.ManifestService = (*ManifestService)(nil)

// ManifestService implements offwiki.ManifestService using SQLite.
type ManifestService struct {
	db *DB
}

// NewManifestService creates a new ManifestService.
func NewManifestService(db *DB) *ManifestService {
	return &ManifestService{db: db}
}

// RecordArticle inserts or replaces the entry for a.Title. A new entry
// gets a generated ID; a replaced entry keeps its original ID. ID and
// HarvestedAt are written back to a.
func (s *ManifestService) RecordArticle(ctx context.Context, a *offwiki.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if a.HarvestedAt.IsZero() {
		a.HarvestedAt = time.Now().UTC()
	}

	return s.db.QueryRowContext(ctx, `
		INSERT INTO articles (id, title, path, content_hash, size, harvested_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			path = excluded.path,
			content_hash = excluded.content_hash,
			size = excluded.size,
			harvested_at = excluded.harvested_at
		RETURNING id
	`, uuid.New().String(), a.Title, a.Path, a.ContentHash, a.Size,
		a.HarvestedAt.UTC().Format(time.RFC3339)).Scan(&a.ID)
}

// FindArticle retrieves the entry for title.
func (s *ManifestService) FindArticle(ctx context.Context, title string) (*offwiki.Article, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, path, content_hash, size, harvested_at
		FROM articles
		WHERE title = ?
	`, title)

	a, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, offwiki.Errorf(offwiki.ENOTFOUND, "article %q not in manifest", title)
	}
	return a, err
}

// FindArticles retrieves all entries ordered by title.
func (s *ManifestService) FindArticles(ctx context.Context) ([]*offwiki.Article, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, path, content_hash, size, harvested_at
		FROM articles
		ORDER BY title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*offwiki.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// DeleteArticle removes the entry for title.
func (s *ManifestService) DeleteArticle(ctx context.Context, title string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE title = ?`, title)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return offwiki.Errorf(offwiki.ENOTFOUND, "article %q not in manifest", title)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*offwiki.Article, error) {
	var a offwiki.Article
	var harvestedAt string
	if err := row.Scan(&a.ID, &a.Title, &a.Path, &a.ContentHash, &a.Size, &harvestedAt); err != nil {
		return nil, err
	}

	t, err := parseRFC3339(harvestedAt, "harvested_at")
	if err != nil {
		return nil, err
	}
	a.HarvestedAt = t
	return &a, nil
}
