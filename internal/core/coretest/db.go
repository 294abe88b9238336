// AngelaMos | 2026
// db.go

// Package coretest opens throwaway SQLite databases carrying the real
// schema, and seeds catalog rows that the service itself never writes.
package coretest

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/photo-portfolio/internal/config"
	"github.com/carterperez-dev/photo-portfolio/internal/core"
)

const sqliteTime = "2006-01-02 15:04:05"

// NewDB returns a migrated database in t's temp dir, closed on cleanup.
func NewDB(t testing.TB) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := core.NewDatabase(ctx, config.DatabaseConfig{
		Driver:       core.DriverSQLite,
		URL:          filepath.Join(t.TempDir(), "portfolio.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))

	return db.DB
}

type Category struct {
	Name      string
	Slug      string
	Active    bool
	Featured  bool
	SortOrder int
	CreatedAt time.Time
}

func SeedCategory(t testing.TB, db *sqlx.DB, c Category) int {
	t.Helper()

	if c.Slug == "" {
		c.Slug = c.Name
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	var id int
	err := db.QueryRowx(`
		INSERT INTO categories (name, slug, is_active, is_featured, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`,
		c.Name, c.Slug, c.Active, c.Featured, c.SortOrder, c.CreatedAt.Format(sqliteTime),
	).Scan(&id)
	require.NoError(t, err)

	return id
}

type Photo struct {
	Title      string
	Slug       string
	CategoryID int
	Active     bool
	Featured   bool
	Private    bool
	SortOrder  int
	ViewCount  int
	LikeCount  int
	Tags       []string
	CreatedAt  time.Time
}

func SeedPhoto(t testing.TB, db *sqlx.DB, p Photo) int {
	t.Helper()

	if p.Slug == "" {
		p.Slug = p.Title
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	var tags any
	if p.Tags != nil {
		raw, err := json.Marshal(p.Tags)
		require.NoError(t, err)
		tags = string(raw)
	}

	var id int
	err := db.QueryRowx(`
		INSERT INTO photos (title, slug, category_id, is_active, is_featured, is_private,
		                    sort_order, view_count, like_count, tags, aspect_ratio, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '1.5', ?)
		RETURNING id`,
		p.Title, p.Slug, p.CategoryID, p.Active, p.Featured, p.Private,
		p.SortOrder, p.ViewCount, p.LikeCount, tags, p.CreatedAt.Format(sqliteTime),
	).Scan(&id)
	require.NoError(t, err)

	return id
}
