// AngelaMos | 2026
// repository_test.go

package photo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/photo-portfolio/internal/core"
	"github.com/carterperez-dev/photo-portfolio/internal/core/coretest"
	"github.com/carterperez-dev/photo-portfolio/internal/query"
)

type fixture struct {
	db         *sqlx.DB
	repo       Repository
	categoryID int
}

// newFixture seeds one category with a mix of visibility states:
// four public photos, one inactive, one private.
func newFixture(t *testing.T) fixture {
	t.Helper()
	db := coretest.NewDB(t)

	categoryID := coretest.SeedCategory(t, db, coretest.Category{Name: "Street", Active: true})
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	seed := []coretest.Photo{
		{Title: "a", ViewCount: 10, SortOrder: 4, Active: true, Featured: true, Tags: []string{"night"}},
		{Title: "b", ViewCount: 50, SortOrder: 3, Active: true},
		{Title: "c", ViewCount: 30, SortOrder: 2, Active: true, Featured: true},
		{Title: "d", ViewCount: 5, SortOrder: 1, Active: true},
		{Title: "hidden", ViewCount: 99, SortOrder: 0, Active: false},
		{Title: "secret", ViewCount: 98, SortOrder: 0, Active: true, Private: true, Featured: true},
	}
	for i, p := range seed {
		p.CategoryID = categoryID
		p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		coretest.SeedPhoto(t, db, p)
	}

	return fixture{db: db, repo: NewRepository(db), categoryID: categoryID}
}

func titles(photos []Photo) []string {
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		out = append(out, p.Title)
	}
	return out
}

func TestListByCategoryTopViewed(t *testing.T) {
	f := newFixture(t)

	photos, err := f.repo.ListByCategory(context.Background(), ListParams{
		CategoryID: f.categoryID,
		Order:      Orders.Resolve("ViewCount", true),
		Limit:      query.Ptr(2),
	})
	require.NoError(t, err)

	require.Len(t, photos, 2)
	assert.Equal(t, 50, photos[0].ViewCount)
	assert.Equal(t, 30, photos[1].ViewCount)
}

func TestListByCategoryVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name                            string
		includeInactive, includePrivate bool
		want                            int
	}{
		{"public only", false, false, 4},
		{"with inactive", true, false, 5},
		{"with private", false, true, 5},
		{"everything", true, true, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photos, err := f.repo.ListByCategory(ctx, ListParams{
				CategoryID:      f.categoryID,
				IncludeInactive: tt.includeInactive,
				IncludePrivate:  tt.includePrivate,
			})
			require.NoError(t, err)
			assert.Len(t, photos, tt.want)

			for _, p := range photos {
				if !tt.includeInactive {
					assert.True(t, p.IsActive, p.Title)
				}
				if !tt.includePrivate {
					assert.False(t, p.IsPrivate, p.Title)
				}
			}

			total, err := f.repo.CountByCategory(ctx, f.categoryID, tt.includeInactive, tt.includePrivate)
			require.NoError(t, err)
			assert.Equal(t, len(photos), total)
		})
	}
}

func TestListByCategoryPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := Orders.Resolve("sortorder", false)

	all, err := f.repo.ListByCategory(ctx, ListParams{CategoryID: f.categoryID, Order: order})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b", "a"}, titles(all))

	page, err := f.repo.ListByCategory(ctx, ListParams{
		CategoryID: f.categoryID,
		Order:      order,
		Limit:      query.Ptr(2),
		Offset:     query.Ptr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, titles(page))

	tail, err := f.repo.ListByCategory(ctx, ListParams{
		CategoryID: f.categoryID,
		Order:      order,
		Offset:     query.Ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, titles(tail))

	total, err := f.repo.CountByCategory(ctx, f.categoryID, false, false)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestListByCategoryUnknownOrderFallsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fallback, err := f.repo.ListByCategory(ctx, ListParams{
		CategoryID: f.categoryID,
		Order:      Orders.Resolve("nonsense", true),
	})
	require.NoError(t, err)

	sorted, err := f.repo.ListByCategory(ctx, ListParams{
		CategoryID: f.categoryID,
		Order:      Orders.Resolve("SortOrder", true),
	})
	require.NoError(t, err)

	assert.Equal(t, titles(sorted), titles(fallback))
}

func TestMapsOptionalColumns(t *testing.T) {
	f := newFixture(t)

	p, err := f.repo.GetBySlug(context.Background(), "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"night"}, p.Tags)
	assert.Nil(t, p.Colors)
	assert.Nil(t, p.Exif.TakenAt)
	assert.Equal(t, "1.5", p.AspectRatio.Decimal.String())
	assert.False(t, p.Latitude.Valid)
	assert.Equal(t, 2024, p.CreatedAt.Year())
}

func TestGetBySlugSkipsInactive(t *testing.T) {
	f := newFixture(t)

	_, err := f.repo.GetBySlug(context.Background(), "hidden")
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestFeeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	featured, err := f.repo.Featured(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, titles(featured))

	recent, err := f.repo.Recent(ctx, query.Ptr(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c"}, titles(recent))
}

func TestCategoryName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	name, err := f.repo.CategoryName(ctx, f.categoryID)
	require.NoError(t, err)
	require.NotNil(t, name)
	assert.Equal(t, "Street", *name)

	missing, err := f.repo.CategoryName(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCountAcrossCategories(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := coretest.SeedCategory(t, f.db, coretest.Category{Name: "Travel", Active: true})
	coretest.SeedPhoto(t, f.db, coretest.Photo{Title: "e", CategoryID: other, Active: true})

	public, err := f.repo.Count(ctx, false, false)
	require.NoError(t, err)
	assert.Equal(t, 5, public)

	all, err := f.repo.Count(ctx, true, true)
	require.NoError(t, err)
	assert.Equal(t, 7, all)
}

func TestGetByIDIgnoresVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var id int
	require.NoError(t, f.db.Get(&id, "SELECT id FROM photos WHERE slug = 'hidden'"))

	p, err := f.repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hidden", p.Title)
	assert.False(t, p.IsActive)

	_, err = f.repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
