// AngelaMos | 2026
// repository.go

package photo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/photo-portfolio/internal/core"
	"github.com/carterperez-dev/photo-portfolio/internal/query"
	"github.com/carterperez-dev/photo-portfolio/internal/row"
)

type ListParams struct {
	CategoryID      int
	IncludeInactive bool
	IncludePrivate  bool
	Order           query.Order
	Limit           *int
	Offset          *int
}

type Repository interface {
	ListByCategory(ctx context.Context, params ListParams) ([]Photo, error)
	CountByCategory(
		ctx context.Context,
		categoryID int,
		includeInactive, includePrivate bool,
	) (int, error)
	Count(ctx context.Context, includeInactive, includePrivate bool) (int, error)
	GetByID(ctx context.Context, id int) (*Photo, error)
	GetBySlug(ctx context.Context, slug string) (*Photo, error)
	Featured(ctx context.Context, limit *int) ([]Photo, error)
	Recent(ctx context.Context, limit *int) ([]Photo, error)
	CategoryName(ctx context.Context, categoryID int) (*string, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// byCategory is the predicate shared by ListByCategory and CountByCategory.
func byCategory(categoryID int, includeInactive, includePrivate bool) []query.Predicate {
	return append(
		[]query.Predicate{query.Eq("category_id", categoryID)},
		query.VisibilityFilters(includeInactive, includePrivate)...,
	)
}

func (r *repository) ListByCategory(
	ctx context.Context,
	params ListParams,
) ([]Photo, error) {
	order := params.Order
	if order.Column == "" {
		order = Orders.Resolve("", false)
	}

	photos, err := r.list(ctx, query.Spec{
		Table:   table,
		Columns: columns,
		Where:   byCategory(params.CategoryID, params.IncludeInactive, params.IncludePrivate),
		Order:   []query.Order{order, {Column: "id"}},
		Limit:   params.Limit,
		Offset:  params.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list photos by category: %w", err)
	}

	return photos, nil
}

func (r *repository) CountByCategory(
	ctx context.Context,
	categoryID int,
	includeInactive, includePrivate bool,
) (int, error) {
	total, err := r.count(ctx, byCategory(categoryID, includeInactive, includePrivate))
	if err != nil {
		return 0, fmt.Errorf("count photos by category: %w", err)
	}

	return total, nil
}

// Count totals photos across all categories under the same visibility gates.
func (r *repository) Count(
	ctx context.Context,
	includeInactive, includePrivate bool,
) (int, error) {
	total, err := r.count(ctx, query.VisibilityFilters(includeInactive, includePrivate))
	if err != nil {
		return 0, fmt.Errorf("count photos: %w", err)
	}

	return total, nil
}

func (r *repository) count(ctx context.Context, where []query.Predicate) (int, error) {
	stmt, args := query.Spec{Table: table, Where: where}.Count()

	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(stmt), args...); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Photo, error) {
	return r.getOne(ctx, "get photo", []query.Predicate{query.Eq("id", id)})
}

// GetBySlug only resolves active photos.
func (r *repository) GetBySlug(ctx context.Context, slug string) (*Photo, error) {
	return r.getOne(ctx, "get photo by slug", []query.Predicate{
		query.Eq("slug", slug),
		query.Eq("is_active", true),
	})
}

func (r *repository) Featured(ctx context.Context, limit *int) ([]Photo, error) {
	photos, err := r.list(ctx, query.Spec{
		Table:   table,
		Columns: columns,
		Where: append(
			[]query.Predicate{query.Eq("is_featured", true)},
			query.VisibilityFilters(false, false)...,
		),
		Order: []query.Order{
			{Column: "sort_order"},
			{Column: "created_at", Desc: true},
		},
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list featured photos: %w", err)
	}

	return photos, nil
}

func (r *repository) Recent(ctx context.Context, limit *int) ([]Photo, error) {
	photos, err := r.list(ctx, query.Spec{
		Table:   table,
		Columns: columns,
		Where:   query.VisibilityFilters(false, false),
		Order:   []query.Order{{Column: "created_at", Desc: true}},
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list recent photos: %w", err)
	}

	return photos, nil
}

// CategoryName returns nil when the category does not exist.
func (r *repository) CategoryName(
	ctx context.Context,
	categoryID int,
) (*string, error) {
	var name string
	err := r.db.GetContext(ctx, &name,
		r.db.Rebind("SELECT name FROM categories WHERE id = ?"), categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category name: %w", err)
	}

	return &name, nil
}

func (r *repository) list(ctx context.Context, spec query.Spec) ([]Photo, error) {
	stmt, args := spec.Select(query.DialectFor(r.db.DriverName()))

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(stmt), args...)
	if err != nil {
		return nil, err
	}

	return row.Collect(rows, fromRow)
}

func (r *repository) getOne(
	ctx context.Context,
	op string,
	where []query.Predicate,
) (*Photo, error) {
	spec := query.Spec{Table: table, Columns: columns, Where: where}
	stmt, args := spec.Select(query.DialectFor(r.db.DriverName()))

	p, err := row.One(r.db.QueryRowxContext(ctx, r.db.Rebind(stmt), args...), fromRow)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}
