// AngelaMos | 2026
// repository.go

package category

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
	IncludeInactive bool
	Order           query.Order
}

type Repository interface {
	List(ctx context.Context, params ListParams) ([]Category, error)
	Count(ctx context.Context, includeInactive bool) (int, error)
	GetByID(ctx context.Context, id int) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func listSpec(includeInactive bool) query.Spec {
	return query.Spec{
		Table:   table,
		Columns: columns,
		Where:   query.ActiveFilter(includeInactive),
	}
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Category, error) {
	order := params.Order
	if order.Column == "" {
		order = Orders.Resolve("", false)
	}

	spec := listSpec(params.IncludeInactive)
	spec.Order = []query.Order{order, {Column: "id"}}

	stmt, args := spec.Select(query.DialectFor(r.db.DriverName()))

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(stmt), args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories, err := row.Collect(rows, fromRow)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

func (r *repository) Count(
	ctx context.Context,
	includeInactive bool,
) (int, error) {
	stmt, args := listSpec(includeInactive).Count()

	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(stmt), args...); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}

	return total, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Category, error) {
	return r.getOne(ctx, "get category", query.Eq("id", id))
}

func (r *repository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Category, error) {
	return r.getOne(ctx, "get category by slug", query.Eq("slug", slug))
}

func (r *repository) getOne(
	ctx context.Context,
	op string,
	pred query.Predicate,
) (*Category, error) {
	spec := query.Spec{
		Table:   table,
		Columns: columns,
		Where:   []query.Predicate{pred},
	}
	stmt, args := spec.Select(query.DialectFor(r.db.DriverName()))

	c, err := row.One(r.db.QueryRowxContext(ctx, r.db.Rebind(stmt), args...), fromRow)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}
