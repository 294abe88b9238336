// AngelaMos | 2026
// queries.go

package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/carterperez-dev/photo-portfolio/internal/core"
	"github.com/carterperez-dev/photo-portfolio/internal/mediator"
)

type GetCategoriesQuery struct {
	IncludeInactive bool
	OrderBy         string
	OrderDescending bool
}

type GetCategoryBySlugQuery struct {
	Slug string
}

// GetCategoriesHandler logs and returns storage failures unchanged.
type GetCategoriesHandler struct {
	repo   Repository
	logger *slog.Logger
}

func NewGetCategoriesHandler(repo Repository, logger *slog.Logger) *GetCategoriesHandler {
	return &GetCategoriesHandler{repo: repo, logger: logger}
}

func (h *GetCategoriesHandler) Handle(
	ctx context.Context,
	q GetCategoriesQuery,
) (CategoriesListResponse, error) {
	categories, err := h.repo.List(ctx, ListParams{
		IncludeInactive: q.IncludeInactive,
		Order:           Orders.Resolve(q.OrderBy, q.OrderDescending),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "error retrieving categories", "error", err)
		return CategoriesListResponse{}, err
	}

	total, err := h.repo.Count(ctx, q.IncludeInactive)
	if err != nil {
		h.logger.ErrorContext(ctx, "error counting categories", "error", err)
		return CategoriesListResponse{}, err
	}

	return CategoriesListResponse{
		Categories: ToCategoryResponseList(categories),
		TotalCount: total,
	}, nil
}

// GetCategoryBySlugHandler only resolves active categories.
type GetCategoryBySlugHandler struct {
	repo   Repository
	logger *slog.Logger
}

func NewGetCategoryBySlugHandler(repo Repository, logger *slog.Logger) *GetCategoryBySlugHandler {
	return &GetCategoryBySlugHandler{repo: repo, logger: logger}
}

func (h *GetCategoryBySlugHandler) Handle(
	ctx context.Context,
	q GetCategoryBySlugQuery,
) (CategoryResponse, error) {
	c, err := h.repo.GetBySlug(ctx, q.Slug)
	if err != nil {
		if !errors.Is(err, core.ErrNotFound) {
			h.logger.ErrorContext(ctx, "error retrieving category",
				"slug", q.Slug,
				"error", err,
			)
		}
		return CategoryResponse{}, err
	}

	if !c.IsActive {
		return CategoryResponse{}, fmt.Errorf("get category by slug: %w", core.ErrNotFound)
	}

	return ToCategoryResponse(c), nil
}

func RegisterHandlers(reg *mediator.Registry, repo Repository, logger *slog.Logger) error {
	return errors.Join(
		mediator.Register[GetCategoriesQuery, CategoriesListResponse](
			reg, NewGetCategoriesHandler(repo, logger)),
		mediator.Register[GetCategoryBySlugQuery, CategoryResponse](
			reg, NewGetCategoryBySlugHandler(repo, logger)),
	)
}

func Queries() []reflect.Type {
	return []reflect.Type{
		mediator.Key[GetCategoriesQuery](),
		mediator.Key[GetCategoryBySlugQuery](),
	}
}
