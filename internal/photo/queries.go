// AngelaMos | 2026
// queries.go

package photo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/carterperez-dev/photo-portfolio/internal/core"
	"github.com/carterperez-dev/photo-portfolio/internal/mediator"
)

type GetPhotosByCategoryQuery struct {
	CategoryID      int
	IncludeInactive bool
	IncludePrivate  bool
	OrderBy         string
	OrderDescending bool
	Limit           *int
	Offset          *int
}

type GetFeaturedPhotosQuery struct {
	Limit *int
}

type GetRecentPhotosQuery struct {
	Limit *int
}

type GetPhotoBySlugQuery struct {
	Slug string
}

// GetPhotosByCategoryHandler pairs a page of photos with the total for the
// same filters. Storage failures are logged and returned unchanged.
type GetPhotosByCategoryHandler struct {
	repo   Repository
	logger *slog.Logger
}

func NewGetPhotosByCategoryHandler(repo Repository, logger *slog.Logger) *GetPhotosByCategoryHandler {
	return &GetPhotosByCategoryHandler{repo: repo, logger: logger}
}

func (h *GetPhotosByCategoryHandler) Handle(
	ctx context.Context,
	q GetPhotosByCategoryQuery,
) (PhotosListResponse, error) {
	photos, err := h.repo.ListByCategory(ctx, ListParams{
		CategoryID:      q.CategoryID,
		IncludeInactive: q.IncludeInactive,
		IncludePrivate:  q.IncludePrivate,
		Order:           Orders.Resolve(q.OrderBy, q.OrderDescending),
		Limit:           q.Limit,
		Offset:          q.Offset,
	})
	if err != nil {
		return PhotosListResponse{}, h.fail(ctx, q.CategoryID, err)
	}

	total, err := h.repo.CountByCategory(ctx, q.CategoryID, q.IncludeInactive, q.IncludePrivate)
	if err != nil {
		return PhotosListResponse{}, h.fail(ctx, q.CategoryID, err)
	}

	name, err := h.repo.CategoryName(ctx, q.CategoryID)
	if err != nil {
		return PhotosListResponse{}, h.fail(ctx, q.CategoryID, err)
	}

	return PhotosListResponse{
		Photos:       ToPhotoResponseList(photos, name),
		TotalCount:   total,
		CategoryID:   q.CategoryID,
		CategoryName: name,
	}, nil
}

func (h *GetPhotosByCategoryHandler) fail(ctx context.Context, categoryID int, err error) error {
	h.logger.ErrorContext(ctx, "error retrieving photos for category",
		"category_id", categoryID,
		"error", err,
	)
	return err
}

// FeedHandler serves the featured and recent photo feeds.
type FeedHandler struct {
	repo   Repository
	logger *slog.Logger
}

func NewFeedHandler(repo Repository, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{repo: repo, logger: logger}
}

func (h *FeedHandler) Featured(
	ctx context.Context,
	q GetFeaturedPhotosQuery,
) (PhotoFeedResponse, error) {
	photos, err := h.repo.Featured(ctx, q.Limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "error retrieving featured photos", "error", err)
		return PhotoFeedResponse{}, err
	}

	return h.feed(ctx, photos)
}

func (h *FeedHandler) Recent(
	ctx context.Context,
	q GetRecentPhotosQuery,
) (PhotoFeedResponse, error) {
	photos, err := h.repo.Recent(ctx, q.Limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "error retrieving recent photos", "error", err)
		return PhotoFeedResponse{}, err
	}

	return h.feed(ctx, photos)
}

// feed resolves each distinct category name once.
func (h *FeedHandler) feed(ctx context.Context, photos []Photo) (PhotoFeedResponse, error) {
	names := make(map[int]*string)
	out := make([]PhotoResponse, 0, len(photos))

	for _, p := range photos {
		name, ok := names[p.CategoryID]
		if !ok {
			var err error
			name, err = h.repo.CategoryName(ctx, p.CategoryID)
			if err != nil {
				h.logger.ErrorContext(ctx, "error resolving category name",
					"category_id", p.CategoryID,
					"error", err,
				)
				return PhotoFeedResponse{}, err
			}
			names[p.CategoryID] = name
		}
		out = append(out, ToPhotoResponse(&p, name))
	}

	return PhotoFeedResponse{Photos: out}, nil
}

// GetPhotoBySlugHandler resolves public photos only.
type GetPhotoBySlugHandler struct {
	repo   Repository
	logger *slog.Logger
}

func NewGetPhotoBySlugHandler(repo Repository, logger *slog.Logger) *GetPhotoBySlugHandler {
	return &GetPhotoBySlugHandler{repo: repo, logger: logger}
}

func (h *GetPhotoBySlugHandler) Handle(
	ctx context.Context,
	q GetPhotoBySlugQuery,
) (PhotoResponse, error) {
	p, err := h.repo.GetBySlug(ctx, q.Slug)
	if err != nil {
		if !errors.Is(err, core.ErrNotFound) {
			h.logger.ErrorContext(ctx, "error retrieving photo", "slug", q.Slug, "error", err)
		}
		return PhotoResponse{}, err
	}

	if !p.IsPublic() {
		return PhotoResponse{}, fmt.Errorf("get photo by slug: %w", core.ErrNotFound)
	}

	name, err := h.repo.CategoryName(ctx, p.CategoryID)
	if err != nil {
		h.logger.ErrorContext(ctx, "error resolving category name",
			"category_id", p.CategoryID,
			"error", err,
		)
		return PhotoResponse{}, err
	}

	return ToPhotoResponse(p, name), nil
}

// RegisterHandlers binds every photo query to its handler.
func RegisterHandlers(reg *mediator.Registry, repo Repository, logger *slog.Logger) error {
	feed := NewFeedHandler(repo, logger)

	return errors.Join(
		mediator.Register[GetPhotosByCategoryQuery, PhotosListResponse](
			reg, NewGetPhotosByCategoryHandler(repo, logger)),
		mediator.Register[GetFeaturedPhotosQuery, PhotoFeedResponse](
			reg, mediator.HandlerFunc[GetFeaturedPhotosQuery, PhotoFeedResponse](feed.Featured)),
		mediator.Register[GetRecentPhotosQuery, PhotoFeedResponse](
			reg, mediator.HandlerFunc[GetRecentPhotosQuery, PhotoFeedResponse](feed.Recent)),
		mediator.Register[GetPhotoBySlugQuery, PhotoResponse](
			reg, NewGetPhotoBySlugHandler(repo, logger)),
	)
}

// Queries lists the request types Handler dispatches.
func Queries() []reflect.Type {
	return []reflect.Type{
		mediator.Key[GetPhotosByCategoryQuery](),
		mediator.Key[GetFeaturedPhotosQuery](),
		mediator.Key[GetRecentPhotosQuery](),
		mediator.Key[GetPhotoBySlugQuery](),
	}
}
