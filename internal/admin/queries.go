// AngelaMos | 2026
// queries.go

package admin

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/carterperez-dev/photo-portfolio/internal/mediator"
)

type GetCatalogStatsQuery struct{}

type CatalogStats struct {
	TotalCategories  int `json:"totalCategories"`
	ActiveCategories int `json:"activeCategories"`
	TotalPhotos      int `json:"totalPhotos"`
	PublicPhotos     int `json:"publicPhotos"`
}

type CategoryCounter interface {
	Count(ctx context.Context, includeInactive bool) (int, error)
}

type PhotoCounter interface {
	Count(ctx context.Context, includeInactive, includePrivate bool) (int, error)
}

type GetCatalogStatsHandler struct {
	categories CategoryCounter
	photos     PhotoCounter
	logger     *slog.Logger
}

func NewGetCatalogStatsHandler(
	categories CategoryCounter,
	photos PhotoCounter,
	logger *slog.Logger,
) *GetCatalogStatsHandler {
	return &GetCatalogStatsHandler{
		categories: categories,
		photos:     photos,
		logger:     logger,
	}
}

func (h *GetCatalogStatsHandler) Handle(
	ctx context.Context,
	_ GetCatalogStatsQuery,
) (CatalogStats, error) {
	var (
		stats CatalogStats
		err   error
	)

	steps := []struct {
		name string
		run  func() error
	}{
		{"total categories", func() error {
			stats.TotalCategories, err = h.categories.Count(ctx, true)
			return err
		}},
		{"active categories", func() error {
			stats.ActiveCategories, err = h.categories.Count(ctx, false)
			return err
		}},
		{"total photos", func() error {
			stats.TotalPhotos, err = h.photos.Count(ctx, true, true)
			return err
		}},
		{"public photos", func() error {
			stats.PublicPhotos, err = h.photos.Count(ctx, false, false)
			return err
		}},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			h.logger.ErrorContext(ctx, "error computing catalog stats",
				"step", step.name,
				"error", err,
			)
			return CatalogStats{}, fmt.Errorf("catalog stats: %s: %w", step.name, err)
		}
	}

	return stats, nil
}

func RegisterHandlers(
	reg *mediator.Registry,
	categories CategoryCounter,
	photos PhotoCounter,
	logger *slog.Logger,
) error {
	return mediator.Register[GetCatalogStatsQuery, CatalogStats](
		reg, NewGetCatalogStatsHandler(categories, photos, logger))
}

func Queries() []reflect.Type {
	return []reflect.Type{mediator.Key[GetCatalogStatsQuery]()}
}
