// AngelaMos | 2026
// handler.go

package category

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/photo-portfolio/internal/core"
	"github.com/carterperez-dev/photo-portfolio/internal/mediator"
)

const listFailedMessage = "An error occurred while retrieving categories"

type Handler struct {
	dispatcher *mediator.Dispatcher
}

func NewHandler(dispatcher *mediator.Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/active", h.ListActive)
		r.Get("/slug/{slug}", h.GetBySlug)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params, err := parseParams(r, true)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	h.list(w, r, params)
}

func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	params, err := parseParams(r, false)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	h.list(w, r, params)
}

func (h *Handler) list(
	w http.ResponseWriter,
	r *http.Request,
	params ListCategoriesParams,
) {
	resp, err := mediator.Send[GetCategoriesQuery, CategoriesListResponse](
		r.Context(),
		h.dispatcher,
		GetCategoriesQuery(params),
	)
	if err != nil {
		core.RecordSpanError(r.Context(), err)
		core.InternalServerError(w, err, listFailedMessage)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	resp, err := mediator.Send[GetCategoryBySlugQuery, CategoryResponse](
		r.Context(),
		h.dispatcher,
		GetCategoryBySlugQuery{Slug: chi.URLParam(r, "slug")},
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Category")
			return
		}
		core.RecordSpanError(r.Context(), err)
		core.InternalServerError(w, err, "An error occurred while retrieving the category")
		return
	}

	core.OK(w, resp)
}

// parseParams reads the listing query string. includeInactive is only
// honoured when allowInactive is set.
func parseParams(
	r *http.Request,
	allowInactive bool,
) (ListCategoriesParams, error) {
	var (
		params ListCategoriesParams
		err    error
	)

	if allowInactive {
		if params.IncludeInactive, err = core.QueryBool(r, "includeInactive"); err != nil {
			return params, err
		}
	}

	if params.OrderDescending, err = core.QueryBool(r, "orderDescending"); err != nil {
		return params, err
	}

	params.OrderBy = r.URL.Query().Get("orderBy")

	return params, nil
}
