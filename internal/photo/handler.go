// AngelaMos | 2026
// handler.go

package photo

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/photo-portfolio/internal/core"
	"github.com/carterperez-dev/photo-portfolio/internal/mediator"
)

const listFailedMessage = "An error occurred while retrieving photos"

type Handler struct {
	dispatcher *mediator.Dispatcher
	validator  *validator.Validate
}

func NewHandler(dispatcher *mediator.Dispatcher) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		validator:  core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/photos", func(r chi.Router) {
		r.Get("/category/{categoryId}", h.ListByCategory)
		r.Get("/category/{categoryId}/public", h.ListPublicByCategory)
		r.Get("/featured", h.Featured)
		r.Get("/recent", h.Recent)
		r.Get("/slug/{slug}", h.GetBySlug)
	})
}

func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseListParams(r, false)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	h.list(w, r, params)
}

// ListPublicByCategory forces both visibility gates on and ignores offset.
func (h *Handler) ListPublicByCategory(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseListParams(r, true)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	h.list(w, r, params)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, params ListPhotosParams) {
	resp, err := mediator.Send[GetPhotosByCategoryQuery, PhotosListResponse](
		r.Context(),
		h.dispatcher,
		GetPhotosByCategoryQuery(params),
	)
	if err != nil {
		core.RecordSpanError(r.Context(), err)
		core.InternalServerError(w, err, listFailedMessage)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseFeedParams(r)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	resp, err := mediator.Send[GetFeaturedPhotosQuery, PhotoFeedResponse](
		r.Context(),
		h.dispatcher,
		GetFeaturedPhotosQuery(params),
	)
	if err != nil {
		core.RecordSpanError(r.Context(), err)
		core.InternalServerError(w, err, listFailedMessage)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseFeedParams(r)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	resp, err := mediator.Send[GetRecentPhotosQuery, PhotoFeedResponse](
		r.Context(),
		h.dispatcher,
		GetRecentPhotosQuery(params),
	)
	if err != nil {
		core.RecordSpanError(r.Context(), err)
		core.InternalServerError(w, err, listFailedMessage)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	resp, err := mediator.Send[GetPhotoBySlugQuery, PhotoResponse](
		r.Context(),
		h.dispatcher,
		GetPhotoBySlugQuery{Slug: chi.URLParam(r, "slug")},
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Photo")
			return
		}
		core.RecordSpanError(r.Context(), err)
		core.InternalServerError(w, err, "An error occurred while retrieving the photo")
		return
	}

	core.OK(w, resp)
}

func (h *Handler) parseListParams(r *http.Request, publicOnly bool) (ListPhotosParams, error) {
	var (
		params ListPhotosParams
		err    error
	)

	if params.CategoryID, err = core.PathInt(chi.URLParam(r, "categoryId"), "categoryId"); err != nil {
		return params, err
	}

	if !publicOnly {
		if params.IncludeInactive, err = core.QueryBool(r, "includeInactive"); err != nil {
			return params, err
		}
		if params.IncludePrivate, err = core.QueryBool(r, "includePrivate"); err != nil {
			return params, err
		}
		if params.Offset, err = core.QueryInt(r, "offset"); err != nil {
			return params, err
		}
	}

	if params.OrderDescending, err = core.QueryBool(r, "orderDescending"); err != nil {
		return params, err
	}
	if params.Limit, err = core.QueryInt(r, "limit"); err != nil {
		return params, err
	}

	params.OrderBy = r.URL.Query().Get("orderBy")

	if err := h.validator.Struct(params); err != nil {
		return params, core.ValidationError(core.FormatValidationError(err))
	}

	return params, nil
}

func (h *Handler) parseFeedParams(r *http.Request) (FeedParams, error) {
	var (
		params FeedParams
		err    error
	)

	if params.Limit, err = core.QueryInt(r, "limit"); err != nil {
		return params, err
	}

	if err := h.validator.Struct(params); err != nil {
		return params, core.ValidationError(core.FormatValidationError(err))
	}

	return params, nil
}
