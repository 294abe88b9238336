// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/photo-portfolio/internal/mediator"
)

type stubCategories struct{ total, active int }

func (s stubCategories) Count(_ context.Context, includeInactive bool) (int, error) {
	if includeInactive {
		return s.total, nil
	}
	return s.active, nil
}

type stubPhotos struct {
	total, public int
	err           error
}

func (s stubPhotos) Count(_ context.Context, includeInactive, includePrivate bool) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if includeInactive && includePrivate {
		return s.total, nil
	}
	return s.public, nil
}

func passthrough(next http.Handler) http.Handler { return next }

func newAdminRouter(t *testing.T, photos PhotoCounter) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	reg := mediator.NewRegistry()
	require.NoError(t, RegisterHandlers(reg, stubCategories{total: 3, active: 2}, photos, logger))
	d, err := reg.Build(Queries()...)
	require.NoError(t, err)

	r := chi.NewRouter()
	NewHandler(HandlerConfig{Dispatcher: d}).RegisterRoutes(r, passthrough, passthrough)
	return r
}

func TestCatalogStats(t *testing.T) {
	r := newAdminRouter(t, stubPhotos{total: 10, public: 7})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats/catalog", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats CatalogStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, CatalogStats{
		TotalCategories:  3,
		ActiveCategories: 2,
		TotalPhotos:      10,
		PublicPhotos:     7,
	}, stats)
}

func TestCatalogStatsHidesFailureDetail(t *testing.T) {
	r := newAdminRouter(t, stubPhotos{err: errors.New("relation photos does not exist")})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats/catalog", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), catalogStatsFailedMessage)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestSystemStatsOmitsRedisWhenDisabled(t *testing.T) {
	r := newAdminRouter(t, stubPhotos{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "redis")
	assert.Contains(t, body, "runtime")
}
