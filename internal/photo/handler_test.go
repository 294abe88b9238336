// AngelaMos | 2026
// handler_test.go

package photo

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/photo-portfolio/internal/mediator"
)

func newTestRouter(t *testing.T, repo Repository) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	reg := mediator.NewRegistry()
	require.NoError(t, RegisterHandlers(reg, repo, logger))

	d, err := reg.Build(Queries()...)
	require.NoError(t, err)

	r := chi.NewRouter()
	NewHandler(d).RegisterRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) PhotosListResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body PhotosListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestListByCategoryEndpoint(t *testing.T) {
	f := newFixture(t)
	h := newTestRouter(t, f.repo)

	body := decodeList(t, get(t, h,
		"/photos/category/"+itoa(f.categoryID)+"?orderBy=ViewCount&orderDescending=true&limit=2"))

	assert.Equal(t, 4, body.TotalCount)
	assert.Equal(t, f.categoryID, body.CategoryID)
	require.NotNil(t, body.CategoryName)
	assert.Equal(t, "Street", *body.CategoryName)

	require.Len(t, body.Photos, 2)
	assert.Equal(t, 50, body.Photos[0].ViewCount)
	assert.Equal(t, 30, body.Photos[1].ViewCount)
	for _, p := range body.Photos {
		require.NotNil(t, p.CategoryName)
		assert.Equal(t, "Street", *p.CategoryName)
	}
}

func TestPublicEndpointIgnoresVisibilityOverrides(t *testing.T) {
	f := newFixture(t)
	h := newTestRouter(t, f.repo)

	body := decodeList(t, get(t, h,
		"/photos/category/"+itoa(f.categoryID)+"/public?includePrivate=true&includeInactive=true&offset=3"))

	assert.Equal(t, 4, body.TotalCount)
	assert.Len(t, body.Photos, 4)
}

func TestListByCategoryIncludesPrivateOnRequest(t *testing.T) {
	f := newFixture(t)
	h := newTestRouter(t, f.repo)

	body := decodeList(t, get(t, h,
		"/photos/category/"+itoa(f.categoryID)+"?includePrivate=true"))

	assert.Equal(t, 5, body.TotalCount)
}

func TestListByCategoryRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	h := newTestRouter(t, f.repo)

	for _, target := range []string{
		"/photos/category/0",
		"/photos/category/-4",
		"/photos/category/abc",
		"/photos/category/1?limit=-1",
		"/photos/category/1?offset=-2",
		"/photos/category/1?limit=ten",
		"/photos/category/1/public?limit=-1",
	} {
		t.Run(target, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, get(t, h, target).Code)
		})
	}
}

func TestFeedEndpoints(t *testing.T) {
	f := newFixture(t)
	h := newTestRouter(t, f.repo)

	rec := get(t, h, "/photos/featured?limit=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var feed PhotoFeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed.Photos, 1)
	assert.Equal(t, "c", feed.Photos[0].Title)
	require.NotNil(t, feed.Photos[0].CategoryName)

	assert.Equal(t, http.StatusOK, get(t, h, "/photos/recent").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/photos/recent?limit=500").Code)
}

func TestGetBySlugEndpoint(t *testing.T) {
	f := newFixture(t)
	h := newTestRouter(t, f.repo)

	rec := get(t, h, "/photos/slug/b")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"categoryName":"Street"`)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/photos/slug/secret").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/photos/slug/hidden").Code)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
