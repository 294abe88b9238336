// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func ok() Checker {
	return pingFunc(func(context.Context) error { return nil })
}

func failing() Checker {
	return pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") })
}

func get(t *testing.T, h *Handler, path string) (*httptest.ResponseRecorder, ReadinessResponse) {
	t.Helper()
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		db, redis  Checker
		wantStatus int
		wantChecks int
	}{
		{"database only", ok(), nil, http.StatusOK, 1},
		{"database and redis", ok(), ok(), http.StatusOK, 2},
		{"redis down", ok(), failing(), http.StatusServiceUnavailable, 2},
		{"database down", failing(), nil, http.StatusServiceUnavailable, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := get(t, NewHandler(tt.db, tt.redis), "/readyz")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Len(t, body.Checks, tt.wantChecks)
			for _, c := range body.Checks {
				assert.NotContains(t, c.Message, "refused")
			}
		})
	}
}

func TestShutdownFailsProbes(t *testing.T) {
	h := NewHandler(ok(), nil)
	h.SetShutdown(true)

	rec, body := get(t, h, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "shutting_down", body.Status)

	rec, _ = get(t, h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
