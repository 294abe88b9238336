// AngelaMos | 2026
// handler_test.go

package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/photo-portfolio/internal/auth"
	"github.com/carterperez-dev/photo-portfolio/internal/middleware"
)

func TestAdminRoleEndpoint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Create(ctx, newUser("admin", "admin@example.com"), RoleAdmin))
	require.NoError(t, f.repo.Create(ctx, newUser("client", "client@example.com"), RoleClient))

	r := chi.NewRouter()
	NewHandler(f.users).RegisterAdminRoutes(
		r,
		middleware.Authenticator(f.jwt),
		middleware.RequireAdmin,
	)

	token := func(id, role string) string {
		tok, _, err := f.jwt.CreateAccessToken(auth.AccessTokenClaims{UserID: id, Role: role})
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name       string
		token      string
		target     string
		body       string
		wantStatus int
	}{
		{"anonymous", "", "client", `{"role":"Admin"}`, http.StatusUnauthorized},
		{"client forbidden", token("client", RoleClient), "client", `{"role":"Admin"}`, http.StatusForbidden},
		{"unknown role", token("admin", RoleAdmin), "client", `{"role":"Owner"}`, http.StatusBadRequest},
		{"unknown user", token("admin", RoleAdmin), "ghost", `{"role":"Admin"}`, http.StatusNotFound},
		{"promote", token("admin", RoleAdmin), "client", `{"role":"Admin"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(
				http.MethodPut,
				"/admin/users/"+tt.target+"/role",
				strings.NewReader(tt.body),
			)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}

	role, err := f.users.ResolveRole(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}
