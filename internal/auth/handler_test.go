// AngelaMos | 2026
// handler_test.go

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/photo-portfolio/internal/mediator"
	"github.com/carterperez-dev/photo-portfolio/internal/middleware"
)

func newAuthRouter(t *testing.T, users UserProvider) (http.Handler, *JWTManager) {
	t.Helper()
	h, jwt, _ := newObservedAuthRouter(t, users)
	return h, jwt
}

// newObservedAuthRouter also returns the names of the requests the
// dispatcher handled, in order.
func newObservedAuthRouter(t *testing.T, users UserProvider) (http.Handler, *JWTManager, *[]string) {
	t.Helper()
	svc := newTestService(t, users)

	reg := mediator.NewRegistry()
	require.NoError(t, RegisterHandlers(reg, svc))

	var seen []string
	reg.Observe(func(_ context.Context, req reflect.Type, _ error) {
		seen = append(seen, req.Name())
	})

	d, err := reg.Build(Queries()...)
	require.NoError(t, err)

	r := chi.NewRouter()
	NewHandler(d).RegisterRoutes(r, middleware.Authenticator(svc.jwt))
	return r, svc.jwt, &seen
}

func do(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const registerBody = `{"firstName":"Ada","lastName":"Lovelace","email":"a@b.com","password":"P@ss1234"}`

func TestRegisterAndLoginEndpoints(t *testing.T) {
	h, _ := newAuthRouter(t, newFakeUsers())

	rec := do(t, h, http.MethodPost, "/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var reg AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
	assert.True(t, reg.Success)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.NotContains(t, rec.Body.String(), "$argon2id$")

	rec = do(t, h, http.MethodPost, "/auth/register", registerBody, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/auth/login", `{"email":"a@b.com","password":"P@ss1234"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var login AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.Equal(t, MsgLoginSuccess, login.Message)

	rec = do(t, h, http.MethodGet, "/auth/me", "", login.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	var me UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, reg.User.ID, me.ID)
	assert.Equal(t, RoleClient, me.Role)
}

func TestLoginEndpointFailures(t *testing.T) {
	h, _ := newAuthRouter(t, newFakeUsers())

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "unknown account",
			body:       `{"email":"nobody@b.com","password":"whatever"}`,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    MsgInvalidCredentials,
		},
		{
			name:       "malformed email",
			body:       `{"email":"nope","password":"whatever"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "email must be a valid email address",
		},
		{
			name:       "bad json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/auth/login", tt.body, "")
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp AuthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestMeRequiresKnownIdentity(t *testing.T) {
	h, jwt := newAuthRouter(t, newFakeUsers())

	rec := do(t, h, http.MethodGet, "/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _, err := jwt.CreateAccessToken(AccessTokenClaims{UserID: "ghost", Role: RoleClient})
	require.NoError(t, err)

	rec = do(t, h, http.MethodGet, "/auth/me", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestAuthEndpointsDispatchRequests(t *testing.T) {
	h, _, seen := newObservedAuthRouter(t, newFakeUsers())

	rec := do(t, h, http.MethodPost, "/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/auth/login", `{"email":"a@b.com","password":"P@ss1234"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var login AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	rec = do(t, h, http.MethodGet, "/auth/me", "", login.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/auth/login", `{"email":"bad"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t,
		[]string{"RegisterUserCommand", "LoginUserCommand", "GetCurrentUserQuery"},
		*seen,
	)
}

func TestBuildRequiresAuthHandlers(t *testing.T) {
	_, err := mediator.NewRegistry().Build(Queries()...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mediator.ErrMissingHandler))

	reg := mediator.NewRegistry()
	svc := newTestService(t, newFakeUsers())
	require.NoError(t, RegisterHandlers(reg, svc))
	assert.ErrorIs(t, RegisterHandlers(reg, svc), mediator.ErrDuplicateHandler)
}
