// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/carterperez-dev/photo-portfolio/internal/config"
	"github.com/carterperez-dev/photo-portfolio/internal/core"
)

type fakeUsers struct {
	mu        sync.Mutex
	byEmail   map[string]*UserInfo
	rehashed  map[string]string
	failWith  error
	createErr error
	nextID    int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byEmail:  make(map[string]*UserInfo),
		rehashed: make(map[string]string),
	}
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	_, ok := f.byEmail[strings.ToLower(email)]
	return ok, nil
}

func (f *fakeUsers) Create(_ context.Context, nu NewUser) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	role := nu.Role
	if role == "" {
		role = RoleClient
	}
	f.nextID++
	u := &UserInfo{
		ID:           "user-" + string(rune('0'+f.nextID)),
		FirstName:    nu.FirstName,
		LastName:     nu.LastName,
		Email:        strings.ToLower(nu.Email),
		PhoneNumber:  nu.PhoneNumber,
		PasswordHash: nu.PasswordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	f.byEmail[u.Email] = u
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, userID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rehashed[userID] = hash
	for _, u := range f.byEmail {
		if u.ID == userID {
			u.PasswordHash = hash
		}
	}
	return nil
}

func newTestService(t *testing.T, users UserProvider) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(newTestJWT(t), users, logger)
}

func registerCmd(email string) RegisterUserCommand {
	return RegisterUserCommand{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  "P@ss1234",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newTestService(t, newFakeUsers())
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerCmd("a@b.com"))
	require.NoError(t, err)
	require.True(t, reg.Success, reg.Message)
	assert.Equal(t, MsgRegistrationSuccess, reg.Message)
	require.NotNil(t, reg.User)
	assert.Equal(t, RoleClient, reg.User.Role)
	assert.NotEmpty(t, reg.Token)

	login, err := svc.Login(ctx, LoginUserCommand{Email: "a@b.com", Password: "P@ss1234"})
	require.NoError(t, err)
	require.True(t, login.Success, login.Message)
	assert.Equal(t, MsgLoginSuccess, login.Message)
	assert.Equal(t, reg.User.ID, login.User.ID)
	assert.Equal(t, RoleClient, login.User.Role)
	assert.NotEmpty(t, login.Token)
	require.NotNil(t, login.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), *login.ExpiresAt, 5*time.Second)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(t, newFakeUsers())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerCmd("known@x.com"))
	require.NoError(t, err)

	unknown, err := svc.Login(ctx, LoginUserCommand{Email: "unknown@x.com", Password: "any"})
	require.NoError(t, err)

	wrong, err := svc.Login(ctx, LoginUserCommand{Email: "known@x.com", Password: "wrongPassword"})
	require.NoError(t, err)

	assert.False(t, unknown.Success)
	assert.False(t, wrong.Success)
	assert.Equal(t, MsgInvalidCredentials, unknown.Message)
	assert.Equal(t, unknown.Message, wrong.Message)
	assert.Equal(t, unknown.Failure, wrong.Failure)
	assert.Empty(t, wrong.Token)
	assert.Nil(t, wrong.User)
}

func TestRegisterRejectsExistingEmail(t *testing.T) {
	svc := newTestService(t, newFakeUsers())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerCmd("a@b.com"))
	require.NoError(t, err)

	resp, err := svc.Register(ctx, registerCmd("A@B.COM"))
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, MsgEmailExists, resp.Message)
	assert.Equal(t, FailureConflict, resp.Failure)
}

func TestRegisterTreatsDuplicateKeyAsConflict(t *testing.T) {
	users := newFakeUsers()
	users.createErr = core.ErrDuplicateKey
	svc := newTestService(t, users)

	resp, err := svc.Register(context.Background(), registerCmd("race@b.com"))
	require.NoError(t, err)
	assert.Equal(t, MsgEmailExists, resp.Message)
	assert.Equal(t, FailureConflict, resp.Failure)
}

func TestUnexpectedFailuresBecomeResults(t *testing.T) {
	users := newFakeUsers()
	users.failWith = errors.New("connection refused")
	svc := newTestService(t, users)
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerCmd("a@b.com"))
	require.NoError(t, err)
	assert.False(t, reg.Success)
	assert.Equal(t, MsgRegistrationError, reg.Message)
	assert.Equal(t, FailureInternal, reg.Failure)

	login, err := svc.Login(ctx, LoginUserCommand{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.False(t, login.Success)
	assert.Equal(t, MsgLoginError, login.Message)
	assert.NotContains(t, login.Message, "connection refused")
}

func TestLoginUpgradesLegacyHash(t *testing.T) {
	users := newFakeUsers()
	legacy, err := bcrypt.GenerateFromPassword([]byte("P@ss1234"), bcrypt.MinCost)
	require.NoError(t, err)

	users.byEmail["old@b.com"] = &UserInfo{
		ID:           "legacy",
		Email:        "old@b.com",
		PasswordHash: string(legacy),
		Role:         RoleClient,
	}
	svc := newTestService(t, users)

	resp, err := svc.Login(context.Background(), LoginUserCommand{Email: "old@b.com", Password: "P@ss1234"})
	require.NoError(t, err)
	require.True(t, resp.Success)

	assert.True(t, strings.HasPrefix(users.rehashed["legacy"], "$argon2id$"))
}

func TestGetCurrentUser(t *testing.T) {
	svc := newTestService(t, newFakeUsers())
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerCmd("me@b.com"))
	require.NoError(t, err)

	got, err := svc.GetCurrentUser(ctx, GetCurrentUserQuery{UserID: reg.User.ID})
	require.NoError(t, err)
	assert.Equal(t, "me@b.com", got.Email)

	_, err = svc.GetCurrentUser(ctx, GetCurrentUserQuery{UserID: " "})
	assert.ErrorIs(t, err, core.ErrUnauthorized)

	_, err = svc.GetCurrentUser(ctx, GetCurrentUserQuery{UserID: "missing"})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestEnsureAdmin(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(t, users)
	ctx := context.Background()

	seed := config.SeedConfig{
		AdminEmail:     "admin@photography.com",
		AdminPassword:  "Admin123!",
		AdminFirstName: "Admin",
		AdminLastName:  "User",
	}

	created, err := svc.EnsureAdmin(ctx, seed)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, seed)
	require.NoError(t, err)
	assert.False(t, created)

	admin, err := users.GetByEmail(ctx, seed.AdminEmail)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, admin.Role)

	created, err = svc.EnsureAdmin(ctx, config.SeedConfig{})
	require.NoError(t, err)
	assert.False(t, created)
}
