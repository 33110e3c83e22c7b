package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emptrack/emptrack-backend-go/internal/domain/auth"
	"github.com/emptrack/emptrack-backend-go/internal/domain/user"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/jwt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type fakeUserRepo struct {
	byID map[string]user.AdminUser
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]user.AdminUser)}
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.AdminUser, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return user.AdminUser{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.AdminUser, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.AdminUser{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *fakeUserRepo) Create(ctx context.Context, newUser user.AdminUser) (user.AdminUser, error) {
	if _, err := r.GetByUsername(ctx, newUser.Username); err == nil {
		return user.AdminUser{}, user.ErrUsernameExists
	}
	newUser.ID = "user-" + newUser.Username
	r.byID[newUser.ID] = newUser
	return newUser, nil
}

func newTestAuthService() (auth.AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthService(repo, jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)), repo
}

// withToken returns a context carrying the verified token, as
// jwtauth.Verifier leaves it for the handlers.
func withToken(t *testing.T, tokenString string) context.Context {
	t.Helper()
	ja := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp).JWTAuth()
	token, err := jwtauth.VerifyToken(ja, tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func register(t *testing.T, svc auth.AuthService, username string) auth.TokenResponse {
	t.Helper()
	return registerAs(t, context.Background(), svc, username)
}

func registerAs(t *testing.T, ctx context.Context, svc auth.AuthService, username string) auth.TokenResponse {
	t.Helper()
	tokens, err := svc.Register(ctx, auth.RegisterRequest{
		Username:        username,
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)
	return tokens
}

func TestRegister(t *testing.T) {
	svc, repo := newTestAuthService()

	tokens := register(t, svc, "admin")
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	stored, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)

	_, err = svc.Register(withToken(t, tokens.AccessToken), auth.RegisterRequest{
		Username:        "admin",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestRegister_ClosedAfterFirstAdmin(t *testing.T) {
	svc, repo := newTestAuthService()
	first := register(t, svc, "admin")

	req := auth.RegisterRequest{
		Username:        "intruder",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	// Anonymous
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, auth.ErrRegistrationClosed)

	// A refresh token is not enough
	_, err = svc.Register(jwtauth.NewContext(context.Background(), nil, nil), req)
	assert.ErrorIs(t, err, auth.ErrRegistrationClosed)
	_, err = svc.Register(withToken(t, first.RefreshToken), req)
	assert.ErrorIs(t, err, auth.ErrRegistrationClosed)

	_, err = repo.GetByUsername(context.Background(), "intruder")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	// A signed-in admin can add a colleague
	second := registerAs(t, withToken(t, first.AccessToken), svc, "colleague")
	assert.NotEmpty(t, second.AccessToken)
	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
