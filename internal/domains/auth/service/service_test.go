package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-storefront/internal/domains/auth/model"
	"bookstore-storefront/internal/domains/auth/repository"
	"bookstore-storefront/internal/infrastructure/cache"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/apiclient/apitest"
	"bookstore-storefront/pkg/jwt"
)

func accessToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.Claims{
		UserID: uuid.NewString(),
		Role:   "user",
		Type:   "access",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("backend"))
	require.NoError(t, err)
	return token
}

func setup(t *testing.T) (*apitest.Server, ServiceInterface, *session.Opener, context.Context) {
	t.Helper()
	srv := apitest.NewServer(t)
	opener := session.NewOpener(cache.NewMemoryCache(), time.Hour)
	svc := NewAuthService(repository.NewAPIRepository(srv.Client()), opener, jwt.NewInspector(""))
	ctx := session.WithID(context.Background(), "6b1f9a52-0a4e-4d0a-9d1e-5b8f1f7e2c33")
	return srv, svc, opener, ctx
}

func TestAuthService_LoginPersistsSessionAndConsumesRedirect(t *testing.T) {
	srv, svc, opener, ctx := setup(t)
	token := accessToken(t, time.Hour)
	user := model.User{ID: uuid.New(), Email: "an@bookstore.vn", FullName: "Nguyễn An", Role: "user"}
	srv.OK(http.MethodPost, "/auth/login", model.LoginResult{AccessToken: token, User: user})

	require.NoError(t, svc.RememberRedirect(ctx, "/checkout"))
	assert.False(t, svc.IsAuthenticated(ctx))

	// a stale token on the context must not be sent to the login endpoint
	res, err := svc.Login(apiclient.WithToken(ctx, "stale"), model.LoginRequest{Email: "an@bookstore.vn", Password: "Secret123"})
	require.NoError(t, err)
	assert.Equal(t, "/checkout", res.RedirectTo)
	assert.Equal(t, user, res.User)

	calls := srv.Calls(http.MethodPost, "/auth/login")
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].Auth)

	store := opener.Open(session.IDFromContext(ctx))
	var stored string
	found, err := store.Get(ctx, session.KeyAuthToken, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, token, stored)

	exists, err := store.Exists(ctx, session.KeyPostLoginRedirect)
	require.NoError(t, err)
	assert.False(t, exists, "redirect is consumed once")

	assert.True(t, svc.IsAuthenticated(ctx))
	me, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn An", me.FullName)
}

func TestAuthService_LoginWithoutRememberedPath(t *testing.T) {
	srv, svc, _, ctx := setup(t)
	srv.OK(http.MethodPost, "/auth/login", model.LoginResult{AccessToken: accessToken(t, time.Hour)})

	res, err := svc.Login(ctx, model.LoginRequest{Email: "an@bookstore.vn", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultRedirect, res.RedirectTo)
}

func TestAuthService_LoginRejected(t *testing.T) {
	srv, svc, _, ctx := setup(t)
	srv.Fail(http.MethodPost, "/auth/login", http.StatusUnauthorized, "Invalid credentials")

	_, err := svc.Login(ctx, model.LoginRequest{Email: "an@bookstore.vn", Password: "wrong"})
	assert.True(t, apiclient.IsUnauthorized(err))
	assert.False(t, svc.IsAuthenticated(ctx))

	_, err = svc.Login(ctx, model.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
	assert.Len(t, srv.Calls(http.MethodPost, "/auth/login"), 1, "invalid input never reaches the backend")
}

func TestAuthService_ExpiredTokenAndLogout(t *testing.T) {
	_, svc, opener, ctx := setup(t)
	store := opener.Open(session.IDFromContext(ctx))
	require.NoError(t, store.Set(ctx, session.KeyAuthToken, accessToken(t, -time.Minute), 0))
	require.NoError(t, store.Set(ctx, session.KeyAuthUser, model.User{Email: "an@bookstore.vn"}, 0))

	assert.False(t, svc.IsAuthenticated(ctx))
	_, err := svc.Me(ctx)
	assert.ErrorIs(t, err, model.ErrSessionExpired)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Me(ctx)
	assert.ErrorIs(t, err, model.ErrNotAuthenticated)
}

func TestAuthService_IsAuthenticatedFallsBackToBearer(t *testing.T) {
	_, svc, _, ctx := setup(t)
	assert.False(t, svc.IsAuthenticated(ctx))

	assert.True(t, svc.IsAuthenticated(apiclient.WithToken(ctx, accessToken(t, time.Hour))))
	assert.False(t, svc.IsAuthenticated(apiclient.WithToken(ctx, accessToken(t, -time.Minute))))
	assert.False(t, svc.IsAuthenticated(apiclient.WithToken(ctx, "garbage")))

	// without a session cookie the header alone still counts
	assert.True(t, svc.IsAuthenticated(apiclient.WithToken(context.Background(), accessToken(t, time.Hour))))
}

func TestSafeRedirect(t *testing.T) {
	cases := map[string]string{
		"":                  "/",
		"/checkout":         "/checkout",
		"/orders?page=2":    "/orders?page=2",
		"//evil.example":    "/",
		"https://evil.test": "/",
		"/\\evil.example":   "/",
		"checkout":          "/",
	}
	for in, want := range cases {
		assert.Equal(t, want, model.SafeRedirect(in), in)
	}
}
