package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-storefront/internal/config"
	"bookstore-storefront/internal/infrastructure/cache"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/jwt"
)

var sessionCfg = config.SessionConfig{CookieName: "session_id", MaxAge: 3600, TTL: time.Hour}

func signedToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.Claims{
		UserID: uuid.NewString(),
		Role:   role,
		Type:   "access",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("backend"))
	require.NoError(t, err)
	return token
}

type seen struct {
	sessionID string
	token     string
	requestID string
}

func newRouter(opener *session.Opener, out *seen, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Session(sessionCfg, opener))
	handlers := append(extra, func(c *gin.Context) {
		ctx := c.Request.Context()
		out.sessionID = session.IDFromContext(ctx)
		out.token = apiclient.TokenFromContext(ctx)
		out.requestID = c.GetString(ContextKeyRequestID)
		c.Status(http.StatusNoContent)
	})
	r.GET("/whoami", handlers...)
	return r
}

func TestSession_IssuesCookieWhenMissing(t *testing.T) {
	var got seen
	r := newRouter(session.NewOpener(cache.NewMemoryCache(), time.Hour), &got)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, cookies[0].Value, got.sessionID)
	assert.Empty(t, got.token)
	assert.NotEmpty(t, got.requestID)
	assert.Equal(t, got.requestID, w.Header().Get("X-Request-ID"))
}

func TestSession_ReplacesInvalidCookie(t *testing.T) {
	var got seen
	r := newRouter(session.NewOpener(cache.NewMemoryCache(), time.Hour), &got)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "../../etc"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	_, err := uuid.Parse(got.sessionID)
	assert.NoError(t, err)
	assert.Len(t, w.Result().Cookies(), 1)
}

func TestSession_AttachesStoredToken(t *testing.T) {
	opener := session.NewOpener(cache.NewMemoryCache(), time.Hour)
	sessionID := uuid.NewString()
	require.NoError(t, opener.Open(sessionID).Set(context.Background(), session.KeyAuthToken, "stored-token", 0))

	var got seen
	r := newRouter(opener, &got)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
	req.Header.Set("Authorization", "Bearer header-token")
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, sessionID, got.sessionID)
	assert.Equal(t, "stored-token", got.token, "session token wins over the header")
	assert.Equal(t, "req-42", got.requestID)
	assert.Empty(t, w.Result().Cookies(), "valid cookie is not reissued")
}

func TestSession_FallsBackToBearerHeader(t *testing.T) {
	var got seen
	r := newRouter(session.NewOpener(cache.NewMemoryCache(), time.Hour), &got)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "header-token", got.token)
}

func TestAuthAndAdminMiddleware(t *testing.T) {
	inspector := jwt.NewInspector("")
	var got seen
	r := newRouter(session.NewOpener(cache.NewMemoryCache(), time.Hour), &got, AuthMiddleware(inspector), AdminMiddleware())

	cases := []struct {
		name   string
		token  string
		status int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"garbage", "not-a-jwt", http.StatusUnauthorized},
		{"customer", signedToken(t, "user"), http.StatusForbidden},
		{"admin", signedToken(t, "admin"), http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
