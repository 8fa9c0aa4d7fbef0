package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret    = "test-jwt-secret"
	testCookieSecret = "test-cookie-secret-32-bytes-long"
)

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// echoUserHandler records the identity the middleware injected
func echoUserHandler(captured *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidBearerToken(t *testing.T) {
	m := NewAuthMiddleware(testJWTSecret, testCookieSecret)

	var captured string
	handler := m.RequireAuth(echoUserHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/my-posts", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testJWTSecret, "user-1"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", captured)
}

func TestRequireAuth_MissingCredentials(t *testing.T) {
	m := NewAuthMiddleware(testJWTSecret, testCookieSecret)

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/my-posts", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AuthenticationRequired")
}

func TestRequireAuth_BadSignature(t *testing.T) {
	m := NewAuthMiddleware(testJWTSecret, testCookieSecret)

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", "user-1"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	m := NewAuthMiddleware(testJWTSecret, testCookieSecret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	m := NewAuthMiddleware(testJWTSecret, testCookieSecret)

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_SessionCookie(t *testing.T) {
	m := NewAuthMiddleware(testJWTSecret, testCookieSecret)

	// Seal a session the way the auth service would
	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	seedRec := httptest.NewRecorder()
	session, err := m.store.Get(seed, SessionName)
	require.NoError(t, err)
	session.Values[sessionUserKey] = "user-7"
	require.NoError(t, session.Save(seed, seedRec))
	cookies := seedRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	var captured string
	handler := m.RequireAuth(echoUserHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/my-posts", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-7", captured)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	m := NewAuthMiddleware(testJWTSecret, testCookieSecret)

	var captured string
	handler := m.OptionalAuth(echoUserHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, captured)
}

func TestOptionalAuth_LoadsIdentityWhenPresent(t *testing.T) {
	m := NewAuthMiddleware(testJWTSecret, testCookieSecret)

	var captured string
	handler := m.OptionalAuth(echoUserHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testJWTSecret, "user-3"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-3", captured)
}

func TestSetTestUserID(t *testing.T) {
	ctx := SetTestUserID(context.Background(), "user-42")
	assert.Equal(t, "user-42", GetUserIDFromContext(ctx))
}
