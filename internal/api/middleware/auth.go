package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
)

// Context keys for storing user information
type contextKey string

const userIDKey contextKey = "user_id"

// SessionName is the cookie holding the session issued by the auth
// service. This service only reads it; it never issues sessions.
const SessionName = "postboard_session"

// sessionUserKey is the session value holding the requester identity
const sessionUserKey = "user_id"

// AuthMiddleware extracts a verified requester identity from either a
// Bearer JWT or a session cookie. Issuing tokens and sessions is the
// auth service's job; this middleware only verifies what it is handed.
type AuthMiddleware struct {
	jwtSecret []byte
	store     *sessions.CookieStore
}

// NewAuthMiddleware creates an auth middleware verifying HS256 Bearer
// tokens signed with jwtSecret and session cookies sealed with
// cookieSecret.
func NewAuthMiddleware(jwtSecret, cookieSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: []byte(jwtSecret),
		store:     sessions.NewCookieStore([]byte(cookieSecret)),
	}
}

// RequireAuth ensures the request carries a valid requester identity.
// If not authenticated, returns 401. If authenticated, injects the
// user id into the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, errMsg := m.identify(r)
		if userID == "" {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s reason=%s",
				r.RemoteAddr, r.Method, r.URL.Path, errMsg)
			writeAuthError(w, errMsg)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the requester identity if present but does not
// require it. Used by public endpoints.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := m.identify(r)
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identify resolves the requester identity from the request. A Bearer
// token takes precedence over a session cookie. Returns the identity
// and, when empty, a human-readable reason.
func (m *AuthMiddleware) identify(r *http.Request) (string, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", "Invalid Authorization header format. Expected: Bearer <token>"
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		userID, err := m.verifyToken(token)
		if err != nil {
			return "", "Invalid or expired token"
		}
		if userID == "" {
			return "", "Missing subject in token"
		}
		return userID, ""
	}

	if userID := m.sessionUser(r); userID != "" {
		return userID, ""
	}

	return "", "Missing credentials"
}

// verifyToken parses and verifies an HS256 JWT, returning its subject
func (m *AuthMiddleware) verifyToken(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// sessionUser reads the requester identity from the session cookie.
// Returns empty string when no valid session is present.
func (m *AuthMiddleware) sessionUser(r *http.Request) string {
	session, err := m.store.Get(r, SessionName)
	if err != nil || session.IsNew {
		return ""
	}
	userID, _ := session.Values[sessionUserKey].(string)
	return userID
}

// GetUserID extracts the requester identity from the request context.
// Returns empty string if not authenticated.
func GetUserID(r *http.Request) string {
	return GetUserIDFromContext(r.Context())
}

// GetUserIDFromContext extracts the requester identity from a context
func GetUserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

// SetTestUserID sets the requester identity in the context for testing
// purposes. This function should ONLY be used in tests.
func SetTestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"AuthenticationRequired","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
