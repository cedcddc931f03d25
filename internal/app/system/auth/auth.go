// Package auth manages JWT cookie sessions.
//
// A SessionManager signs tokens, sets and clears the session cookie,
// and provides the RequireSignedIn middleware that verifies the token,
// loads the user, and injects a SessionUser into the request context.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

// SessionUser is what RequireSignedIn injects into r.Context().
type SessionUser struct {
	ID    primitive.ObjectID
	Name  string
	Email string
}

// UserFetcher loads a user by ID so the middleware can reject tokens
// for deleted accounts. It returns (nil, nil) when the user does not
// exist.
type UserFetcher func(ctx context.Context, id primitive.ObjectID) (*SessionUser, error)

type sessionClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// SessionManager signs and verifies session cookies.
type SessionManager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	log        *zap.Logger
	fetchUser  UserFetcher
	errw       webjson.ErrorWriter
}

// NewSessionManager builds a manager. The secret must be at least 32
// characters; a short secret is a configuration mistake worth failing
// loudly on.
func NewSessionManager(secret, cookieName string, ttl time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("jwt secret too short (%d chars); provide at least 32", len(secret))
	}
	if cookieName == "" {
		return nil, errors.New("session cookie name is empty")
	}
	if ttl <= 0 {
		ttl = 168 * time.Hour
	}
	return &SessionManager{
		secret:     []byte(secret),
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
		log:        logger,
		errw:       webjson.ErrorWriter{Log: logger},
	}, nil
}

// SetUserFetcher wires the user lookup used by RequireSignedIn.
// Called once at startup after the database is connected.
func (sm *SessionManager) SetUserFetcher(fn UserFetcher) {
	sm.fetchUser = fn
}

// IssueCookie signs a token for the user and sets the session cookie.
func (sm *SessionManager) IssueCookie(w http.ResponseWriter, userID primitive.ObjectID) error {
	now := time.Now()
	claims := sessionClaims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sm.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sm.secret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sm.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(sm.ttl.Seconds()),
		HttpOnly: true,
		Secure:   sm.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

// ClearCookie expires the session cookie.
func (sm *SessionManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sm.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sm.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// verify parses and validates the signed token, returning the user ID.
func (sm *SessionManager) verify(tokenStr string) (primitive.ObjectID, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return sm.secret, nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(claims.UserID)
}

// RequireSignedIn verifies the session cookie, confirms the user still
// exists, and injects the SessionUser into the request context.
//
// Missing cookie and bad token are 401; a token for a deleted user is
// 404 so the client can distinguish "log in again" from "account gone".
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sm.cookieName)
		if err != nil || cookie.Value == "" {
			webjson.Write(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized - No Token Provided"})
			return
		}

		userID, err := sm.verify(cookie.Value)
		if err != nil {
			webjson.Write(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized - Invalid Token"})
			return
		}

		if sm.fetchUser == nil {
			sm.log.Error("session middleware has no user fetcher configured")
			webjson.Write(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
			return
		}

		user, err := sm.fetchUser(r.Context(), userID)
		if err != nil {
			sm.errw.WriteError(w, r, err)
			return
		}
		if user == nil {
			webjson.Write(w, http.StatusNotFound, map[string]string{"error": "User not found"})
			return
		}

		next.ServeHTTP(w, withUser(r, user))
	})
}

type ctxKey struct{}

// CurrentUser returns the user injected by RequireSignedIn.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(ctxKey{}).(*SessionUser)
	return u, ok
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, u))
}

// WithTestUser injects a SessionUser into the request context.
// Test helper that simulates what RequireSignedIn does.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}
