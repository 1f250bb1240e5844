package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	sessionContextKey = contextKey("session")

	SessionCookieName = "session_token"
	oauthStateKey     = "oauth_state"
)

var errInvalidSessionToken = errors.New("invalid session token")

// Session is the authenticated principal of a request.
type Session struct {
	UserID    string
	Role      domain.Role
	ExpiresAt time.Time
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == domain.RoleAdmin
}

type sessionClaims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

func (app *Application) issueSessionToken(user *domain.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(domain.SessionMaxAge)

	claims := sessionClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(app.config.Auth.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func (app *Application) parseSessionToken(tokenString string) (*Session, error) {
	var claims sessionClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(app.config.Auth.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidSessionToken, err)
	}

	if claims.Subject == "" || (claims.Role != domain.RoleUser && claims.Role != domain.RoleAdmin) {
		return nil, errInvalidSessionToken
	}

	return &Session{
		UserID:    claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// sessionTokenFromRequest prefers the session cookie and falls back to a
// bearer token for non-browser clients.
func sessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

func (app *Application) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(domain.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   app.config.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (app *Application) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   app.config.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func contextSetSession(r *http.Request, session *Session) *http.Request {
	ctx := context.WithValue(r.Context(), sessionContextKey, session)
	return r.WithContext(ctx)
}

// contextGetSession returns nil for anonymous requests.
func contextGetSession(r *http.Request) *Session {
	session, ok := r.Context().Value(sessionContextKey).(*Session)
	if !ok {
		return nil
	}

	return session
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger := app.logger.With("request_id", middleware.GetReqID(r.Context()))

	if session := contextGetSession(r); session != nil {
		logger = logger.With("user_id", session.UserID)
	}

	return logger
}
