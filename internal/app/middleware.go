package app

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the session token, if any, into a Session stored in
// the request context. An invalid or expired token is dropped together with
// its cookie and the request continues anonymously.
func (app *Application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")
		w.Header().Add("Vary", "Cookie")

		token := sessionTokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := app.parseSessionToken(token)
		if err != nil {
			app.contextGetLogger(r).Debug("discarding session token", "error", err)
			app.clearSessionCookie(w)

			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, contextSetSession(r, session))
	})
}

// enforcePolicy runs inside the generated wrapper, once chi has matched the
// route, and applies the accessPolicy entry of the matched route pattern.
func (app *Application) enforcePolicy(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proc := procedureFor(r.Method, routePattern(r))

		if proc.rule.rateLimited && !app.limiter.allow(clientIP(r)) {
			app.metrics.recordDenied(r.Context(), proc, "rate_limited")
			app.rateLimitExceededResponse(w, r)
			return
		}

		authenticated, allowed := proc.rule.permits(contextGetSession(r))
		if !allowed {
			if !authenticated {
				app.metrics.recordDenied(r.Context(), proc, "unauthenticated")
				app.unauthorizedAccessResponse(w, r)
				return
			}

			app.metrics.recordDenied(r.Context(), proc, "forbidden")
			app.contextGetLogger(r).Warn("forbidden procedure call", "procedure", proc.name, "tier", proc.rule.tier.String())
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}

	return rctx.RoutePattern()
}

type ipRateLimiter struct {
	mu        sync.Mutex
	enabled   bool
	limit     rate.Limit
	burst     int
	clients   map[string]*client
	lastSweep time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPRateLimiter(cfg LimiterConfig) *ipRateLimiter {
	return &ipRateLimiter{
		enabled: cfg.Enabled,
		limit:   rate.Limit(cfg.RPS),
		burst:   cfg.Burst,
		clients: make(map[string]*client),
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	if l == nil || !l.enabled {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	if now.Sub(l.lastSweep) > time.Minute {
		for key, c := range l.clients {
			if now.Sub(c.lastSeen) > 3*time.Minute {
				delete(l.clients, key)
			}
		}

		l.lastSweep = now
	}

	c, found := l.clients[ip]
	if !found {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}

	c.lastSeen = now

	return c.limiter.Allow()
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
