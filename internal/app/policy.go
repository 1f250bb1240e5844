package app

type accessTier int

const (
	tierPublic accessTier = iota
	tierProtected
	tierAdmin
)

func (t accessTier) String() string {
	switch t {
	case tierPublic:
		return "public"
	case tierProtected:
		return "protected"
	case tierAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

type accessRule struct {
	tier        accessTier
	rateLimited bool
}

var (
	public      = accessRule{tier: tierPublic}
	protected   = accessRule{tier: tierProtected}
	adminOnly   = accessRule{tier: tierAdmin}
	rateLimited = accessRule{tier: tierPublic, rateLimited: true}
)

// procedure names an operation of the API together with the rule guarding it.
type procedure struct {
	name string
	rule accessRule
}

// accessPolicy is the single source of authorization for every operation. It
// is keyed by method and chi route pattern, as declared in api/api.yaml.
// Routes missing from the table are treated as admin-only.
var accessPolicy = map[string]procedure{
	"GET /healthcheck":  {"health.check", public},
	"GET /openapi.json": {"openapi.document", public},

	"GET /movies":         {"movie.getAll", public},
	"POST /movies":        {"movie.create", adminOnly},
	"GET /movies/{id}":    {"movie.getById", public},
	"PUT /movies/{id}":    {"movie.update", adminOnly},
	"DELETE /movies/{id}": {"movie.delete", adminOnly},

	"GET /theaters":         {"theater.getAll", public},
	"POST /theaters":        {"theater.create", adminOnly},
	"GET /theaters/{id}":    {"theater.getById", public},
	"PUT /theaters/{id}":    {"theater.update", adminOnly},
	"DELETE /theaters/{id}": {"theater.delete", adminOnly},

	"GET /theaters/{id}/screens": {"screen.getByTheaterId", public},
	"POST /screens":              {"screen.create", adminOnly},
	"GET /screens/{id}":          {"screen.getById", public},
	"PUT /screens/{id}":          {"screen.update", adminOnly},
	"DELETE /screens/{id}":       {"screen.delete", adminOnly},

	"GET /screens/{id}/seats":          {"seat.getByScreenId", public},
	"POST /seats":                      {"seat.create", adminOnly},
	"GET /seats/{id}":                  {"seat.getById", public},
	"PATCH /seats/{id}/booking-status": {"seat.updateBookingStatus", protected},

	"GET /shows":         {"show.getAll", public},
	"POST /shows":        {"show.create", adminOnly},
	"GET /shows/search":  {"show.getFiltered", public},
	"GET /shows/{id}":    {"show.getById", public},
	"PUT /shows/{id}":    {"show.update", adminOnly},
	"DELETE /shows/{id}": {"show.delete", adminOnly},

	"GET /shows/{id}/seats":                    {"seat.getByShowId", public},
	"POST /shows/{showId}/seats/{seatId}/hold": {"seat.hold", protected},
	"GET /admin/shows":                         {"show.getAllForAdmin", adminOnly},

	"POST /bookings":           {"booking.create", protected},
	"POST /bookings/checkout":  {"booking.checkout", protected},
	"GET /bookings/{id}":       {"booking.getById", protected},
	"GET /users/{id}/bookings": {"booking.getByUserId", protected},
	"GET /admin/bookings":      {"booking.getAll", adminOnly},

	"POST /payments":              {"payment.create", protected},
	"GET /payments/{id}":          {"payment.getById", protected},
	"PATCH /payments/{id}/status": {"payment.updateStatus", adminOnly},
	"GET /users/{id}/payments":    {"payment.getByUserId", protected},

	"GET /users":      {"user.getAll", adminOnly},
	"POST /users":     {"user.create", adminOnly},
	"GET /users/me":   {"user.me", protected},
	"GET /users/{id}": {"user.getById", protected},

	"GET /auth/signin/google":   {"auth.signInGoogle", rateLimited},
	"GET /auth/callback/google": {"auth.googleCallback", rateLimited},
	"POST /auth/signin":         {"auth.signIn", rateLimited},
	"POST /auth/signout":        {"auth.signOut", public},
	"GET /auth/session":         {"auth.session", protected},
}

func procedureFor(method, pattern string) procedure {
	proc, ok := accessPolicy[method+" "+pattern]
	if !ok {
		return procedure{name: pattern, rule: adminOnly}
	}

	return proc
}

// permits reports whether session may call a procedure guarded by rule.
// A nil session is an anonymous caller.
func (rule accessRule) permits(session *Session) (authenticated, allowed bool) {
	switch rule.tier {
	case tierPublic:
		return session != nil, true
	case tierProtected:
		return session != nil, session != nil
	default:
		return session != nil, session.IsAdmin()
	}
}

// canAccessUser reports whether the caller may read or act on resources owned
// by userID.
func canAccessUser(session *Session, userID string) bool {
	return session != nil && (session.IsAdmin() || session.UserID == userID)
}
