package app

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
)

// AuthSignInGoogle starts the authorization-code flow. The state value lives
// in the server-side session until the provider redirects back.
func (app *Application) AuthSignInGoogle(w http.ResponseWriter, r *http.Request) {
	state, err := newOAuthState()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), oauthStateKey, state)

	http.Redirect(w, r, app.identity.AuthCodeURL(state), http.StatusFound)
}

func (app *Application) AuthGoogleCallback(w http.ResponseWriter, r *http.Request, params api.AuthGoogleCallbackParams) {
	logger := app.contextGetLogger(r)

	expected := app.sessionManager.PopString(r.Context(), oauthStateKey)

	if params.Error != nil {
		logger.Warn("identity provider returned an error", "error", *params.Error)
		app.unauthorizedAccessResponse(w, r)
		return
	}

	if expected == "" || params.State == nil ||
		subtle.ConstantTimeCompare([]byte(expected), []byte(*params.State)) != 1 {
		logger.Warn("oauth state mismatch")
		app.badRequestResponse(w, r, errors.New("invalid or expired oauth state"))
		return
	}

	if params.Code == nil || *params.Code == "" {
		app.badRequestResponse(w, r, errors.New("missing authorization code"))
		return
	}

	identity, err := app.identity.Exchange(r.Context(), *params.Code)
	if err != nil {
		logger.Warn("oauth code exchange failed", "provider", app.identity.Name(), "error", err)
		app.unauthorizedAccessResponse(w, r)
		return
	}

	user, err := app.userRepo.UpsertOAuth(r.Context(), *identity)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("user signed in", "user_id", user.ID, "provider", identity.Provider)

	app.startSession(w, r, user)
}

// AuthSignIn authenticates users that have a password.
func (app *Application) AuthSignIn(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.SignInRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user, err := app.userRepo.GetByEmail(r.Context(), strings.ToLower(string(input.Email)))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("sign-in attempt for non-existent user")
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !match {
		logger.Warn("sign-in attempt with invalid credentials", "user_id", user.ID)
		app.invalidCredentialsResponse(w, r)
		return
	}

	logger.Info("user signed in", "user_id", user.ID, "provider", "credentials")

	app.startSession(w, r, user)
}

// AuthSignOut drops the session cookie. Issued tokens stay valid until they
// expire.
func (app *Application) AuthSignOut(w http.ResponseWriter, r *http.Request) {
	app.clearSessionCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) AuthSession(w http.ResponseWriter, r *http.Request) {
	session := contextGetSession(r)

	err := app.writeJSON(w, http.StatusOK, toSessionResponse(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) startSession(w http.ResponseWriter, r *http.Request, user *domain.User) {
	token, expiresAt, err := app.issueSessionToken(user, time.Now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.setSessionCookie(w, token, expiresAt)

	session := &Session{
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}

	err = app.writeJSON(w, http.StatusOK, toSessionResponse(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func newOAuthState() (string, error) {
	b := make([]byte, 32)

	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

func toSessionResponse(session *Session) api.SessionResponse {
	return api.SessionResponse{
		Expires: session.ExpiresAt,
		User: api.SessionUser{
			Id:   session.UserID,
			Role: api.Role(session.Role),
		},
	}
}
