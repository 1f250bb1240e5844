package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
	"github.com/cinebook/booking-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()

	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}

	t.Fatalf("response has no %s cookie", SessionCookieName)
	return nil
}

func TestSessionToken(t *testing.T) {
	app := newTestApplication()
	now := time.Now().Truncate(time.Second)

	token, expiresAt, err := app.issueSessionToken(&domain.User{ID: testUserID, Role: domain.RoleAdmin}, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(30*24*time.Hour), expiresAt)

	session, err := app.parseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, session.UserID)
	assert.Equal(t, domain.RoleAdmin, session.Role)
	assert.True(t, session.ExpiresAt.Equal(expiresAt))

	t.Run("expired", func(t *testing.T) {
		old, _, err := app.issueSessionToken(&domain.User{ID: testUserID, Role: domain.RoleUser}, now.Add(-31*24*time.Hour))
		require.NoError(t, err)

		_, err = app.parseSessionToken(old)
		assert.ErrorIs(t, err, errInvalidSessionToken)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		other := newTestApplication(func(a *Application) {
			a.config.Auth.Secret = "some-other-secret"
		})

		_, err := other.parseSessionToken(token)
		assert.ErrorIs(t, err, errInvalidSessionToken)
	})
}

func TestSignIn(t *testing.T) {
	user := &domain.User{ID: testUserID, Name: "Jane", Email: "jane@example.com", Role: domain.RoleUser}
	require.NoError(t, user.Password.Set("Secret123!"))

	var lookedUp string

	app := newTestApplication(func(a *Application) {
		a.userRepo = &mocks.MockUserRepo{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				lookedUp = email
				if email != user.Email {
					return nil, domain.ErrRecordNotFound
				}
				return user, nil
			},
		}
	})

	t.Run("valid credentials", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodPost, "/auth/signin", api.SignInRequest{
			Email:    "Jane@Example.com",
			Password: "Secret123!",
		})

		app.AuthSignIn(w, r)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "jane@example.com", lookedUp)

		cookie := sessionCookie(t, w.Result())
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

		session, err := app.parseSessionToken(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, testUserID, session.UserID)

		var resp api.SessionResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, testUserID, resp.User.Id)
		assert.Equal(t, api.USER, resp.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodPost, "/auth/signin", api.SignInRequest{
			Email:    "jane@example.com",
			Password: "Wrong123!",
		})

		app.AuthSignIn(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("unknown user", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodPost, "/auth/signin", api.SignInRequest{
			Email:    "nobody@example.com",
			Password: "Secret123!",
		})

		app.AuthSignIn(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetSession(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/auth/session", nil)
	r = withSession(r, testUserID, domain.RoleUser)

	app.AuthSession(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, testUserID, resp.User.Id)
	assert.True(t, resp.Expires.After(time.Now().Add(29*24*time.Hour)))
}

func TestSignOut(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodPost, "/auth/signout", nil)

	app.AuthSignOut(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Negative(t, sessionCookie(t, w.Result()).MaxAge)
}

func TestSignInWithGoogle(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/auth/signin/google", nil)
	r = setupTestSession(t, app, r)

	app.AuthSignInGoogle(w, r)

	require.Equal(t, http.StatusFound, w.Code)

	state := app.sessionManager.GetString(r.Context(), oauthStateKey)
	assert.NotEmpty(t, state)
	assert.Contains(t, w.Header().Get("Location"), "state="+state)
}

func TestGoogleCallback(t *testing.T) {
	identity := &domain.OAuthIdentity{
		Provider: "google",
		Subject:  "google-sub-1",
		Email:    "jane@example.com",
		Name:     "Jane",
	}

	tests := []struct {
		name          string
		storedState   string
		params        api.AuthGoogleCallbackParams
		exchangeErr   error
		wantStatus    int
		wantExchanged bool
	}{
		{
			name:          "valid state and code",
			storedState:   "state-1",
			params:        api.AuthGoogleCallbackParams{State: ptr("state-1"), Code: ptr("code-1")},
			wantStatus:    http.StatusOK,
			wantExchanged: true,
		},
		{
			name:        "state mismatch",
			storedState: "state-1",
			params:      api.AuthGoogleCallbackParams{State: ptr("forged"), Code: ptr("code-1")},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:       "no state in session",
			params:     api.AuthGoogleCallbackParams{State: ptr("state-1"), Code: ptr("code-1")},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "provider error",
			storedState: "state-1",
			params:      api.AuthGoogleCallbackParams{State: ptr("state-1"), Error: ptr("access_denied")},
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:          "exchange failure",
			storedState:   "state-1",
			params:        api.AuthGoogleCallbackParams{State: ptr("state-1"), Code: ptr("code-1")},
			exchangeErr:   errors.New("unverified email"),
			wantStatus:    http.StatusUnauthorized,
			wantExchanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeIdentityProvider{identity: identity, err: tt.exchangeErr}
			var upserted *domain.OAuthIdentity

			app := newTestApplication(func(a *Application) {
				a.identity = provider
				a.userRepo = &mocks.MockUserRepo{
					UpsertOAuthFunc: func(ctx context.Context, id domain.OAuthIdentity) (*domain.User, error) {
						upserted = &id
						return &domain.User{ID: testUserID, Email: id.Email, Role: domain.RoleUser}, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/auth/callback/google", nil)
			r = setupTestSession(t, app, r)

			if tt.storedState != "" {
				app.sessionManager.Put(r.Context(), oauthStateKey, tt.storedState)
			}

			app.AuthGoogleCallback(w, r, tt.params)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.wantExchanged, len(provider.codes) > 0)

			// The state is single use whatever the outcome.
			assert.Empty(t, app.sessionManager.GetString(r.Context(), oauthStateKey))

			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, upserted)
				assert.Equal(t, identity.Subject, upserted.Subject)

				session, err := app.parseSessionToken(sessionCookie(t, w.Result()).Value)
				require.NoError(t, err)
				assert.Equal(t, testUserID, session.UserID)
			}
		})
	}
}
