package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
	"github.com/cinebook/booking-api/internal/events"
	"github.com/cinebook/booking-api/internal/mailer"
	"github.com/cinebook/booking-api/internal/mocks"
	"github.com/cinebook/booking-api/internal/validator"
	"go.opentelemetry.io/otel/metric/noop"
)

const testAuthSecret = "test-secret-with-enough-entropy-0123456789"

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: Config{
			Env:  "test",
			Auth: AuthConfig{Secret: testAuthSecret},
			Stripe: StripeConfig{
				Currency: "usd",
			},
		},
		validator:       validator.NewValidator(),
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailer:          mailer.NewMockMailer(),
		sessionManager:  scs.New(),
		identity:        &fakeIdentityProvider{},
		limiter:         newIPRateLimiter(LimiterConfig{Enabled: false}),
		userRepo:        &mocks.MockUserRepo{},
		movieRepo:       &mocks.MockMovieRepo{},
		theaterRepo:     &mocks.MockTheaterRepo{},
		screenRepo:      &mocks.MockScreenRepo{},
		seatRepo:        &mocks.MockSeatRepo{},
		showRepo:        &mocks.MockShowRepo{},
		bookingRepo:     &mocks.MockBookingRepo{},
		paymentRepo:     &mocks.MockPaymentRepo{},
		paymentProvider: &mocks.MockPaymentProvider{},
		publisher:       events.NoopPublisher{},
		metrics:         newNoopMetrics(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func newNoopMetrics() *bookingMetrics {
	metrics, err := newBookingMetrics(noop.NewMeterProvider())
	if err != nil {
		panic(err)
	}

	return metrics
}

// withSession attaches an authenticated session to r, as authenticate would.
func withSession(r *http.Request, userID string, role domain.Role) *http.Request {
	return contextSetSession(r, &Session{
		UserID:    userID,
		Role:      role,
		ExpiresAt: time.Now().Add(domain.SessionMaxAge),
	})
}

// setupTestSession loads an scs session into the request context so that
// handlers using the session manager can run outside of LoadAndSave.
func setupTestSession(t *testing.T, app *Application, r *http.Request) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	return r.WithContext(ctx)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}

		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// bearerToken issues a signed session token the way sign-in does.
func bearerToken(t *testing.T, app *Application, userID string, role domain.Role) string {
	token, _, err := app.issueSessionToken(&domain.User{ID: userID, Role: role}, time.Now())
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	return token
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		if validationResp.Code != api.UNPROCESSABLECONTENT {
			t.Errorf("Error code = %v, want %v", validationResp.Code, api.UNPROCESSABLECONTENT)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if errorResp.Code == "" {
			t.Errorf("Error code is empty")
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

type fakeIdentityProvider struct {
	identity *domain.OAuthIdentity
	err      error
	codes    []string
}

func (f *fakeIdentityProvider) Name() string {
	return "google"
}

func (f *fakeIdentityProvider) AuthCodeURL(state string) string {
	return "https://accounts.example.com/o/oauth2/auth?state=" + state
}

func (f *fakeIdentityProvider) Exchange(ctx context.Context, code string) (*domain.OAuthIdentity, error) {
	f.codes = append(f.codes, code)
	return f.identity, f.err
}
