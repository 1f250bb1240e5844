package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cinebook/booking-api/internal/app"
	"github.com/cinebook/booking-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// keys whose values differ between runs
var keysToIgnore = map[string]struct{}{
	"timestamp":   {},
	"requestId":   {},
	"createdAt":   {},
	"updatedAt":   {},
	"bookingTime": {},
	"id":          {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	actual = cleanValue(actual)
	expected = cleanValue(expected)

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k := range v {
			if _, ok := keysToIgnore[k]; ok {
				delete(v, k)
				continue
			}
			v[k] = cleanValue(v[k])
		}
	case []any:
		for i := range v {
			v[i] = cleanValue(v[i])
		}
	}

	return v
}

func decodeBody[T any](t testing.TB, res *http.Response) T {
	var out T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))

	return out
}

// sessionCookie signs a session token the same way sign-in does.
func sessionCookie(t testing.TB, userID string, role domain.Role) []*http.Cookie {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(domain.SessionMaxAge).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(authSecret))
	require.NoError(t, err)

	return []*http.Cookie{{Name: app.SessionCookieName, Value: token}}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), `
		TRUNCATE show_seat_locks, bookings, payments, shows, seats, screens, theaters, movies, users
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
}

func insertTestUser(t testing.TB, app *TestApp, user *domain.User) *domain.User {
	require.NoError(t, app.Repos.Users.Create(context.Background(), user))
	return user
}

func defaultTestUser() *domain.User {
	return &domain.User{
		ID:    TestUserId,
		Name:  TestUserName,
		Email: TestUserEmail,
		Role:  domain.RoleUser,
	}
}

func defaultTestMovie() *domain.Movie {
	description := TestMovieDescription

	return &domain.Movie{
		Title:       TestMovieTitle,
		Duration:    TestMovieDuration,
		Description: &description,
	}
}

func insertTestMovie(t testing.TB, app *TestApp, movie *domain.Movie) *domain.Movie {
	require.NoError(t, app.Repos.Movies.Create(context.Background(), movie))
	return movie
}

// catalogue is a movie playing once on a small screen.
type catalogue struct {
	Movie   *domain.Movie
	Theater *domain.Theater
	Screen  *domain.Screen
	Show    *domain.Show
}

func insertTestCatalogue(t testing.TB, app *TestApp, startTime time.Time) catalogue {
	ctx := context.Background()

	movie := insertTestMovie(t, app, defaultTestMovie())

	theater := &domain.Theater{Name: TestTheaterName, Location: TestTheaterLocation}
	require.NoError(t, app.Repos.Theaters.Create(ctx, theater))

	screen := &domain.Screen{
		TheaterID: theater.ID,
		Name:      TestScreenName,
		Rows:      TestScreenRows,
		Columns:   TestScreenColumns,
	}
	require.NoError(t, app.Repos.Screens.CreateWithSeats(ctx, screen))

	show := &domain.Show{
		MovieID:   movie.ID,
		TheaterID: theater.ID,
		ScreenID:  screen.ID,
		StartTime: startTime,
		Price:     decimal.RequireFromString(TestShowPrice),
	}
	require.NoError(t, app.Repos.Shows.CreateChecked(ctx, show))

	return catalogue{Movie: movie, Theater: theater, Screen: screen, Show: show}
}

func countRows(t testing.TB, db *pgxpool.Pool, table string) int {
	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))

	return n
}
