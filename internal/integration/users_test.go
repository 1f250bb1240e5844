package integration_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/app"
	"github.com/cinebook/booking-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UserTestSuite struct {
	BaseSuite
}

func TestUserSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(UserTestSuite))
}

func (s *UserTestSuite) TestGetCurrentUser() {
	scenarios := []Scenario{
		{
			Name:           "returns 401 when user is not logged in",
			Method:         "GET",
			URL:            "/users/me",
			ExpectedStatus: 401,
			ExpectedResponse: `{
				"code": "UNAUTHORIZED",
				"message": "You must be authenticated to access this resource"
			}`,
		},
		{
			Name:           "returns 404 when user ID in session but not found in DB",
			Method:         "GET",
			URL:            "/users/me",
			ExpectedStatus: 404,
			ExpectedResponse: `{
				"code": "NOT_FOUND",
				"message": "The requested resource not found"
			}`,
			Cookies: sessionCookie(s.T(), TestUserId, domain.RoleUser),
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				truncateAll(t, app.DB)
			},
		},
		{
			Name:           "successfully retrieves current user",
			Method:         "GET",
			URL:            "/users/me",
			ExpectedStatus: 200,
			ExpectedResponse: fmt.Sprintf(`{
				"name": "%s",
				"email": "%s",
				"role": "USER"
			}`, TestUserName, TestUserEmail),
			Cookies: sessionCookie(s.T(), TestUserId, domain.RoleUser),
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				truncateAll(t, app.DB)
				insertTestUser(t, app, defaultTestUser())
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *UserTestSuite) TestCreateUser() {
	admin := sessionCookie(s.T(), TestAdminId, domain.RoleAdmin)

	scenarios := []Scenario{
		{
			Name:             "returns 400 for request with malformed JSON",
			Method:           "POST",
			URL:              "/users",
			Body:             strings.NewReader(`{"bad":"json"`),
			Cookies:          admin,
			ExpectedStatus:   400,
			ExpectedResponse: `{"code": "BAD_REQUEST", "message": "body contains badly-formed JSON"}`,
		},
		{
			Name:           "creates a user with a lowercased email",
			Method:         "POST",
			URL:            "/users",
			Body:           strings.NewReader(`{"name": "John Doe", "email": "Test@Example.com", "password": "Test123!@#"}`),
			Cookies:        admin,
			ExpectedStatus: 201,
			ExpectedResponse: `{
				"name": "John Doe",
				"email": "test@example.com",
				"role": "USER"
			}`,
		},
		{
			Name:           "returns 409 when email already exists",
			Method:         "POST",
			URL:            "/users",
			Body:           strings.NewReader(`{"name": "John Again", "email": "test@example.com"}`),
			Cookies:        admin,
			ExpectedStatus: 409,
			ExpectedResponse: fmt.Sprintf(`{
				"code": "CONFLICT",
				"message": "%s"
			}`, domain.ErrDuplicateEmail.Error()),
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *UserTestSuite) TestSignIn() {
	user := defaultTestUser()
	s.Require().NoError(user.Password.Set(TestUserPassword))
	insertTestUser(s.T(), s.app, user)

	var cookies []*http.Cookie

	scenarios := []Scenario{
		{
			Name:           "rejects a wrong password",
			Method:         "POST",
			URL:            "/auth/signin",
			Body:           strings.NewReader(fmt.Sprintf(`{"email": "%s", "password": "Wrong123!@#"}`, TestUserEmail)),
			ExpectedStatus: 401,
			ExpectedResponse: `{
				"code": "UNAUTHORIZED",
				"message": "Invalid email or password"
			}`,
		},
		{
			Name:           "signs in with the right password",
			Method:         "POST",
			URL:            "/auth/signin",
			Body:           strings.NewReader(fmt.Sprintf(`{"email": "%s", "password": "%s"}`, TestUserEmail, TestUserPassword)),
			ExpectedStatus: 200,
			AfterTestFunc: func(t testing.TB, testApp *TestApp, res *http.Response) {
				for _, c := range res.Cookies() {
					if c.Name == app.SessionCookieName {
						cookies = append(cookies, c)
					}
				}

				require.Len(t, cookies, 1)
				assert.True(t, cookies[0].HttpOnly)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}

	Scenario{
		Name:           "the issued cookie authenticates the session",
		Method:         "GET",
		URL:            "/auth/session",
		Cookies:        cookies,
		ExpectedStatus: 200,
		AfterTestFunc: func(t testing.TB, testApp *TestApp, res *http.Response) {
			got := decodeBody[api.SessionResponse](t, res)
			assert.Equal(t, TestUserId, got.User.Id)
			assert.Equal(t, api.USER, got.User.Role)
			assert.True(t, got.Expires.After(time.Now().Add(29*24*time.Hour)))
		},
	}.Run(s.T(), s.app)
}
