package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cinebook/booking-api/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

var errUnverifiedEmail = errors.New("the identity provider did not verify the email address")

// IdentityProvider drives the authorization-code flow of an external OAuth
// provider.
type IdentityProvider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*domain.OAuthIdentity, error)
}

type GoogleIdentityProvider struct {
	config *oauth2.Config
}

func NewGoogleIdentityProvider(cfg GoogleConfig) *GoogleIdentityProvider {
	return &GoogleIdentityProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoints.Google,
			Scopes:       []string{"openid", "email", "profile"},
		},
	}
}

func (g *GoogleIdentityProvider) Name() string {
	return "google"
}

func (g *GoogleIdentityProvider) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

type googleUserInfo struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (g *GoogleIdentityProvider) Exchange(ctx context.Context, code string) (*domain.OAuthIdentity, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request failed with status %d", resp.StatusCode)
	}

	var info googleUserInfo

	err = json.NewDecoder(resp.Body).Decode(&info)
	if err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	if !info.EmailVerified {
		return nil, errUnverifiedEmail
	}

	name := info.Name
	if name == "" {
		name = info.Email
	}

	return &domain.OAuthIdentity{
		Provider: g.Name(),
		Subject:  info.Subject,
		Email:    info.Email,
		Name:     name,
		Image:    info.Picture,
	}, nil
}
