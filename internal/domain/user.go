package domain

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SessionMaxAge is the lifetime of an issued session token.
const SessionMaxAge = 30 * 24 * time.Hour

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID            string
	Name          string
	Email         string
	Role          Role
	Image         *string
	Password      password
	OAuthProvider *string
	OAuthSubject  *string
	CreatedAt     time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type password struct {
	plaintext *string
	Hash      []byte
}

func (p *password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}

	p.plaintext = &plaintext
	p.Hash = hash

	return nil
}

// Matches reports false without error for users that have no password,
// e.g. accounts created through an OAuth provider.
func (p *password) Matches(plaintext string) (bool, error) {
	if len(p.Hash) == 0 {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

// OAuthIdentity is the profile returned by an identity provider after a
// successful code exchange.
type OAuthIdentity struct {
	Provider string
	Subject  string
	Email    string
	Name     string
	Image    string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetById(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	// UpsertOAuth links the identity to an existing user with the same
	// provider subject or email, or creates a USER account.
	UpsertOAuth(ctx context.Context, identity OAuthIdentity) (*User, error)
}
