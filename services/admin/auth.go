package admin

import (
	"fmt"

	"cazpay/utils"

	"golang.org/x/crypto/bcrypt"
)

const sessionSubject = "admin"

// Authenticator holds the shared admin password (as a bcrypt hash) and the
// session signing secret.
type Authenticator struct {
	passwordHash []byte
	secret       []byte
}

// NewAuthenticator accepts either a bcrypt hash or a plaintext password; the plaintext
// is hashed immediately and not retained.
func NewAuthenticator(password, passwordHash, secret string) (*Authenticator, error) {
	a := &Authenticator{secret: []byte(secret)}
	switch {
	case passwordHash != "":
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		a.passwordHash = []byte(passwordHash)
	case password != "":
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		a.passwordHash = h
	}
	if len(a.secret) == 0 {
		return nil, fmt.Errorf("session secret must be set")
	}
	return a, nil
}

// CheckPassword compares password with the configured admin password.
func (a *Authenticator) CheckPassword(password string) error {
	if len(a.passwordHash) == 0 {
		return ErrAdminNotConfigured
	}
	if password == "" {
		return ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}

// IssueSession signs a new admin session token.
func (a *Authenticator) IssueSession() (string, error) {
	return utils.GenerateToken(a.secret, sessionSubject, SessionTTL)
}

// VerifySession accepts only unexpired tokens signed with our secret for the admin subject.
func (a *Authenticator) VerifySession(token string) error {
	if token == "" {
		return ErrInvalidSession
	}
	sub, err := utils.ValidateToken(a.secret, token)
	if err != nil || sub != sessionSubject {
		return ErrInvalidSession
	}
	return nil
}
