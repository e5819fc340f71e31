package auth

import (
	"crypto/subtle"
	"errors"
)

// ErrInvalidCredentials is returned for unknown user or wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminAuthenticator verifies operator credentials against a stored bcrypt hash.
type AdminAuthenticator struct {
	user   string
	hash   string
	hasher PasswordHasher
}

// NewAdminAuthenticator creates AdminAuthenticator. An empty hash disables verification.
func NewAdminAuthenticator(user, hash string, hasher PasswordHasher) *AdminAuthenticator {
	return &AdminAuthenticator{user: user, hash: hash, hasher: hasher}
}

// Enabled reports whether admin endpoints require credentials.
func (a *AdminAuthenticator) Enabled() bool {
	return a != nil && a.hash != ""
}

// Verify checks the supplied user and password.
func (a *AdminAuthenticator) Verify(user, password string) error {
	if !a.Enabled() {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(user), []byte(a.user)) != 1 {
		return ErrInvalidCredentials
	}
	if err := a.hasher.Compare(a.hash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
