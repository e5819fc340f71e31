package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuthenticatorVerify(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	a := NewAdminAuthenticator("admin", hash, hasher)

	cases := []struct {
		name     string
		user     string
		password string
		wantErr  bool
	}{
		{name: "valid", user: "admin", password: "s3cret"},
		{name: "wrong password", user: "admin", password: "nope", wantErr: true},
		{name: "wrong user", user: "root", password: "s3cret", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := a.Verify(tc.user, tc.password)
			if tc.wantErr && !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected invalid credentials, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestAdminAuthenticatorDisabled(t *testing.T) {
	var nilAuth *AdminAuthenticator
	if nilAuth.Enabled() {
		t.Fatal("nil authenticator must be disabled")
	}
	if err := NewAdminAuthenticator("admin", "", nil).Verify("", ""); err != nil {
		t.Fatalf("disabled authenticator must accept any credentials, got %v", err)
	}
}
