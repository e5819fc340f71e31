package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/pawshope/internal/config"
)

// Module provides the admin authenticator guarding donation listings.
var Module = fx.Module("auth",
	fx.Provide(
		fx.Annotate(func() *BcryptHasher { return NewBcryptHasher(0) }, fx.As(new(PasswordHasher))),
		newAdminAuthenticator,
	),
)

func newAdminAuthenticator(cfg *config.Config, hasher PasswordHasher) *AdminAuthenticator {
	return NewAdminAuthenticator(cfg.AdminUser, cfg.AdminPasswordHash, hasher)
}
