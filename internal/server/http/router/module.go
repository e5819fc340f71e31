package router

import (
	"go.uber.org/fx"

	pkgAuth "github.com/polkiloo/pawshope/internal/pkg/auth"
	"github.com/polkiloo/pawshope/internal/server/http/middleware"
)

// Module builds the gin engine; the admin authenticator backs the listing guard.
var Module = fx.Module("router",
	fx.Provide(
		fx.Annotate(
			func(a *pkgAuth.AdminAuthenticator) *pkgAuth.AdminAuthenticator { return a },
			fx.As(new(middleware.CredentialVerifier)),
		),
		Setup,
	),
)
