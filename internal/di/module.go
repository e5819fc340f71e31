package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/pawshope/internal/adapter/paypal"
	"github.com/polkiloo/pawshope/internal/app"
	"github.com/polkiloo/pawshope/internal/config"
	"github.com/polkiloo/pawshope/internal/logger"
	"github.com/polkiloo/pawshope/internal/metrics"
	"github.com/polkiloo/pawshope/internal/pkg/auth"
	"github.com/polkiloo/pawshope/internal/server/http/router"
	"github.com/polkiloo/pawshope/internal/storage"
	"github.com/polkiloo/pawshope/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		storage.Module,
		paypal.Module,
		fx.Provide(func(c *paypal.HTTPClient) usecase.PaymentGateway { return c }),
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
