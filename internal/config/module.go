package config

import "go.uber.org/fx"

// Module loads *Config once from .env, environment and command line flags.
var Module = fx.Module("config", fx.Provide(Load))
