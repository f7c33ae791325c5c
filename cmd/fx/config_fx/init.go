package config_fx

import (
	"go.uber.org/fx"

	"travelend/internal/config"
)

var Module = fx.Provide(config.Load)
