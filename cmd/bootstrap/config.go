package bootstrap

import (
	"github.com/spaarke-dev/spaakre-website/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
