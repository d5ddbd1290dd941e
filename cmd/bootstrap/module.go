package bootstrap

import (
	"github.com/spaarke-dev/spaakre-website/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	RateLimitModule,
	components.CollaboratorModule,
	components.UseCaseModule,
	components.HandlerModule,
)
