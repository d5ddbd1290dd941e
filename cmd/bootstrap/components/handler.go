package components

import (
	"github.com/spaarke-dev/spaakre-website/internal/handler"
	"github.com/spaarke-dev/spaakre-website/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewContactHandler,
		api.NewEarlyReleaseHandler,
	),
	fx.Invoke(handler.NewRouter),
)
