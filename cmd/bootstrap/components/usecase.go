package components

import (
	"github.com/spaarke-dev/spaakre-website/internal/pkg/clock"
	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewSubmissionCommands,
	),
)
