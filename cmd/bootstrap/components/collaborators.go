package components

import (
	"log/slog"

	"github.com/spaarke-dev/spaakre-website/internal/infra/captcha"
	"github.com/spaarke-dev/spaakre-website/internal/infra/mailer"
	"github.com/spaarke-dev/spaakre-website/internal/infra/telemetry"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/clock"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/config"
	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"

	"go.uber.org/fx"
)

var CollaboratorModule = fx.Module("collaborators",
	fx.Provide(
		fx.Annotate(
			NewCaptchaVerifier,
			fx.As(new(commands.CaptchaVerifier)),
		),
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
		fx.Annotate(
			telemetry.NewSlogTelemetry,
			fx.As(new(commands.Telemetry)),
		),
	),
)

func NewCaptchaVerifier(cfg config.Config, logger *slog.Logger) *captcha.RecaptchaVerifier {
	return captcha.NewRecaptchaVerifier(cfg.Captcha.Secret, logger)
}

func NewNotifier(cfg config.Config, clk clock.Clock, logger *slog.Logger) *mailer.SendGridNotifier {
	return mailer.NewSendGridNotifier(cfg.Email, clk, logger)
}
