package bootstrap

import (
	"context"
	"log/slog"

	"github.com/spaarke-dev/spaakre-website/internal/infra/db"
	"github.com/spaarke-dev/spaakre-website/internal/infra/store"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/clock"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/config"
	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewSubmissionStore,
	),
)

// NewSubmissionStore picks the Postgres store when DATABASE_URL is set and
// the discard-with-warning store otherwise. A configured-but-unreachable
// database fails startup; a missing one does not.
func NewSubmissionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (commands.SubmissionStore, error) {
	if cfg.DB.URL == "" {
		logger.Warn("DATABASE_URL not set, submissions will not be persisted")
		return store.NewNoopStore(logger), nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return store.NewPostgresStore(pool, clk), nil
}
