package store

import (
	"context"
	"log/slog"

	"github.com/spaarke-dev/spaakre-website/internal/domain/submission"
	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"
)

// NoopStore accepts and discards submissions when no database is configured.
// Dropping data silently would hide a misconfiguration, so every save logs a
// warning.
type NoopStore struct {
	logger *slog.Logger
}

var _ commands.SubmissionStore = (*NoopStore)(nil)

func NewNoopStore(logger *slog.Logger) *NoopStore {
	return &NoopStore{logger: logger}
}

func (s *NoopStore) SaveContact(_ context.Context, _ submission.Contact, _ string) error {
	s.logger.Warn("DATABASE_URL not set, contact submission not persisted")
	return nil
}

func (s *NoopStore) SaveSignup(_ context.Context, _ submission.Signup, _ string) error {
	s.logger.Warn("DATABASE_URL not set, early release signup not persisted")
	return nil
}
