// Package store persists accepted submissions. The Postgres implementation
// is used when DATABASE_URL is set; NoopStore covers unconfigured
// environments so the pipeline degrades instead of erroring.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spaarke-dev/spaakre-website/internal/domain/submission"
	"github.com/spaarke-dev/spaakre-website/internal/infra"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/clock"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/pgconv"
	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"
)

const insertContactSQL = `
INSERT INTO contact_submissions (id, name, email, company, reason, message, ip_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const insertSignupSQL = `
INSERT INTO early_release_signups (id, name, email, ip_hash, signed_up_at)
VALUES ($1, $2, $3, $4, $5)`

type PostgresStore struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

var _ commands.SubmissionStore = (*PostgresStore)(nil)

func NewPostgresStore(pool *pgxpool.Pool, clk clock.Clock) *PostgresStore {
	return &PostgresStore{pool: pool, clock: clk}
}

func (s *PostgresStore) SaveContact(ctx context.Context, form submission.Contact, identityKey string) error {
	_, err := s.pool.Exec(ctx, insertContactSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		pgconv.StringToPgtype(form.Name),
		pgconv.StringToPgtype(form.Email),
		pgconv.TextOrNull(form.Company),
		pgconv.StringToPgtype(form.Reason),
		pgconv.StringToPgtype(form.Message),
		pgconv.StringToPgtype(identityKey),
		pgconv.TimeToPgtype(s.clock.Now().UTC()),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to save contact submission", err)
	}
	return nil
}

func (s *PostgresStore) SaveSignup(ctx context.Context, form submission.Signup, identityKey string) error {
	_, err := s.pool.Exec(ctx, insertSignupSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		pgconv.StringToPgtype(form.Name),
		pgconv.StringToPgtype(form.Email),
		pgconv.StringToPgtype(identityKey),
		pgconv.TimeToPgtype(s.clock.Now().UTC()),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to save early release signup", err)
	}
	return nil
}
