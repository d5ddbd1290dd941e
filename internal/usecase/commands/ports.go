package commands

import (
	"context"

	"github.com/spaarke-dev/spaakre-website/internal/domain/submission"
)

// Collaborator ports consumed by the submission pipeline. Implementations
// live under internal/infra; each degrades to a safe no-op when its backing
// service is not configured.

type SubmissionStore interface {
	SaveContact(ctx context.Context, form submission.Contact, identityKey string) error
	SaveSignup(ctx context.Context, form submission.Signup, identityKey string) error
}

type CaptchaVerifier interface {
	// Verify returns whether the token passed the challenge. An error means
	// the oracle could not be consulted at all, not that the token failed.
	Verify(ctx context.Context, token string) (bool, error)
}

type Notifier interface {
	SendContact(ctx context.Context, form submission.Contact) error
	SendSignup(ctx context.Context, form submission.Signup) error
}

// Telemetry is fire-and-forget: implementations must never block or fail the
// pipeline.
type Telemetry interface {
	Event(name string, properties map[string]string)
	Exception(err error, properties map[string]string)
}
