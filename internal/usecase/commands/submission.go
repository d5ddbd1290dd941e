package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spaarke-dev/spaakre-website/internal/domain/submission"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/errs"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/iphash"
	"github.com/spaarke-dev/spaakre-website/internal/ratelimit"
)

// notifyTimeout bounds the notification attempt so a slow email provider
// cannot hold the request open indefinitely.
const notifyTimeout = 10 * time.Second

type SubmissionCommands interface {
	// SubmitContact runs the contact form through the pipeline. forwardedFor
	// is the raw X-Forwarded-For header value; only its hash is ever kept.
	SubmitContact(ctx context.Context, form submission.Contact, captchaToken, forwardedFor string) Outcome

	// SubmitSignup runs an early-release signup through the same pipeline.
	// Unlike the contact form, a CAPTCHA token is mandatory here.
	SubmitSignup(ctx context.Context, form submission.Signup, captchaToken, forwardedFor string) Outcome
}

type submissionUseCaseImpl struct {
	limiter   ratelimit.Limiter
	captcha   CaptchaVerifier
	store     SubmissionStore
	notifier  Notifier
	telemetry Telemetry
	logger    *slog.Logger
}

func NewSubmissionCommands(
	limiter ratelimit.Limiter,
	captcha CaptchaVerifier,
	store SubmissionStore,
	notifier Notifier,
	telemetry Telemetry,
	logger *slog.Logger,
) SubmissionCommands {
	return &submissionUseCaseImpl{
		limiter:   limiter,
		captcha:   captcha,
		store:     store,
		notifier:  notifier,
		telemetry: telemetry,
		logger:    logger,
	}
}

// pipelineRun captures the per-variant pieces of one submission; the step
// ordering and short-circuit rules are shared by both forms.
type pipelineRun struct {
	form            string // telemetry prefix: "contact" or "early_release"
	honeypot        string
	captchaToken    string
	captchaRequired bool
	forwardedFor    string
	email           string
	validate        func() submission.Result
	persist         func(ctx context.Context, identityKey string) error
	notify          func(ctx context.Context) error
}

func (uc *submissionUseCaseImpl) SubmitContact(ctx context.Context, form submission.Contact, captchaToken, forwardedFor string) Outcome {
	return uc.run(ctx, pipelineRun{
		form:         "contact",
		honeypot:     form.Honeypot,
		captchaToken: captchaToken,
		forwardedFor: forwardedFor,
		email:        form.Email,
		validate:     func() submission.Result { return submission.ValidateContact(form) },
		persist: func(ctx context.Context, identityKey string) error {
			return uc.store.SaveContact(ctx, form, identityKey)
		},
		notify: func(ctx context.Context) error {
			return uc.notifier.SendContact(ctx, form)
		},
	})
}

func (uc *submissionUseCaseImpl) SubmitSignup(ctx context.Context, form submission.Signup, captchaToken, forwardedFor string) Outcome {
	return uc.run(ctx, pipelineRun{
		form:            "early_release",
		captchaToken:    captchaToken,
		captchaRequired: true,
		forwardedFor:    forwardedFor,
		email:           form.Email,
		validate:        func() submission.Result { return submission.ValidateSignup(form) },
		persist: func(ctx context.Context, identityKey string) error {
			return uc.store.SaveSignup(ctx, form, identityKey)
		},
		notify: func(ctx context.Context) error {
			return uc.notifier.SendSignup(ctx, form)
		},
	})
}

// run executes the pipeline steps in strict order: honeypot, captcha, rate
// limit, validation, persistence, notification. The first failing step
// terminates the run.
func (uc *submissionUseCaseImpl) run(ctx context.Context, in pipelineRun) Outcome {
	// Bots fill the hidden field; accept silently so they get no signal
	// that they were detected.
	if in.honeypot != "" {
		uc.telemetry.Event(in.form+".bot_detected", nil)
		return Outcome{Code: OutcomeBotSilentOK}
	}

	identityKey := iphash.FromHeader(in.forwardedFor)

	// CAPTCHA runs before the limiter so a failed challenge never consumes
	// a rate-limit slot.
	if in.captchaRequired && in.captchaToken == "" {
		uc.telemetry.Event(in.form+".captcha_failed", map[string]string{"ipHash": identityKey})
		return Outcome{Code: OutcomeCaptchaFailed}
	}
	if in.captchaToken != "" {
		ok, err := uc.captcha.Verify(ctx, in.captchaToken)
		if err != nil {
			uc.telemetry.Exception(err, map[string]string{"form": in.form, "step": "captcha"})
			uc.logger.Error("captcha verification errored", "form", in.form, "error", err)
			return Outcome{Code: OutcomeInternalError}
		}
		if !ok {
			uc.telemetry.Event(in.form+".captcha_failed", map[string]string{"ipHash": identityKey})
			return Outcome{Code: OutcomeCaptchaFailed}
		}
	}

	decision, err := uc.limiter.Check(ctx, identityKey)
	if err != nil {
		// A broken limiter backend must not block legitimate traffic.
		uc.logger.Warn("rate limiter unavailable, allowing request", "form", in.form, "error", err)
		decision = ratelimit.Decision{Allowed: true}
	}
	if !decision.Allowed {
		uc.telemetry.Event(in.form+".rate_limited", map[string]string{"ipHash": identityKey})
		return Outcome{Code: OutcomeRateLimited, RetryAfter: decision.RetryAfter}
	}

	if res := in.validate(); !res.Valid() {
		uc.telemetry.Event(in.form+".validation_failed", map[string]string{"ipHash": identityKey})
		return Outcome{Code: OutcomeValidationError, Fields: res.Fields}
	}

	// Persistence is detached from the request context: once a submission is
	// accepted, a disconnecting caller must not abort the write.
	if err := in.persist(context.WithoutCancel(ctx), identityKey); err != nil {
		uc.telemetry.Exception(err, map[string]string{"form": in.form, "step": "persist"})
		uc.logger.Error("failed to persist submission", "form", in.form, "error", err)
		return Outcome{Code: OutcomeInternalError}
	}

	// Notification is attempted with a bounded wait; its failure never
	// changes the outcome the caller sees.
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := in.notify(notifyCtx); err != nil {
		if errors.Is(err, errs.ErrMailerNotConfigured) {
			uc.logger.Warn("notification skipped", "form", in.form, "reason", err)
		} else {
			uc.telemetry.Exception(err, map[string]string{"form": in.form, "step": "notify"})
			uc.logger.Error("notification failed", "form", in.form, "error", err)
		}
	}

	uc.telemetry.Event(in.form+".success", map[string]string{"email": maskEmail(in.email)})
	return Outcome{Code: OutcomeOK}
}

// maskEmail keeps the local part and hides the domain, matching what the
// telemetry sink is allowed to see.
func maskEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return email
	}
	return local + "@***"
}
