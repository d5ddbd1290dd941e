package errs

import "errors"

// Sentinel errors for the submission pipeline's collaborators.
var (
	// ErrMailerNotConfigured is soft: the pipeline logs a warning and keeps
	// the success outcome instead of reporting a notification failure.
	ErrMailerNotConfigured = errors.New("mailer not configured")

	// ErrCaptchaUnavailable marks transport-level failures talking to the
	// CAPTCHA provider, as opposed to a rejected token.
	ErrCaptchaUnavailable = errors.New("captcha verification unavailable")
)
