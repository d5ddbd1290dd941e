package commands

// OutcomeCode identifies the terminal state of one pipeline execution.
// Exactly one applies per request; the first failing step wins.
type OutcomeCode string

const (
	OutcomeOK              OutcomeCode = "OK"
	OutcomeBotSilentOK     OutcomeCode = "BOT_SILENT_OK"
	OutcomeCaptchaFailed   OutcomeCode = "CAPTCHA_FAILED"
	OutcomeRateLimited     OutcomeCode = "RATE_LIMITED"
	OutcomeValidationError OutcomeCode = "VALIDATION_ERROR"
	OutcomeInternalError   OutcomeCode = "INTERNAL_ERROR"
)

// Outcome is the closed result union of a submission. These are expected
// control-flow branches, not faults, so they are values rather than errors.
type Outcome struct {
	Code OutcomeCode

	// RetryAfter is the seconds-until-retry hint, set only for OutcomeRateLimited.
	RetryAfter int

	// Fields maps failing field names to messages, set only for
	// OutcomeValidationError.
	Fields map[string]string
}
