package response

import (
	"net/http"

	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"
)

type SubmissionResponse struct {
	OK     bool              `json:"ok"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// FromOutcome maps a pipeline outcome to its HTTP status and body. Bot
// detections render exactly like success so automated clients learn nothing.
func FromOutcome(o commands.Outcome) (int, SubmissionResponse) {
	switch o.Code {
	case commands.OutcomeOK, commands.OutcomeBotSilentOK:
		return http.StatusOK, SubmissionResponse{OK: true}
	case commands.OutcomeCaptchaFailed:
		return http.StatusBadRequest, SubmissionResponse{Error: string(commands.OutcomeCaptchaFailed)}
	case commands.OutcomeRateLimited:
		return http.StatusTooManyRequests, SubmissionResponse{Error: string(commands.OutcomeRateLimited)}
	case commands.OutcomeValidationError:
		return http.StatusBadRequest, SubmissionResponse{Error: string(commands.OutcomeValidationError), Fields: o.Fields}
	default:
		return http.StatusInternalServerError, SubmissionResponse{Error: string(commands.OutcomeInternalError)}
	}
}
