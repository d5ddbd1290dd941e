package request

import (
	"strings"

	"github.com/spaarke-dev/spaakre-website/internal/domain/submission"
)

// Field checks stay out of the binding tags on purpose: the domain validator
// must see every field and report all failures together, while gin binding
// stops at the first offense.

type ContactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Company      string `json:"company"`
	Reason       string `json:"reason"`
	Message      string `json:"message"`
	Honeypot     string `json:"hp"`
	CaptchaToken string `json:"captchaToken"`
}

// ToDomain normalizes the raw fields (trim once, immutable afterwards) and
// splits off the CAPTCHA token, which is transport detail rather than
// submission data.
func (r *ContactRequest) ToDomain() (submission.Contact, string) {
	return submission.Contact{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Company:  strings.TrimSpace(r.Company),
		Reason:   strings.TrimSpace(r.Reason),
		Message:  strings.TrimSpace(r.Message),
		Honeypot: strings.TrimSpace(r.Honeypot),
	}, strings.TrimSpace(r.CaptchaToken)
}

type EarlyReleaseRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	CaptchaToken string `json:"captchaToken"`
}

func (r *EarlyReleaseRequest) ToDomain() (submission.Signup, string) {
	return submission.Signup{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
	}, strings.TrimSpace(r.CaptchaToken)
}
