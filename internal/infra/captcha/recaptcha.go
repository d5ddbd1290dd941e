// Package captcha verifies challenge tokens against the reCAPTCHA
// siteverify endpoint.
package captcha

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spaarke-dev/spaakre-website/internal/pkg/errs"
	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

type RecaptchaVerifier struct {
	secret    string
	verifyURL string
	client    *http.Client
	logger    *slog.Logger
}

var _ commands.CaptchaVerifier = (*RecaptchaVerifier)(nil)

func NewRecaptchaVerifier(secret string, logger *slog.Logger) *RecaptchaVerifier {
	return &RecaptchaVerifier{
		secret:    secret,
		verifyURL: defaultVerifyURL,
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    logger,
	}
}

// WithVerifyURL overrides the siteverify endpoint. Tests point this at a
// local stub server.
func (v *RecaptchaVerifier) WithVerifyURL(u string) *RecaptchaVerifier {
	v.verifyURL = u
	return v
}

// Verify fails open when no secret is configured: environments without
// CAPTCHA set up must not reject every submission.
func (v *RecaptchaVerifier) Verify(ctx context.Context, token string) (bool, error) {
	if v.secret == "" {
		v.logger.Warn("RECAPTCHA_SECRET_KEY not set, skipping verification")
		return true, nil
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, errs.Wrap(err, "failed to build siteverify request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, errs.Wrap(errs.ErrCaptchaUnavailable, err.Error())
	}
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, errs.Wrap(errs.ErrCaptchaUnavailable, "failed to decode siteverify response")
	}

	return body.Success, nil
}
