// Package mailer sends submission notifications through SendGrid.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/spaarke-dev/spaakre-website/internal/domain/submission"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/clock"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/config"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/errs"
	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"
)

type SendGridNotifier struct {
	client *sendgrid.Client
	from   string
	to     string
	clock  clock.Clock
	logger *slog.Logger
}

var _ commands.Notifier = (*SendGridNotifier)(nil)

// NewSendGridNotifier returns a notifier even when credentials are missing;
// sends then surface ErrMailerNotConfigured, which the pipeline treats as a
// soft skip.
func NewSendGridNotifier(cfg config.EmailConfig, clk clock.Clock, logger *slog.Logger) *SendGridNotifier {
	n := &SendGridNotifier{
		from:   cfg.From,
		to:     cfg.To,
		clock:  clk,
		logger: logger,
	}
	if cfg.SendGridAPIKey != "" {
		n.client = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	}
	return n
}

func (n *SendGridNotifier) SendContact(ctx context.Context, form submission.Contact) error {
	reason := form.Reason
	if reason == "" {
		reason = "General"
	}

	body := strings.Join([]string{
		fmt.Sprintf("New website inquiry received at %s", n.timestamp()),
		"",
		fmt.Sprintf("Name:    %s", form.Name),
		fmt.Sprintf("Email:   %s", form.Email),
		fmt.Sprintf("Company: %s", orPlaceholder(form.Company)),
		fmt.Sprintf("Reason:  %s", reason),
		"",
		"Message:",
		form.Message,
	}, "\n")

	return n.send(ctx, "[Spaarke] New website inquiry - "+reason, body)
}

func (n *SendGridNotifier) SendSignup(ctx context.Context, form submission.Signup) error {
	body := strings.Join([]string{
		fmt.Sprintf("New Early Release signup at %s", n.timestamp()),
		"",
		fmt.Sprintf("Name:  %s", form.Name),
		fmt.Sprintf("Email: %s", form.Email),
	}, "\n")

	return n.send(ctx, "[Spaarke] New Early Release signup - "+form.Name, body)
}

func (n *SendGridNotifier) send(ctx context.Context, subject, body string) error {
	if n.client == nil {
		n.logger.Warn("SENDGRID_API_KEY not set, skipping email notification")
		return errs.ErrMailerNotConfigured
	}
	if n.to == "" || n.from == "" {
		n.logger.Warn("CONTACT_EMAIL_TO or SENDGRID_FROM_EMAIL not set, skipping email notification")
		return errs.ErrMailerNotConfigured
	}

	message := mail.NewSingleEmail(
		mail.NewEmail("", n.from),
		subject,
		mail.NewEmail("", n.to),
		body,
		"",
	)

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "failed to send notification email")
	}
	if resp.StatusCode >= 400 {
		return errs.New(fmt.Sprintf("sendgrid rejected notification: status %d", resp.StatusCode))
	}
	return nil
}

func (n *SendGridNotifier) timestamp() string {
	return n.clock.Now().UTC().Format("2006-01-02T15:04:05Z")
}

func orPlaceholder(s string) string {
	if s == "" {
		return "(not provided)"
	}
	return s
}
