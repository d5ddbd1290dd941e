// Package telemetry emits pipeline events and exceptions to the structured
// log. Consumers downstream ship these lines to the monitoring backend, so
// properties must never contain raw PII (email addresses are masked, IPs are
// hashed before they reach this package).
package telemetry

import (
	"log/slog"

	"github.com/spaarke-dev/spaakre-website/internal/pkg/errs"
	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"
)

type SlogTelemetry struct {
	logger *slog.Logger
}

var _ commands.Telemetry = (*SlogTelemetry)(nil)

func NewSlogTelemetry(logger *slog.Logger) *SlogTelemetry {
	return &SlogTelemetry{logger: logger}
}

func (t *SlogTelemetry) Event(name string, properties map[string]string) {
	attrs := make([]any, 0, 2+2*len(properties))
	attrs = append(attrs, "event", name)
	for k, v := range properties {
		attrs = append(attrs, k, v)
	}
	t.logger.Info("telemetry event", attrs...)
}

func (t *SlogTelemetry) Exception(err error, properties map[string]string) {
	attrs := make([]any, 0, 4+2*len(properties))
	attrs = append(attrs, "error", err)
	for k, v := range properties {
		attrs = append(attrs, k, v)
	}
	attrs = append(attrs, "stack", errs.ExtractStackLines(err, 8))
	t.logger.Error("telemetry exception", attrs...)
}
