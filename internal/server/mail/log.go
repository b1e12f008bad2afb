package mail

import (
	"context"

	"journal-api/internal/logging"
)

// LogMailer writes mail to the log instead of delivering it. Useful in
// development and tests when no SMTP relay is configured.
type LogMailer struct {
	logger logging.Logger
}

func NewLogMailer(logger logging.Logger) *LogMailer {
	return &LogMailer{logger: logger.With("module", "mail")}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Info(ctx, "outbound mail (not delivered)", "to", to, "subject", subject, "body", body)
	return nil
}
