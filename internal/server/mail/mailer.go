// Package mail defines the outbound-mail contract and its implementations.
// Delivery is a leaf dependency of the password-reset flow; everything else
// in the service is mail-agnostic.
package mail

import "context"

// Mailer sends a plain-text message to a single recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
