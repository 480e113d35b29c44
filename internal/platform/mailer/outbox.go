package mailer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// OutboxMailer writes messages to a writer instead of sending them.
// It is used for local development when no SMTP relay is configured.
type OutboxMailer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewOutboxMailer returns an OutboxMailer writing to w, or stdout when w is nil.
func NewOutboxMailer(w io.Writer) *OutboxMailer {
	if w == nil {
		w = os.Stdout
	}
	return &OutboxMailer{w: w}
}

// Send writes the plain-text part of the message.
func (m *OutboxMailer) Send(ctx context.Context, to, subject, text, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := fmt.Fprintf(m.w, "To: %s\nSubject: %s\n\n%s\n\n", to, subject, text); err != nil {
		return fmt.Errorf("failed to write outbox message: %w", err)
	}
	slog.DebugContext(ctx, "mail written to outbox", "subject", subject)
	return nil
}
