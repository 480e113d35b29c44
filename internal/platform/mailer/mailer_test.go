package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPMailer_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     SMTPConfig
		wantErr bool
	}{
		{"missing host", SMTPConfig{Port: 587, From: "noreply@example.com"}, true},
		{"missing from", SMTPConfig{Host: "smtp.example.com", Port: 587}, true},
		{"no auth", SMTPConfig{Host: "smtp.example.com", Port: 25, From: "noreply@example.com"}, false},
		{"with auth", SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p", From: "noreply@example.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := NewSMTPMailer(tt.cfg)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cfg.From, m.from)
		})
	}
}

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	msg, err := buildMessage("noreply@example.com", "alice@example.com", "Verify your account",
		"Hello Liddell, your verification code is: 123456", "<p><strong>123456</strong></p>")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "alice@example.com")
	assert.Contains(t, out, "noreply@example.com")
	assert.Contains(t, out, "123456")
	assert.Contains(t, out, "text/html")
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	t.Parallel()

	_, err := buildMessage("noreply@example.com", "not an address", "s", "t", "")

	assert.Error(t, err)
}

func TestOutboxMailer_Send(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	m := NewOutboxMailer(&buf)

	err := m.Send(context.Background(), "alice@example.com", "Verify your account", "code: 123456", "<b>123456</b>")

	require.NoError(t, err)
	assert.Equal(t, "To: alice@example.com\nSubject: Verify your account\n\ncode: 123456\n\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestOutboxMailer_WriteFailure(t *testing.T) {
	t.Parallel()

	m := NewOutboxMailer(failingWriter{})

	err := m.Send(context.Background(), "a@example.com", "s", "t", "")

	assert.Error(t, err)
}
