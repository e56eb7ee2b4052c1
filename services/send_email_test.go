package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/devan2636/astrodev-backend/models"
)

func TestNewMailerRequiresFullConfiguration(t *testing.T) {
	require.Nil(t, NewMailer("", "noreply@astrodev.dev"))
	require.Nil(t, NewMailer("re_key", ""))
	require.NotNil(t, NewMailer("re_key", "noreply@astrodev.dev"))
}

// A nil mailer drops sends instead of failing, so callers never need to guard.
func TestNilMailerDropsSend(t *testing.T) {
	var mailer *Mailer
	require.NoError(t, mailer.Send("subject", "<p>body</p>", []string{"owner@astrodev.dev"}))
}

func TestContactNotificationEscapesVisitorInput(t *testing.T) {
	subject, body := ContactNotification(models.ContactMessage{
		Name:      "Visitor <script>alert(1)</script>",
		Email:     "visitor@example.com",
		Message:   "Hello & goodbye",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})

	require.Contains(t, subject, "Visitor")
	require.NotContains(t, body, "<script>")
	require.Contains(t, body, "&lt;script&gt;")
	require.Contains(t, body, "Hello &amp; goodbye")
	require.Contains(t, body, "visitor@example.com")
}
