package email

import (
	"mime"
	"strings"
	"testing"

	"go-portfolio-backend/config"

	"github.com/stretchr/testify/assert"
)

// headerValue extracts one header line from a raw message
func headerValue(t *testing.T, raw, name string) string {
	t.Helper()
	headers, _, found := strings.Cut(raw, "\r\n\r\n")
	assert.True(t, found, "message has no header/body separator")
	for _, line := range strings.Split(headers, "\r\n") {
		if value, ok := strings.CutPrefix(line, name+": "); ok {
			return value
		}
	}
	t.Fatalf("header %s not found", name)
	return ""
}

// decodedSubject returns the RFC 2047 decoded subject of a raw message
func decodedSubject(t *testing.T, raw string) string {
	t.Helper()
	subject, err := new(mime.WordDecoder).DecodeHeader(headerValue(t, raw, "Subject"))
	assert.NoError(t, err)
	return subject
}

func TestEscapeHTML(t *testing.T) {
	t.Run("Should escape the five significant characters in one pass", func(t *testing.T) {
		got := EscapeHTML(`<script>&"'</script>`)
		assert.Equal(t, "&lt;script&gt;&amp;&quot;&#39;&lt;/script&gt;", got)
	})

	t.Run("Should not re-escape entities produced by the same pass", func(t *testing.T) {
		// A lone ampersand escapes exactly once, even next to other targets
		assert.Equal(t, "&amp;&lt;", EscapeHTML("&<"))
	})

	t.Run("Should pass harmless text through unchanged", func(t *testing.T) {
		assert.Equal(t, "Jane Doe", EscapeHTML("Jane Doe"))
	})
}

func TestComposeMessage(t *testing.T) {
	data := ContactEmailData{
		SenderName:   "Jane Doe",
		SenderEmail:  "jane@example.com",
		ProjectLabel: "RAG System",
		Message:      "I need a retrieval system for my docs.",
	}

	msg, err := composeMessage("owner@portfolio.dev", data)
	assert.NoError(t, err)
	raw := string(msg)

	t.Run("Should be self-addressed with Reply-To set to the visitor", func(t *testing.T) {
		assert.Contains(t, raw, "From: owner@portfolio.dev\r\n")
		assert.Contains(t, raw, "To: owner@portfolio.dev\r\n")
		assert.Contains(t, raw, "Reply-To: jane@example.com\r\n")
	})

	t.Run("Should carry name and project label in the subject", func(t *testing.T) {
		assert.Equal(t, "Portfolio contact: Jane Doe – RAG System", decodedSubject(t, raw))
	})

	t.Run("Should contain both a plain-text and an HTML part", func(t *testing.T) {
		assert.Contains(t, raw, "Content-Type: multipart/alternative")
		assert.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8")
		assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8")
		assert.Contains(t, raw, "Name: Jane Doe\nEmail: jane@example.com\nProject type: RAG System")
		assert.Contains(t, raw, "I need a retrieval system for my docs.")
	})
}

func TestComposeMessageEscapesUserText(t *testing.T) {
	data := ContactEmailData{
		SenderName:   `<script>&"'</script>`,
		SenderEmail:  "jane@example.com",
		ProjectLabel: "Other",
		Message:      `Please <b>help</b> with my "project" & more, it is urgent!`,
	}

	msg, err := composeMessage("owner@portfolio.dev", data)
	assert.NoError(t, err)
	raw := string(msg)

	assert.Contains(t, raw, "&lt;script&gt;&amp;&quot;&#39;&lt;/script&gt;")
	assert.Contains(t, raw, "Please &lt;b&gt;help&lt;/b&gt; with my &quot;project&quot; &amp; more")
	assert.NotContains(t, raw, "<script>")
}

func TestComposeMessageHeaderInjection(t *testing.T) {
	t.Run("Should flatten line breaks smuggled through the name", func(t *testing.T) {
		data := ContactEmailData{
			SenderName:   "Jane\r\nX-Injected: evil",
			SenderEmail:  "jane@example.com",
			ProjectLabel: "Other",
			Message:      "I need a retrieval system for my docs.",
		}

		msg, err := composeMessage("owner@portfolio.dev", data)
		assert.NoError(t, err)
		raw := string(msg)

		// The payload must never start a header line of its own
		assert.NotContains(t, raw, "\r\nX-Injected: evil")
		assert.Equal(t, "Portfolio contact: Jane X-Injected: evil – Other", decodedSubject(t, raw))
	})

	t.Run("Should keep Reply-To on a single line", func(t *testing.T) {
		data := ContactEmailData{
			SenderName:   "Jane Doe",
			SenderEmail:  "jane@example.com\r\nBcc: spam@evil.example",
			ProjectLabel: "Other",
			Message:      "I need a retrieval system for my docs.",
		}

		msg, err := composeMessage("owner@portfolio.dev", data)
		assert.NoError(t, err)
		raw := string(msg)

		assert.NotContains(t, raw, "\r\nBcc:")
		assert.Contains(t, headerValue(t, raw, "Reply-To"), "jane@example.com")
	})
}

func TestComposeMessageEncodesNonASCIISubject(t *testing.T) {
	data := ContactEmailData{
		SenderName:   "Jürgen Müller",
		SenderEmail:  "juergen@example.de",
		ProjectLabel: "AI Chatbot",
		Message:      "Ich brauche einen Chatbot für meine Website, bitte.",
	}

	msg, err := composeMessage("owner@portfolio.dev", data)
	assert.NoError(t, err)
	raw := string(msg)

	// The raw header stays ASCII; the umlauts survive decoding
	assert.True(t, strings.HasPrefix(headerValue(t, raw, "Subject"), "=?UTF-8?"))
	assert.Equal(t, "Portfolio contact: Jürgen Müller – AI Chatbot", decodedSubject(t, raw))
}

func TestIsConfigured(t *testing.T) {
	cfg := &config.Config{SMTPHost: "smtp.zoho.eu", SMTPPort: "587"}
	svc := NewEmailService(cfg)

	t.Run("Should be unavailable without credentials", func(t *testing.T) {
		t.Setenv("EMAIL_USER", "")
		t.Setenv("EMAIL_APP_PASSWORD", "")
		assert.False(t, svc.IsConfigured())
	})

	t.Run("Should be unavailable with only one secret", func(t *testing.T) {
		t.Setenv("EMAIL_USER", "owner@portfolio.dev")
		t.Setenv("EMAIL_APP_PASSWORD", "")
		assert.False(t, svc.IsConfigured())
	})

	t.Run("Should be available with both secrets", func(t *testing.T) {
		t.Setenv("EMAIL_USER", "owner@portfolio.dev")
		t.Setenv("EMAIL_APP_PASSWORD", "app-password")
		assert.True(t, svc.IsConfigured())
	})
}
