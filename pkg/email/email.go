package email

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"os"
	"strings"
	"text/template"

	"go-portfolio-backend/config"
)

// Environment keys for the mail account. Looked up on every call rather than
// at startup so the availability gate reflects live deployment state.
const (
	envEmailUser        = "EMAIL_USER"
	envEmailAppPassword = "EMAIL_APP_PASSWORD"
)

// EmailService relays contact submissions via SMTP (Zoho profile by default).
// Mail is self-addressed: the configured account is both sender and
// recipient, with Reply-To pointing at the visitor.
type EmailService struct {
	host string
	port string
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName   string
	SenderEmail  string
	ProjectLabel string
	Message      string
}

// NewEmailService creates a new email service with the configured SMTP relay
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
	}
}

// contactEmailTemplate is the HTML template for contact form emails.
// All interpolated values are escaped with EscapeHTML before execution,
// hence text/template rather than html/template.
const contactEmailTemplate = `<div style="font-family: system-ui, sans-serif; max-width: 560px; margin: 0 auto;">
  <h2 style="color: #1a1a1a;">New contact form submission</h2>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 8px 0; border-bottom: 1px solid #eee;"><strong>Name</strong></td><td style="padding: 8px 0; border-bottom: 1px solid #eee;">{{.SenderName}}</td></tr>
    <tr><td style="padding: 8px 0; border-bottom: 1px solid #eee;"><strong>Email</strong></td><td style="padding: 8px 0; border-bottom: 1px solid #eee;">{{.SenderEmail}}</td></tr>
    <tr><td style="padding: 8px 0; border-bottom: 1px solid #eee;"><strong>Project type</strong></td><td style="padding: 8px 0; border-bottom: 1px solid #eee;">{{.ProjectLabel}}</td></tr>
  </table>
  <h3 style="color: #1a1a1a; margin-top: 24px;">Message</h3>
  <p style="white-space: pre-wrap; color: #333;">{{.Message}}</p>
</div>`

// htmlEscaper replaces the five HTML-significant characters in a single
// pass, so entities produced by one replacement are never re-escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes user-supplied text for embedding in the HTML body
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// headerSanitizer flattens line breaks so user text can never terminate a
// header line and smuggle additional headers into the message.
var headerSanitizer = strings.NewReplacer(
	"\r\n", " ",
	"\r", " ",
	"\n", " ",
)

// sanitizeHeader makes a user-supplied value safe for use in a header
func sanitizeHeader(s string) string {
	return headerSanitizer.Replace(s)
}

// credentials resolves the mail account from the process environment
func (s *EmailService) credentials() (user, password string) {
	return os.Getenv(envEmailUser), os.Getenv(envEmailAppPassword)
}

// IsConfigured checks if the email service has a usable mail account
func (s *EmailService) IsConfigured() bool {
	user, password := s.credentials()
	return s.host != "" && user != "" && password != ""
}

// SendContactEmail relays a contact form submission to the configured inbox
func (s *EmailService) SendContactEmail(data ContactEmailData) error {
	user, password := s.credentials()
	if user == "" || password == "" {
		return fmt.Errorf("email service is not configured")
	}

	msg, err := composeMessage(user, data)
	if err != nil {
		return fmt.Errorf("failed to compose email: %w", err)
	}

	// Setup SMTP authentication (submission over STARTTLS)
	auth := smtp.PlainAuth("", user, password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, user, []string{user}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// composeMessage builds the full MIME message: headers plus a
// multipart/alternative body carrying a plain-text part and an HTML part.
func composeMessage(account string, data ContactEmailData) ([]byte, error) {
	tmpl, err := template.New("contact").Parse(contactEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	var htmlBody bytes.Buffer
	escaped := ContactEmailData{
		SenderName:   EscapeHTML(data.SenderName),
		SenderEmail:  EscapeHTML(data.SenderEmail),
		ProjectLabel: EscapeHTML(data.ProjectLabel),
		Message:      EscapeHTML(data.Message),
	}
	if err := tmpl.Execute(&htmlBody, escaped); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	textBody := fmt.Sprintf(
		"Name: %s\nEmail: %s\nProject type: %s\n\nMessage:\n%s\n",
		data.SenderName, data.SenderEmail, data.ProjectLabel, data.Message,
	)

	// Header values built from user input are flattened to a single line,
	// and the subject is additionally RFC 2047 encoded: it always carries a
	// non-ASCII dash, and German visitor names bring umlauts. QEncoding
	// leaves pure-ASCII input untouched.
	subject := fmt.Sprintf("Portfolio contact: %s – %s",
		sanitizeHeader(data.SenderName), sanitizeHeader(data.ProjectLabel))

	var buf bytes.Buffer
	alt := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", account)
	fmt.Fprintf(&buf, "To: %s\r\n", account)
	fmt.Fprintf(&buf, "Reply-To: %s\r\n", sanitizeHeader(data.SenderEmail))
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", alt.Boundary())
	fmt.Fprintf(&buf, "\r\n")

	textPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	fmt.Fprint(textPart, textBody)

	htmlPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	fmt.Fprint(htmlPart, htmlBody.String())

	if err := alt.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
