package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"

	"law_office_site_go/config"
	"law_office_site_go/models"
	"law_office_site_go/services/i18n"
)

var (
	// ErrMailNotConfigured means no relay credential was available at startup;
	// the contact send path is disabled and callers should report 503.
	ErrMailNotConfigured = errors.New("email relay not configured")
	// ErrSendFailed means the relay rejected or failed a send attempt. The
	// underlying transport error is logged server-side only.
	ErrSendFailed = errors.New("failed to send email")
)

// Mailer relays contact submissions through Resend. The client is created once
// at startup and reused; each send is an independent operation, so concurrent
// dispatches are safe.
type Mailer struct {
	client   *resend.Client
	from     string
	to       string
	testMode bool
	timeout  time.Duration
}

func NewMailer(cfg *config.Config) *Mailer {
	m := &Mailer{
		from:     fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		to:       cfg.ContactEmail,
		testMode: cfg.EmailTestMode,
		timeout:  cfg.MailTimeout,
	}
	if cfg.ResendAPIKey != "" {
		m.client = resend.NewClient(cfg.ResendAPIKey)
	}
	return m
}

// Configured reports whether the send path is usable. Test mode counts as
// configured since dispatches are logged instead of sent.
func (m *Mailer) Configured() bool {
	return m.testMode || m.client != nil
}

// Dispatch builds the bilingual notification email for a validated submission
// and sends it synchronously. A single attempt is made; the submitter retries
// by resubmitting.
func (m *Mailer) Dispatch(sub models.ContactSubmission) error {
	if !m.Configured() {
		return ErrMailNotConfigured
	}

	ref := uuid.New().String()
	email := BuildContactEmail(sub, m.from, m.to, ref)

	// In development mode, log the email instead of sending
	if m.testMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (development mode - not actually sent), ref %s", ref)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("Error sending contact email via Resend (ref %s): %v", ref, err)
		return ErrSendFailed
	}

	log.Printf("Contact email sent via Resend (ID: %s, ref %s)", sent.Id, ref)
	return nil
}

type contactEmailRow struct {
	Label string
	Value template.HTML
}

type contactEmailData struct {
	Dir     string
	Heading string
	Rows    []contactEmailRow
	Footer  string
}

// Row values are escaped before insertion, so they pass through as-is.
var contactEmailTmpl = template.Must(template.New("contact_email").Parse(`<div dir="{{.Dir}}" style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #1a2b4a;">{{.Heading}}</h2>
<table cellpadding="8" cellspacing="0" style="border-collapse: collapse; width: 100%;">
{{range .Rows}}<tr style="border-bottom: 1px solid #e2e8f0;">
<td style="font-weight: bold; vertical-align: top; white-space: nowrap;">{{.Label}}</td>
<td>{{.Value}}</td>
</tr>
{{end}}</table>
<p style="color: #8a94a6; font-size: 12px;">{{.Footer}}</p>
</div>`))

// BuildContactEmail renders the outbound notification for a submission. The
// Hebrew variant is selected only when lang is exactly "he"; any other value
// selects the non-Hebrew variant. Every user-supplied field is escaped before
// embedding; the message converts newlines to line breaks after escaping.
func BuildContactEmail(sub models.ContactSubmission, from, to, ref string) *models.OutboundEmail {
	lang := "en"
	dir := "ltr"
	if sub.Lang == "he" {
		lang = "he"
		dir = "rtl"
	}

	rows := []contactEmailRow{
		{Label: i18n.Translate(lang, "email.label.name"), Value: template.HTML(escapeField(sub.Name))},
		{Label: i18n.Translate(lang, "email.label.phone"), Value: template.HTML(escapeField(sub.Phone))},
		{Label: i18n.Translate(lang, "email.label.case_type"), Value: template.HTML(escapeField(sub.CaseType))},
	}
	if sub.Email != "" {
		rows = append(rows, contactEmailRow{
			Label: i18n.Translate(lang, "email.label.email"),
			Value: template.HTML(escapeField(sub.Email)),
		})
	}
	if sub.Message != "" {
		message := escapeField(stripMarkup(sub.Message))
		message = strings.ReplaceAll(message, "\r\n", "\n")
		message = strings.ReplaceAll(message, "\n", "<br />")
		rows = append(rows, contactEmailRow{
			Label: i18n.Translate(lang, "email.label.message"),
			Value: template.HTML(message),
		})
	}

	data := contactEmailData{
		Dir:     dir,
		Heading: i18n.Translate(lang, "email.heading.contact"),
		Rows:    rows,
		Footer:  i18n.Translate(lang, "email.footer.reference", map[string]interface{}{"ref": ref}),
	}

	var buf bytes.Buffer
	if err := contactEmailTmpl.Execute(&buf, data); err != nil {
		// The template is static and the data shape fixed; execution cannot fail
		log.Printf("Error rendering contact email body: %v", err)
	}

	return &models.OutboundEmail{
		From:    from,
		To:      to,
		Subject: i18n.Translate(lang, "email.subject.contact"),
		HTML:    buf.String(),
	}
}

// escapeField escapes the HTML-significant characters of a user-supplied value
func escapeField(s string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	).Replace(s)
}

var markupPolicy = bluemonday.StrictPolicy()

// stripMarkup removes any HTML markup from free text, returning plain text.
// Sanitization entity-escapes its output, so it is unescaped here and the
// result escaped exactly once by the caller.
func stripMarkup(s string) string {
	return html.UnescapeString(markupPolicy.Sanitize(s))
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *models.OutboundEmail) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 EMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %s", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTML, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum number of characters without
// splitting a multi-byte rune
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}
