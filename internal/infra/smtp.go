package infra

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"supplementdb/internal/config"
)

// Mailer wraps SMTP configuration for mailing ingest run summaries, with
// the exported report optionally attached.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Enabled reports whether an SMTP host was configured at all.
func (m *Mailer) Enabled() bool { return m.host != "" }

// SendRunSummary mails a plain-text import summary; attachPath may be
// empty.
func (m *Mailer) SendRunSummary(to, subject, body, attachPath string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if attachPath != "" {
		if _, err := e.AttachFile(attachPath); err != nil {
			return fmt.Errorf("mailer: attach report: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
