package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Mailer sends plain-text notification emails over SMTP. When the SMTP
// host is unconfigured every send becomes a logged no-op so email never
// blocks the request path.
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
	log  *zap.Logger

	// sendMail is swappable in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(host, port, user, pass, from string, log *zap.Logger) *Mailer {
	if log == nil {
		log = zap.NewNop()
	}
	if from == "" {
		from = user
	}
	return &Mailer{
		host: host, port: port, user: user, pass: pass, from: from,
		log:      log,
		sendMail: smtp.SendMail,
	}
}

// Enabled reports whether SMTP is configured.
func (m *Mailer) Enabled() bool {
	return m.host != "" && m.from != ""
}

// Send delivers one message. Failures are returned but callers treat
// email as advisory and log rather than fail the request.
func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		m.log.Debug("smtp not configured, skipping email", zap.String("to", to))
		return nil
	}
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}
	addr := m.host + ":" + m.port
	if err := m.sendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

// SendHighRiskAlert emails the user after a high-risk assessment.
func (m *Mailer) SendHighRiskAlert(to, kind string, riskPct float64) error {
	subject := "Health Assessment Alert"
	body := fmt.Sprintf(
		"Your recent %s assessment indicates a high risk level (%.1f%%).\n\n"+
			"Please consult a healthcare professional as soon as possible.\n\n"+
			"This is an automated message from your medical assistant.",
		kind, riskPct)
	return m.Send(to, subject, body)
}

// SendWelcome emails a newly registered user.
func (m *Mailer) SendWelcome(to, name string) error {
	if name == "" {
		name = "there"
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nYour medical assistant account is ready. "+
			"You can now chat about symptoms, run health risk assessments, and track your history.\n\n"+
			"Stay healthy!",
		name)
	return m.Send(to, "Welcome to your medical assistant", body)
}
