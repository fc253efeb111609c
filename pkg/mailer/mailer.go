package mailer

import (
	"fmt"
	"net/smtp"

	"meem-backend/pkg/utils"
)

// Mailer sends notification emails. Failures are delivery errors and are
// non-fatal to the operations that trigger them.
type Mailer interface {
	Send(to, subject, body string) error
	SendHTML(to, subject, htmlBody string) error
}

type smtpMailer struct {
	config utils.EmailConfig
}

func NewSMTPMailer(config utils.EmailConfig) Mailer {
	return &smtpMailer{
		config: config,
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n",
		m.config.From, to, subject)
	return m.send(to, []byte(headers+body))
}

func (m *smtpMailer) SendHTML(to, subject, htmlBody string) error {
	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		m.config.From, to, subject)
	return m.send(to, []byte(headers+htmlBody))
}

func (m *smtpMailer) send(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, message); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
