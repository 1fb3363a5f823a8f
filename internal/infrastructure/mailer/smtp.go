package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
	"soko.backend/pkg/logger"
)

// SMTPMailer sends mail over plain SMTP with AUTH
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	appURL   string
}

// NewSMTPMailer creates an SMTP-backed mailer
func NewSMTPMailer(host, port, username, password, from, appURL string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		appURL:   appURL,
	}
}

// SendVerificationEmail sends the email verification link
func (m *SMTPMailer) SendVerificationEmail(ctx context.Context, to, name, token string) error {
	subject := "Verify your email address"
	link := fmt.Sprintf("%s/verify-email?token=%s", m.appURL, token)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nWelcome aboard. Please verify your email address by visiting the link below:\r\n\r\n%s\r\n\r\nThe link expires in 24 hours.\r\n",
		name, link,
	)
	return m.send(ctx, to, subject, body)
}

// SendPasswordResetEmail sends the password reset link
func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, to, name, token string) error {
	subject := "Reset your password"
	link := fmt.Sprintf("%s/reset-password?token=%s", m.appURL, token)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nWe received a request to reset your password. Visit the link below to choose a new one:\r\n\r\n%s\r\n\r\nIf you did not request this, you can ignore this email.\r\n",
		name, link,
	)
	return m.send(ctx, to, subject, body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		logger.Error(ctx, "Failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info(ctx, "Email sent",
		zap.String("to", to),
		zap.String("subject", subject))
	return nil
}

// NoopMailer discards mail, used when SMTP is not configured
type NoopMailer struct{}

func (NoopMailer) SendVerificationEmail(ctx context.Context, to, name, token string) error {
	logger.Info(ctx, "Mailer disabled, skipping verification email", zap.String("to", to))
	return nil
}

func (NoopMailer) SendPasswordResetEmail(ctx context.Context, to, name, token string) error {
	logger.Info(ctx, "Mailer disabled, skipping password reset email", zap.String("to", to))
	return nil
}
