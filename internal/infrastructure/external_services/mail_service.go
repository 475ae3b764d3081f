package external_services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
)

// EmailService delivers HTML mail over SMTP with PLAIN auth.
type EmailService struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string
	send        func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// EmailService factory
func NewEmailService(host, port, username, appPassword, from string) *EmailService {
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
		send:        smtp.SendMail,
	}
}

// make sure EmailService implements contract.IEmailService
var _ contract.IEmailService = (*EmailService)(nil)

func (es *EmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(to, "\r\n") || strings.ContainsAny(subject, "\r\n") {
		return fmt.Errorf("invalid header value")
	}
	msg := buildMessage(es.From, to, subject, body)
	var auth smtp.Auth
	if es.Username != "" {
		auth = smtp.PlainAuth("", es.Username, es.AppPassword, es.Host)
	}
	addr := fmt.Sprintf("%s:%s", es.Host, es.Port)
	if err := es.send(addr, auth, es.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	return []byte(
		fmt.Sprintf(
			"To: %s\r\n"+
				"From: %s\r\n"+
				"Subject: %s\r\n"+
				"MIME-Version: 1.0\r\n"+
				"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
				"\r\n"+
				"%s\r\n",
			to, from, subject, body,
		),
	)
}
