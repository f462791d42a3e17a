package mailer

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net/smtp"
	"time"

	"github.com/muhammadheryan/vastu-shakti/cmd/config"
	"github.com/muhammadheryan/vastu-shakti/model"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"go.uber.org/zap"
)

// Mailer delivers one rendered email.
type Mailer interface {
	Send(ctx context.Context, email *model.Email) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	cfg  config.EmailConfig
	send sendFunc
}

func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

// Send delivers the email over SMTP. When email is disabled the message is only logged.
// smtp.SendMail cannot be cancelled, so a context deadline abandons the wait, not the send.
func (m *SMTPMailer) Send(ctx context.Context, email *model.Email) error {
	if !m.cfg.Enabled {
		logger.Info("[Mailer] email disabled, skipping send", zap.String("to", email.To), zap.String("subject", email.Subject))
		return nil
	}
	if m.cfg.SMTPHost == "" || m.cfg.Username == "" || m.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}
	if email.To == "" {
		return fmt.Errorf("email recipient is empty")
	}

	msg, err := m.buildMessage(email)
	if err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)

	done := make(chan error, 1)
	go func() {
		done <- m.send(addr, auth, m.fromAddress(), []string{email.To}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send email to %s: %w", email.To, ctx.Err())
	}
}

func (m *SMTPMailer) fromAddress() string {
	if m.cfg.FromEmail != "" {
		return m.cfg.FromEmail
	}
	return m.cfg.Username
}

func (m *SMTPMailer) buildMessage(email *model.Email) ([]byte, error) {
	from := m.fromAddress()
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", m.cfg.FromName), from)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", email.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", email.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: quoted-printable\r\n\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(email.HTML)); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
