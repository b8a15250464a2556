package notifier

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"
)

// SMTPConfig параметры SMTP сервера
type SMTPConfig struct {
	Server   string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPChannel отправка письма посетителю через SMTP с STARTTLS
type SMTPChannel struct {
	cfg SMTPConfig
}

// NewSMTPChannel создает SMTP канал
func NewSMTPChannel(cfg SMTPConfig) *SMTPChannel {
	return &SMTPChannel{cfg: cfg}
}

func (c *SMTPChannel) Name() string { return "smtp" }

// Send отправляет письмо; соединение ограничено таймаутом и контекстом
func (c *SMTPChannel) Send(ctx context.Context, msg *Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	addr := net.JoinHostPort(c.cfg.Server, strconv.Itoa(c.cfg.Port))
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrSend, addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, c.cfg.Server)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: smtp handshake: %v", ErrSend, err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: c.cfg.Server}); err != nil {
		return fmt.Errorf("%w: starttls: %v", ErrSend, err)
	}
	if err := client.Auth(smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Server)); err != nil {
		return fmt.Errorf("%w: auth: %v", ErrSend, err)
	}
	if err := client.Mail(c.cfg.From); err != nil {
		return fmt.Errorf("%w: mail from: %v", ErrSend, err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("%w: rcpt to: %v", ErrSend, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: data: %v", ErrSend, err)
	}
	if _, err := w.Write(buildMessage(c.cfg.From, msg)); err != nil {
		w.Close()
		return fmt.Errorf("%w: write body: %v", ErrSend, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: close body: %v", ErrSend, err)
	}

	return client.Quit()
}

// buildMessage письмо в формате RFC 5322 с телом в UTF-8
func buildMessage(from string, msg *Message) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(msg.Body)
	buf.WriteString("\r\n")
	return buf.Bytes()
}
