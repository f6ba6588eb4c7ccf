package mailer

import (
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/mrsingh-rishi/job-outreach/internal/config"
)

// Sender delivers one plain-text message to one recipient. The dispatcher
// depends on this interface so tests can swap the transport out.
type Sender interface {
	Send(recipient, subject, body string) error
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Client sends mail over SMTP with STARTTLS (the upgrade is negotiated by
// net/smtp when the server advertises it).
type Client struct {
	cfg      config.SmtpConfig
	sendMail sendMailFunc
}

func NewClient(cfg config.SmtpConfig) *Client {
	return &Client{cfg: cfg, sendMail: smtp.SendMail}
}

func (c *Client) Send(recipient, subject, body string) error {

	addr := c.cfg.Host + ":" + strconv.Itoa(c.cfg.Port)
	auth := smtp.PlainAuth("", c.cfg.SenderEmail, c.cfg.Password, c.cfg.Host)

	msg := c.buildMessage(recipient, subject, body)

	if err := c.sendMail(addr, auth, c.cfg.SenderEmail, []string{recipient}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", recipient, err)
	}

	return nil
}

func (c *Client) buildMessage(recipient, subject, body string) []byte {

	var sb strings.Builder
	sb.WriteString("From: " + c.cfg.SenderName + " <" + c.cfg.SenderEmail + ">\r\n")
	sb.WriteString("To: " + recipient + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)

	return []byte(sb.String())
}
