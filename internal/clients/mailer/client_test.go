package mailer

import (
	"net/smtp"
	"strings"
	"testing"

	"github.com/mrsingh-rishi/job-outreach/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_Send_BuildsRFC822Message(t *testing.T) {

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	client := NewClient(config.SmtpConfig{
		Host:        "smtp.example.com",
		Port:        587,
		SenderName:  "Rishi Singh",
		SenderEmail: "sender@example.com",
		Password:    "secret",
	})
	client.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := client.Send("recruiter@acme.com", "Application for Backend Engineer Position", "Dear Hiring Manager,")
	assert.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "sender@example.com", gotFrom)
	assert.Equal(t, []string{"recruiter@acme.com"}, gotTo)

	msg := string(gotMsg)
	assert.True(t, strings.Contains(msg, "To: recruiter@acme.com\r\n"))
	assert.True(t, strings.Contains(msg, "Subject: Application for Backend Engineer Position\r\n"))
	assert.True(t, strings.HasSuffix(msg, "\r\nDear Hiring Manager,"))
}
