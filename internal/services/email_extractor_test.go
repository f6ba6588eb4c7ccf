package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ExtractEmails_FindsAndNormalizes(t *testing.T) {

	text := "Reach out to Recruiter@Acme.COM or talent.acquisition@globex.io for the role."

	emails := ExtractEmails(text)
	assert.Equal(t, []string{"recruiter@acme.com", "talent.acquisition@globex.io"}, emails)
}

func Test_ExtractEmails_InjectedAddressAlwaysFound(t *testing.T) {

	surroundings := []string{
		"plain %s text",
		"<a href=\"mailto:%s\">contact</a>",
		"multiline\ntext %s\nwith noise @ and dots...",
	}

	for _, tpl := range surroundings {
		emails := ExtractEmails(fmt.Sprintf(tpl, "hr@acme.com"))
		assert.Contains(t, emails, "hr@acme.com")
	}
}

func Test_ExtractEmails_DenylistAndBounds(t *testing.T) {

	assert.Empty(t, ExtractEmails("noreply@x.com admin@site.org webmaster@site.org test@example.com"))
	assert.Empty(t, ExtractEmails("icon@2x.png logo@site.jpg attachment@file.pdf"))
	assert.Empty(t, ExtractEmails(""))
	assert.Empty(t, ExtractEmails("not an email at all"))
}

func Test_IsValidEmail_LengthAndShape(t *testing.T) {

	assert.False(t, IsValidEmail("a@b.c"))
	assert.False(t, IsValidEmail("a@b@c.com"))

	long := "x"
	for len(long) < 101 {
		long += "x"
	}
	assert.False(t, IsValidEmail(long+"@acme.com"))

	assert.True(t, IsValidEmail("hr@acme.com"))
	assert.True(t, IsValidEmail("talent+jobs@acme.co.uk"))
}
