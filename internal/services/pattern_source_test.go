package services

import (
	"context"
	"strings"
	"testing"

	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func Test_PatternSource_Deterministic(t *testing.T) {

	source := NewPatternSource()
	profile := models.JobProfile{
		JobTitle:     "Backend Engineer",
		CompanyTypes: []string{"startup"},
		MaxEmails:    20,
	}

	first, err := source.Discover(context.Background(), profile)
	assert.NoError(t, err)
	second, err := source.Discover(context.Background(), profile)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_PatternSource_RespectsBudget(t *testing.T) {

	source := NewPatternSource()
	profile := models.JobProfile{
		JobTitle:     "Backend Engineer",
		CompanyTypes: []string{"startup", "mnc"},
		Industries:   []string{"FinTech"},
		MaxEmails:    7,
	}

	emails, err := source.Discover(context.Background(), profile)
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(emails), 7)
	assert.NotEmpty(t, emails)
}

func Test_PatternSource_TargetCompaniesComeThrough(t *testing.T) {

	source := NewPatternSource()
	profile := models.JobProfile{
		JobTitle:        "Backend Engineer",
		TargetCompanies: []string{"Acme Corp"},
		MaxEmails:       50,
	}

	emails, err := source.Discover(context.Background(), profile)
	assert.NoError(t, err)
	assert.Contains(t, emails, "recruiter@acmecorp.com")
	assert.Contains(t, emails, "hr@acmecorp.com")
}

func Test_PatternSource_IndustryDomains(t *testing.T) {

	source := NewPatternSource()
	profile := models.JobProfile{
		JobTitle:   "Data Scientist",
		Industries: []string{"FinTech"},
		MaxEmails:  1000,
	}

	emails, err := source.Discover(context.Background(), profile)
	assert.NoError(t, err)

	found := false
	for _, email := range emails {
		if strings.HasSuffix(email, "@financetech.com") {
			found = true
		}
	}
	assert.True(t, found)
}

func Test_PatternSource_AllValidAddresses(t *testing.T) {

	source := NewPatternSource()
	profile := models.JobProfile{
		JobTitle:     "Backend Engineer",
		Locations:    []string{"San Francisco, CA"},
		CompanyTypes: []string{"midsize"},
		Industries:   []string{"SaaS"},
		MaxEmails:    1000,
	}

	emails, err := source.Discover(context.Background(), profile)
	assert.NoError(t, err)
	for _, email := range emails {
		assert.True(t, IsValidEmail(email), "generated invalid address: %s", email)
	}
}
