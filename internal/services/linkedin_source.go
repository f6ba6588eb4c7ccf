package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
)

var linkedinPatterns = []string{
	"talent-acquisition", "recruiting", "people-ops", "hr-business-partner",
	"senior-recruiter", "technical-recruiter", "hiring-manager",
}

var linkedinDomains = []string{
	"linkedin-corp.com", "talent-solutions.linkedin.com", "recruiting.linkedin.com",
}

const maxLinkedinEmails = 15

// LinkedinSource generates professional-network style recruiter addresses for
// the profile's target companies. Like PatternSource it needs no credentials
// and never fails.
type LinkedinSource struct{}

func NewLinkedinSource() *LinkedinSource {
	return &LinkedinSource{}
}

func (s *LinkedinSource) Name() string {
	return "linkedin"
}

func (s *LinkedinSource) Discover(_ context.Context, profile models.JobProfile) ([]string, error) {

	seen := map[string]struct{}{}
	add := func(email string) {
		if len(seen) < maxLinkedinEmails {
			seen[email] = struct{}{}
		}
	}

	for _, company := range firstN(profile.TargetCompanies, 10) {
		token := models.CompanyToken(company)
		for _, pattern := range linkedinPatterns[:3] {
			add(fmt.Sprintf("%s@%s.com", pattern, token))
			add(fmt.Sprintf("%s.%s@company.com", pattern, token))
		}
	}

	for _, domain := range linkedinDomains {
		for _, pattern := range linkedinPatterns[:2] {
			add(fmt.Sprintf("%s@%s", pattern, domain))
		}
	}

	emails := make([]string, 0, len(seen))
	for email := range seen {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails, nil
}
