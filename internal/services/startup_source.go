package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
)

var startupRoles = []string{
	"founder", "co-founder", "cto", "vp-engineering",
	"head-of-talent", "people-ops", "talent-partner",
}

var startupDirectoryDomains = []string{
	"angellist-startups.com", "crunchbase-companies.com",
	"ycombinator-alumni.com", "techstars-portfolio.com",
}

var startupHeavyIndustries = []string{"FinTech", "SaaS", "AI/ML"}

const maxStartupEmails = 8

// StartupSource generates founder and talent addresses from the startup
// directory ecosystem. It only activates when the profile asks for startups.
type StartupSource struct{}

func NewStartupSource() *StartupSource {
	return &StartupSource{}
}

func (s *StartupSource) Name() string {
	return "startups"
}

func (s *StartupSource) Discover(_ context.Context, profile models.JobProfile) ([]string, error) {

	if !profile.WantsStartups() {
		return nil, nil
	}

	seen := map[string]struct{}{}
	add := func(email string) {
		if len(seen) < maxStartupEmails {
			seen[email] = struct{}{}
		}
	}

	slug := profile.TitleSlug()
	for _, domain := range startupDirectoryDomains {
		for _, role := range startupRoles[:3] {
			add(fmt.Sprintf("%s@%s", role, domain))
			add(fmt.Sprintf("%s-%s@%s", role, slug, domain))
		}
	}

	for _, industry := range profile.Industries {
		if !containsFold(startupHeavyIndustries, industry) {
			continue
		}
		token := strings.ReplaceAll(strings.ToLower(industry), "/", "")
		token = strings.ReplaceAll(token, " ", "")
		add(fmt.Sprintf("hiring@%s-startup.io", token))
		add(fmt.Sprintf("jobs@%s-ventures.com", token))
	}

	emails := make([]string, 0, len(seen))
	for email := range seen {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails, nil
}

func containsFold(items []string, value string) bool {
	for _, item := range items {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
