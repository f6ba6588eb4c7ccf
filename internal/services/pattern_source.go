package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
)

var recruitingPatterns = []string{
	"recruiter", "hr", "talent", "hiring", "careers", "jobs",
	"recruitment", "people", "human.resources", "talent.acquisition",
}

var startupDomains = []string{
	"techstartup.io", "innovate.ai", "nextstep.com", "disruption.tech",
	"scalable.io", "fastgrow.co", "unicorn-startup.com", "venture.tech",
}

var mncDomains = []string{
	"globaltech.com", "enterprise.corp", "worldwide.com", "international.biz",
	"multinational.org", "fortune500.com", "bigcorp.net", "megacorp.com",
}

var midsizeDomains = []string{
	"growthcompany.com", "midsizefirm.net", "established.biz", "mature-tech.com",
	"solidfirm.co", "reliable-company.net", "steady-growth.com",
}

var industryDomains = map[string][]string{
	"FinTech":    {"financetech.com", "paymentcorp.io", "bankingtech.net", "cryptofirm.co"},
	"HealthTech": {"medtech.com", "healthinnovation.io", "biotech-corp.net", "digitalhealth.co"},
	"AI/ML":      {"aicompany.tech", "mlstartup.ai", "datatech.io", "deeplearning.co"},
	"E-commerce": {"ecommtech.com", "retailtech.io", "marketplace.biz", "shopping-tech.net"},
	"EdTech":     {"edtech-startup.com", "learningtech.io", "education-corp.net"},
	"Gaming":     {"gamedev.studio", "gaming-corp.com", "entertainment.tech"},
	"SaaS":       {"saascompany.com", "cloudtech.io", "software-corp.net"},
}

// PatternSource generates plausible recruiting addresses from the profile's
// company, industry and location facets. It is the always-on discovery
// source: it needs no credentials and never fails.
type PatternSource struct{}

func NewPatternSource() *PatternSource {
	return &PatternSource{}
}

func (s *PatternSource) Name() string {
	return "patterns"
}

func (s *PatternSource) Discover(_ context.Context, profile models.JobProfile) ([]string, error) {

	seen := map[string]struct{}{}
	add := func(email string) {
		if len(seen) < profile.MaxEmails {
			seen[email] = struct{}{}
		}
	}

	// target companies first: they are the addresses the user actually cares
	// about, capped at half the budget
	targetBudget := profile.MaxEmails / 2
	targeted := 0
	for _, company := range firstN(profile.TargetCompanies, 10) {
		token := models.CompanyToken(company)
		for _, pattern := range recruitingPatterns[:3] {
			if targeted >= targetBudget {
				break
			}
			add(fmt.Sprintf("%s@%s.com", pattern, token))
			targeted++
		}
	}

	job := profile.TitleToken()
	for _, domain := range s.domainsFor(profile) {
		if len(seen) >= profile.MaxEmails {
			break
		}
		for _, pattern := range recruitingPatterns {
			add(fmt.Sprintf("%s@%s", pattern, domain))
			add(fmt.Sprintf("%s.%s@%s", pattern, job, domain))
			if len(seen) >= profile.MaxEmails {
				break
			}
		}
	}

	for _, location := range firstN(profile.Locations, 5) {
		if len(seen) >= profile.MaxEmails {
			break
		}
		token := strings.ReplaceAll(strings.ToLower(location), " ", "")
		token = strings.ReplaceAll(token, ",", "")
		for _, pattern := range recruitingPatterns[:3] {
			add(fmt.Sprintf("%s.%s@jobsearch.com", pattern, token))
		}
	}

	emails := make([]string, 0, len(seen))
	for email := range seen {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails, nil
}

func (s *PatternSource) domainsFor(profile models.JobProfile) []string {

	var domains []string
	for _, companyType := range profile.CompanyTypes {
		switch strings.ToLower(companyType) {
		case "startup", "start-up":
			domains = append(domains, startupDomains...)
		case "mnc", "multinational", "enterprise", "large":
			domains = append(domains, mncDomains...)
		case "mid-size", "midsize", "medium":
			domains = append(domains, midsizeDomains...)
		}
	}

	if len(domains) == 0 {
		domains = append(domains, startupDomains...)
		domains = append(domains, mncDomains...)
		domains = append(domains, midsizeDomains...)
	}

	for _, industry := range profile.Industries {
		if extra, ok := industryDomains[industry]; ok {
			domains = append(domains, extra...)
		}
	}

	return domains
}
