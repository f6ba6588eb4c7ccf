package services

import (
	"strings"
	"testing"

	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func Test_Plan_EveryTargetCompanyIsRepresented(t *testing.T) {

	profile := models.JobProfile{
		JobTitle:        "Backend Engineer",
		MaxEmails:       50,
		TargetCompanies: []string{"Acme", "Globex", "Initech"},
	}

	queries := NewQueryPlanner(80).Plan(profile)

	for _, company := range profile.TargetCompanies {
		found := false
		for _, q := range queries {
			if strings.Contains(strings.ToLower(q.Text), strings.ToLower(company)) {
				found = true
				break
			}
		}
		assert.True(t, found, "no query mentions %s", company)
	}
}

func Test_Plan_NeverExceedsCap(t *testing.T) {

	profile := models.JobProfile{
		JobTitle:        "Backend Engineer",
		MaxEmails:       50,
		Locations:       []string{"San Francisco", "New York", "Berlin", "London", "Tokyo", "Paris", "Austin"},
		TargetCompanies: []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"},
		Industries:      []string{"FinTech", "HealthTech", "AI/ML", "E-commerce", "Gaming", "SaaS", "EdTech"},
		Domains:         []string{"Backend", "Frontend", "DevOps", "Data", "Mobile", "Security", "Infra"},
	}

	for _, limit := range []int{5, 20, 80} {
		queries := NewQueryPlanner(limit).Plan(profile)
		assert.LessOrEqual(t, len(queries), limit)
	}
}

func Test_Plan_ContainsSiteScopedCompanyQuery(t *testing.T) {

	profile := models.JobProfile{
		JobTitle:        "Backend Engineer",
		MaxEmails:       10,
		TargetCompanies: []string{"Acme Corp"},
	}

	queries := NewQueryPlanner(200).Plan(profile)

	found := false
	for _, q := range queries {
		if strings.Contains(q.Text, "site:acmecorp.com") {
			found = true
		}
	}
	assert.True(t, found)
}

func Test_Plan_DeduplicatesQueries(t *testing.T) {

	profile := models.JobProfile{JobTitle: "Backend Engineer", MaxEmails: 10}
	queries := NewQueryPlanner(200).Plan(profile)

	seen := map[string]bool{}
	for _, q := range queries {
		lower := strings.ToLower(q.Text)
		assert.False(t, seen[lower], "duplicate query %q", q.Text)
		seen[lower] = true
	}
}
