package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
)

var jobBoardAddresses = []string{
	"employer-center@indeed.com", "recruiting@indeed.com",
	"employers@glassdoor.com", "recruiting@glassdoor.com",
	"employers@monster.com", "recruiting@monster.com",
	"employers@ziprecruiter.com", "recruiting@ziprecruiter.com",
}

const maxJobBoardEmails = 10

// JobBoardSource generates employer-desk addresses of the big job boards plus
// job-title and location variants.
type JobBoardSource struct{}

func NewJobBoardSource() *JobBoardSource {
	return &JobBoardSource{}
}

func (s *JobBoardSource) Name() string {
	return "job_boards"
}

func (s *JobBoardSource) Discover(_ context.Context, profile models.JobProfile) ([]string, error) {

	seen := map[string]struct{}{}
	add := func(email string) {
		if len(seen) < maxJobBoardEmails {
			seen[email] = struct{}{}
		}
	}

	slug := profile.TitleSlug()
	for _, address := range jobBoardAddresses {
		add(address)
		add(fmt.Sprintf("%s.%s", slug, address))
	}

	for _, location := range firstN(profile.Locations, 3) {
		token := strings.ReplaceAll(strings.ToLower(location), " ", "-")
		token = strings.ReplaceAll(token, ",", "")
		add(fmt.Sprintf("jobs-%s@jobboards.com", token))
		add(fmt.Sprintf("recruiting-%s@careers.com", token))
	}

	emails := make([]string, 0, len(seen))
	for email := range seen {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails, nil
}
