package models

import (
	"strings"
)

// JobProfile describes the role being searched for and the applicant's
// preferences. It is immutable input: one profile lives for the duration of a
// single pipeline run and carries no identity beyond the request.
type JobProfile struct {
	JobTitle        string   `json:"job_title" validate:"required,max=255"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	ExperienceYears string   `json:"experience_years,omitempty"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`
	Locations       []string `json:"locations,omitempty"`
	RemoteOK        bool     `json:"remote_ok"`
	CompanyTypes    []string `json:"company_types,omitempty"`
	TargetCompanies []string `json:"target_companies,omitempty"`
	CompanySize     string   `json:"company_size,omitempty"`
	Industries      []string `json:"industries,omitempty"`
	Domains         []string `json:"domains,omitempty"`
	EmploymentType  string   `json:"employment_type,omitempty"`
	SalaryRange     string   `json:"salary_range,omitempty"`
	MaxEmails       int      `json:"max_emails" validate:"min=1,max=1000"`
	Urgency         string   `json:"urgency,omitempty" validate:"omitempty,oneof=normal urgent"`
}

// TitleToken returns the job title collapsed to a single lowercase token,
// suitable for the local part of a generated address.
func (p JobProfile) TitleToken() string {
	token := strings.ToLower(p.JobTitle)
	token = strings.ReplaceAll(token, " ", "")
	return strings.ReplaceAll(token, "-", "")
}

// TitleSlug returns the job title lowercased with spaces turned into hyphens,
// the form used inside generated address local parts.
func (p JobProfile) TitleSlug() string {
	return strings.ReplaceAll(strings.ToLower(p.JobTitle), " ", "-")
}

// IsUrgent reports whether the profile asks for an immediate start.
func (p JobProfile) IsUrgent() bool {
	return strings.EqualFold(p.Urgency, "urgent")
}

// WantsStartups reports whether any requested company type is a startup.
func (p JobProfile) WantsStartups() bool {
	for _, ct := range p.CompanyTypes {
		if strings.Contains(strings.ToLower(ct), "startup") {
			return true
		}
	}
	return false
}

// CompanyToken collapses a company name to a bare lowercase domain label.
func CompanyToken(company string) string {
	token := strings.ToLower(company)
	token = strings.ReplaceAll(token, " ", "")
	return strings.ReplaceAll(token, ",", "")
}
