package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrsingh-rishi/job-outreach/internal/config"
	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/mrsingh-rishi/job-outreach/internal/logger"
	log "github.com/sirupsen/logrus"
)

// MessageBuilder renders the outreach mail as a list of optional sections,
// each producing at most one paragraph. Sections are joined with a single
// blank line, so the result never contains consecutive blank lines and needs
// no whitespace cleanup afterwards.
type MessageBuilder struct {
	smtp config.SmtpConfig
	ai   *AIService
}

func NewMessageBuilder(smtp config.SmtpConfig, ai *AIService) *MessageBuilder {
	return &MessageBuilder{smtp: smtp, ai: ai}
}

func (b *MessageBuilder) Subject(profile models.JobProfile) string {
	return fmt.Sprintf("Application for %s Position", profile.JobTitle)
}

// Build renders the message body. Pure and deterministic.
func (b *MessageBuilder) Build(profile models.JobProfile) string {
	return b.assemble(profile, b.introSection(profile))
}

// BuildPersonalized renders the body with an AI-generated opener when the AI
// service is configured; any failure falls back to the static template.
func (b *MessageBuilder) BuildPersonalized(ctx context.Context, profile models.JobProfile) string {

	intro := b.introSection(profile)

	if b.ai != nil {
		generated, err := b.ai.GeneratePersonalIntro(ctx, profile)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).
				Errorf("failed to generate personalized intro: %v", err)
		} else {
			intro = generated
		}
	}

	return b.assemble(profile, intro)
}

func (b *MessageBuilder) assemble(profile models.JobProfile, intro string) string {

	sections := []string{
		"Dear Hiring Manager,",
		intro,
		b.backgroundSection(profile),
		b.preferenceSection(profile),
		b.locationSection(profile),
		b.urgencySection(profile),
		b.salarySection(profile),
		"I have attached my resume for your review and would welcome the opportunity to discuss " +
			"how my skills and enthusiasm can contribute to your team's success.",
		b.linksSection(),
		"Thank you for considering my application. I look forward to hearing from you.",
		b.signatureSection(),
	}

	var paragraphs []string
	for _, section := range sections {
		if section != "" {
			paragraphs = append(paragraphs, section)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

func (b *MessageBuilder) introSection(profile models.JobProfile) string {
	return fmt.Sprintf("I hope this email finds you well. I am writing to express my strong interest "+
		"in the %s position at your organization.", profile.JobTitle)
}

func (b *MessageBuilder) backgroundSection(profile models.JobProfile) string {

	lines := []string{
		experienceClause(profile) + "I am excited about the opportunity to contribute to your team. " +
			"My background includes:",
	}

	if len(profile.RequiredSkills) > 0 {
		lines = append(lines, "• Proficient in: "+strings.Join(profile.RequiredSkills, ", "))
	}
	if len(profile.PreferredSkills) > 0 {
		lines = append(lines, "• Additional experience with: "+strings.Join(profile.PreferredSkills, ", "))
	}
	lines = append(lines,
		"• Strong problem-solving skills and ability to work in agile environments",
		"• Passion for creating efficient, scalable solutions",
	)
	if len(profile.Domains) > 0 {
		lines = append(lines, "• Expertise spanning "+strings.ToLower(strings.Join(profile.Domains, ", "))+" development")
	}

	return strings.Join(lines, "\n")
}

func experienceClause(profile models.JobProfile) string {
	switch {
	case profile.ExperienceLevel != "" && profile.ExperienceYears != "":
		return fmt.Sprintf("As a %s-level professional with %s of experience, ",
			strings.ToLower(profile.ExperienceLevel), profile.ExperienceYears)
	case profile.ExperienceLevel != "":
		return fmt.Sprintf("As a %s-level professional, ", strings.ToLower(profile.ExperienceLevel))
	case profile.ExperienceYears != "":
		return fmt.Sprintf("With %s of experience, ", profile.ExperienceYears)
	default:
		return "As a dedicated software professional, "
	}
}

func (b *MessageBuilder) preferenceSection(profile models.JobProfile) string {

	var clauses []string
	if len(profile.Industries) > 0 {
		clauses = append(clauses, fmt.Sprintf("I am passionate about working in the %s space.",
			strings.Join(profile.Industries, ", ")))
	}
	if len(profile.CompanyTypes) > 0 {
		clauses = append(clauses, fmt.Sprintf("I am particularly interested in %s companies.",
			strings.ToLower(strings.Join(profile.CompanyTypes, ", "))))
	}
	return strings.Join(clauses, " ")
}

func (b *MessageBuilder) locationSection(profile models.JobProfile) string {
	switch {
	case len(profile.Locations) > 0 && profile.RemoteOK:
		return fmt.Sprintf("I am open to opportunities in %s as well as remote positions.",
			strings.Join(profile.Locations, ", "))
	case len(profile.Locations) > 0:
		return fmt.Sprintf("I am specifically interested in opportunities in %s.",
			strings.Join(profile.Locations, ", "))
	case profile.RemoteOK:
		return "I am open to both on-site and remote opportunities."
	default:
		return ""
	}
}

func (b *MessageBuilder) urgencySection(profile models.JobProfile) string {
	if profile.IsUrgent() {
		return "I am actively seeking new opportunities and available for immediate start."
	}
	return ""
}

func (b *MessageBuilder) salarySection(profile models.JobProfile) string {
	if profile.SalaryRange != "" {
		return fmt.Sprintf("My salary expectation is in the range of %s.", profile.SalaryRange)
	}
	return ""
}

func (b *MessageBuilder) linksSection() string {
	lines := []string{"You can also find more about my work:"}
	if b.smtp.ResumeURL != "" {
		lines = append(lines, "• Resume: "+b.smtp.ResumeURL)
	}
	if b.smtp.GithubURL != "" {
		lines = append(lines, "• GitHub: "+b.smtp.GithubURL)
	}
	if b.smtp.LinkedinURL != "" {
		lines = append(lines, "• LinkedIn: "+b.smtp.LinkedinURL)
	}
	if len(lines) == 1 {
		return ""
	}
	return strings.Join(lines, "\n")
}

func (b *MessageBuilder) signatureSection() string {
	return "Best regards,\n" + b.smtp.SenderName + "\n" + b.smtp.SenderEmail
}
