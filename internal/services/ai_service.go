package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/pkg/errors"
)

type aiClient interface {
	GenerateResponse(ctx context.Context, text string) (string, error)
}

// AIService generates a short personalized opening paragraph for the outreach
// mail. It is optional: the pipeline works without it and falls back to the
// static template on any failure.
type AIService struct {
	client aiClient
}

func NewAIService(client aiClient) *AIService {
	return &AIService{client: client}
}

func (s *AIService) GeneratePersonalIntro(ctx context.Context, profile models.JobProfile) (string, error) {

	prompt := buildIntroPrompt(profile)

	response, err := s.client.GenerateResponse(ctx, prompt)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate intro")
	}

	intro := strings.TrimSpace(response)
	if intro == "" {
		return "", errors.New("model returned an empty intro")
	}

	return intro, nil
}

func buildIntroPrompt(profile models.JobProfile) string {

	var sb strings.Builder
	sb.WriteString("Write a single short paragraph (2-3 sentences) opening a cold job application email. ")
	sb.WriteString(fmt.Sprintf("The applicant is applying for a %s position.", profile.JobTitle))

	if profile.ExperienceYears != "" {
		sb.WriteString(fmt.Sprintf(" They have %s of experience.", profile.ExperienceYears))
	}
	if len(profile.RequiredSkills) > 0 {
		sb.WriteString(fmt.Sprintf(" Key skills: %s.", strings.Join(profile.RequiredSkills, ", ")))
	}

	sb.WriteString(" Professional tone, no subject line, no placeholders, plain text only.")
	return sb.String()
}
