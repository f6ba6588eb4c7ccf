package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/mrsingh-rishi/job-outreach/internal/entities"
	"github.com/mrsingh-rishi/job-outreach/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type outreachRunner interface {
	Run(ctx context.Context, profile models.JobProfile) (models.DispatchReport, error)
}

type logsReader interface {
	GetAll(ctx context.Context) ([]entities.EmailLog, error)
	GetDistinctRecipients(ctx context.Context) ([]string, error)
	GetDistinctRecipientsByJob(ctx context.Context, jobTitle string) ([]string, error)
	GetRecentRecipients(ctx context.Context, days int) ([]string, error)
}

type Handlers struct {
	outreach outreachRunner
	records  logsReader
	validate *validator.Validate
}

func NewHandlers(outreach outreachRunner, records logsReader) *Handlers {
	return &Handlers{
		outreach: outreach,
		records:  records,
		validate: validator.New(),
	}
}

func (h *Handlers) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Job Email Outreach API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"POST /send-emails": "Send job application emails",
			"GET /logs":         "Get email sending logs",
		},
	})
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handlers) SendEmails(w http.ResponseWriter, r *http.Request) {

	// fields absent from the body keep these defaults
	profile := models.JobProfile{MaxEmails: 25, RemoteOK: true}
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.validate.Struct(profile); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.outreach.Run(r.Context(), profile)
	if err != nil {
		if errors.Is(err, services.ErrNoCandidates) {
			writeError(w, http.StatusNotFound, "No recruiter emails found for this job criteria")
			return
		}
		log.Errorf("outreach run failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handlers) Logs(w http.ResponseWriter, r *http.Request) {

	logs, err := h.records.GetAll(r.Context())
	if err != nil {
		log.Errorf("failed to fetch email logs: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
		return
	}

	if logs == nil {
		logs = []entities.EmailLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *Handlers) ExistingEmails(w http.ResponseWriter, r *http.Request) {

	emails, err := h.records.GetDistinctRecipients(r.Context())
	if err != nil {
		log.Errorf("failed to fetch existing emails: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
		return
	}

	sort.Strings(emails)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":               "Retrieved existing email addresses",
		"total_existing_emails": len(emails),
		"existing_emails":       emptyIfNil(emails),
	})
}

func (h *Handlers) ExistingEmailsForJob(w http.ResponseWriter, r *http.Request) {

	jobTitle := r.PathValue("jobTitle")

	emails, err := h.records.GetDistinctRecipientsByJob(r.Context(), jobTitle)
	if err != nil {
		log.Errorf("failed to fetch existing emails for job %s: %v", jobTitle, err)
		writeError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
		return
	}

	sort.Strings(emails)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":               fmt.Sprintf("Retrieved existing emails for job: %s", jobTitle),
		"job_title":             jobTitle,
		"total_existing_emails": len(emails),
		"existing_emails":       emptyIfNil(emails),
	})
}

func (h *Handlers) RecentEmails(w http.ResponseWriter, r *http.Request) {

	days, err := strconv.Atoi(r.PathValue("days"))
	if err != nil || days < services.MinRecentDays || days > services.MaxRecentDays {
		writeError(w, http.StatusBadRequest, "Days must be between 1 and 365")
		return
	}

	emails, err := h.records.GetRecentRecipients(r.Context(), days)
	if err != nil {
		log.Errorf("failed to fetch recent emails: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
		return
	}

	sort.Strings(emails)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":             fmt.Sprintf("Retrieved emails contacted in the last %d days", days),
		"days":                days,
		"total_recent_emails": len(emails),
		"recent_emails":       emptyIfNil(emails),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func emptyIfNil(emails []string) []string {
	if emails == nil {
		return []string{}
	}
	return emails
}
