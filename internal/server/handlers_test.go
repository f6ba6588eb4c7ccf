package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mrsingh-rishi/job-outreach/internal/config"
	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/mrsingh-rishi/job-outreach/internal/entities"
	"github.com/mrsingh-rishi/job-outreach/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockOutreach struct {
	mock.Mock
}

func (m *mockOutreach) Run(ctx context.Context, profile models.JobProfile) (models.DispatchReport, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(models.DispatchReport), args.Error(1)
}

type mockRecords struct {
	mock.Mock
}

func (m *mockRecords) GetAll(ctx context.Context) ([]entities.EmailLog, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.EmailLog), args.Error(1)
}

func (m *mockRecords) GetDistinctRecipients(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRecords) GetDistinctRecipientsByJob(ctx context.Context, jobTitle string) ([]string, error) {
	args := m.Called(ctx, jobTitle)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRecords) GetRecentRecipients(ctx context.Context, days int) ([]string, error) {
	args := m.Called(ctx, days)
	return args.Get(0).([]string), args.Error(1)
}

func newTestMux(outreach outreachRunner, records logsReader) http.Handler {
	return New(config.ServerConfig{Port: 0}, NewHandlers(outreach, records)).httpServer.Handler
}

func Test_SendEmails_ReturnsReport(t *testing.T) {

	outreach := &mockOutreach{}
	outreach.On("Run", mock.Anything, mock.Anything).
		Return(models.DispatchReport{JobTitle: "Backend Engineer", Sent: 2, Emails: []string{"a@acme.com", "b@acme.com"}}, nil)

	mux := newTestMux(outreach, &mockRecords{})

	body := `{"job_title": "Backend Engineer", "max_emails": 10}`
	req := httptest.NewRequest(http.MethodPost, "/send-emails", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var report models.DispatchReport
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 2, report.Sent)
}

func Test_SendEmails_InvalidBody(t *testing.T) {

	mux := newTestMux(&mockOutreach{}, &mockRecords{})

	req := httptest.NewRequest(http.MethodPost, "/send-emails", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_SendEmails_ValidationRejectsMissingTitle(t *testing.T) {

	mux := newTestMux(&mockOutreach{}, &mockRecords{})

	req := httptest.NewRequest(http.MethodPost, "/send-emails", strings.NewReader(`{"max_emails": 10}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_SendEmails_OmittedFieldsGetDefaults(t *testing.T) {

	outreach := &mockOutreach{}
	outreach.On("Run", mock.Anything, mock.MatchedBy(func(p models.JobProfile) bool {
		return p.MaxEmails == 25 && p.RemoteOK
	})).Return(models.DispatchReport{JobTitle: "Backend Engineer"}, nil)

	mux := newTestMux(outreach, &mockRecords{})

	req := httptest.NewRequest(http.MethodPost, "/send-emails", strings.NewReader(`{"job_title": "Backend Engineer"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	outreach.AssertExpectations(t)
}

func Test_SendEmails_ExplicitFieldsOverrideDefaults(t *testing.T) {

	outreach := &mockOutreach{}
	outreach.On("Run", mock.Anything, mock.MatchedBy(func(p models.JobProfile) bool {
		return p.MaxEmails == 5 && !p.RemoteOK
	})).Return(models.DispatchReport{JobTitle: "Backend Engineer"}, nil)

	mux := newTestMux(outreach, &mockRecords{})

	body := `{"job_title": "Backend Engineer", "max_emails": 5, "remote_ok": false}`
	req := httptest.NewRequest(http.MethodPost, "/send-emails", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	outreach.AssertExpectations(t)
}

func Test_SendEmails_NoCandidatesIs404(t *testing.T) {

	outreach := &mockOutreach{}
	outreach.On("Run", mock.Anything, mock.Anything).
		Return(models.DispatchReport{}, services.ErrNoCandidates)

	mux := newTestMux(outreach, &mockRecords{})

	body := `{"job_title": "Backend Engineer", "max_emails": 10}`
	req := httptest.NewRequest(http.MethodPost, "/send-emails", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No recruiter emails found")
}

func Test_Logs_ReturnsList(t *testing.T) {

	records := &mockRecords{}
	records.On("GetAll", mock.Anything).
		Return([]entities.EmailLog{{JobTitle: "Backend Engineer", RecipientEmail: "hr@acme.com", Status: entities.StatusSent}}, nil)

	mux := newTestMux(&mockOutreach{}, records)

	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var logs []entities.EmailLog
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	assert.Len(t, logs, 1)
	assert.Equal(t, "hr@acme.com", logs[0].RecipientEmail)
}

func Test_ExistingEmails_SortedWithCount(t *testing.T) {

	records := &mockRecords{}
	records.On("GetDistinctRecipients", mock.Anything).
		Return([]string{"b@acme.com", "a@acme.com"}, nil)

	mux := newTestMux(&mockOutreach{}, records)

	req := httptest.NewRequest(http.MethodGet, "/existing-emails", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total  int      `json:"total_existing_emails"`
		Emails []string `json:"existing_emails"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, []string{"a@acme.com", "b@acme.com"}, resp.Emails)
}

func Test_ExistingEmailsForJob_UsesPathValue(t *testing.T) {

	records := &mockRecords{}
	records.On("GetDistinctRecipientsByJob", mock.Anything, "Backend Engineer").
		Return([]string{"hr@acme.com"}, nil)

	mux := newTestMux(&mockOutreach{}, records)

	req := httptest.NewRequest(http.MethodGet, "/existing-emails/Backend%20Engineer", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	records.AssertCalled(t, "GetDistinctRecipientsByJob", mock.Anything, "Backend Engineer")
}

func Test_RecentEmails_BoundsChecked(t *testing.T) {

	records := &mockRecords{}
	records.On("GetRecentRecipients", mock.Anything, 30).Return([]string{"hr@acme.com"}, nil)

	mux := newTestMux(&mockOutreach{}, records)

	for _, path := range []string{"/recent-emails/0", "/recent-emails/366", "/recent-emails/abc"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recent-emails/30", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Days  int `json:"days"`
		Total int `json:"total_recent_emails"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 30, resp.Days)
	assert.Equal(t, 1, resp.Total)
}

func Test_Health(t *testing.T) {

	mux := newTestMux(&mockOutreach{}, &mockRecords{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
