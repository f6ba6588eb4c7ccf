package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/mrsingh-rishi/job-outreach/internal/clients/websearch"
	"github.com/mrsingh-rishi/job-outreach/internal/config"
	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/mrsingh-rishi/job-outreach/internal/entities"
	"github.com/mrsingh-rishi/job-outreach/internal/repositories"
	"github.com/mrsingh-rishi/job-outreach/internal/server"
	"github.com/mrsingh-rishi/job-outreach/internal/services"
	"github.com/stretchr/testify/assert"
)

var profile = models.JobProfile{
	JobTitle:     "Backend Engineer",
	CompanyTypes: []string{"startup"},
	MaxEmails:    10,
}

func clearDb() {
	dbCtx.DB.Exec("DELETE from email_logs WHERE TRUE")
}

// newOutreachService wires the real pipeline against the test database. The
// search client has no credentials, so discovery falls back to the pattern
// source alone, which is deterministic.
func newOutreachService(sender *mockSender) (*services.OutreachService, *repositories.EmailLogs) {

	emailLogs := repositories.NewEmailLogsRepository(dbCtx.DB)

	outreachCfg := config.OutreachConfig{}
	outreachCfg.SendDelay = time.Millisecond
	outreachCfg.MaxQueries = 8
	outreachCfg.QueryBatchSize = 4
	outreachCfg.PagesPerQuery = 1
	outreachCfg.CandidateFloor = 1
	outreachCfg.InterBatchBaseSleep = time.Millisecond
	outreachCfg.InterPageSleep = time.Millisecond

	searchClient := websearch.NewClient("", "") // disabled without credentials
	planner := services.NewQueryPlanner(outreachCfg.MaxQueries)

	aggregator := services.NewAggregator(
		services.NewSearchSource(searchClient, planner, nil, outreachCfg),
		services.NewPatternSource(),
	)

	builder := services.NewMessageBuilder(cfg.Smtp, nil)
	dispatcher := services.NewDispatcher(sender, emailLogs, EventBus.New(), outreachCfg)

	service := services.NewOutreachService(aggregator, services.NewHistoryFilter(emailLogs),
		builder, dispatcher)
	return service, emailLogs
}

func Test_Run_PatternFallbackRespectsMaxEmails(t *testing.T) {

	defer clearDb()

	sender := &mockSender{}
	service, _ := newOutreachService(sender)

	report, err := service.Run(context.Background(), profile)

	assert.NoError(t, err)
	assert.LessOrEqual(t, report.TotalScraped, profile.MaxEmails)
	assert.Equal(t, report.NewFound, report.Sent)
	assert.Zero(t, report.Failed)
	assert.Equal(t, report.Sent, sender.sentCount())
}

func Test_Run_SecondIdenticalRunSkipsEverything(t *testing.T) {

	defer clearDb()

	sender := &mockSender{}
	service, _ := newOutreachService(sender)

	first, err := service.Run(context.Background(), profile)
	assert.NoError(t, err)
	assert.NotZero(t, first.Sent)

	second, err := service.Run(context.Background(), profile)
	assert.NoError(t, err)

	assert.Equal(t, first.Sent, second.SkippedDuplicate)
	assert.Zero(t, second.NewFound)
	assert.Zero(t, second.Sent)
}

func Test_Run_FailedAttemptsAreRecordedAndNotRetried(t *testing.T) {

	defer clearDb()

	sender := &mockSender{failAll: true}
	service, emailLogs := newOutreachService(sender)

	report, err := service.Run(context.Background(), profile)
	assert.NoError(t, err)

	assert.Zero(t, report.Sent)
	assert.Equal(t, report.NewFound, report.Failed)
	assert.Empty(t, report.Emails)

	logs, err := emailLogs.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, logs, report.Failed)
	for _, record := range logs {
		assert.Equal(t, entities.StatusFailed, record.Status)
	}

	// failed recipients count as contacted: the next run must skip them too
	second, err := service.Run(context.Background(), profile)
	assert.NoError(t, err)
	assert.Zero(t, second.NewFound)
}

func Test_HttpSurface_HistoryEndpoints(t *testing.T) {

	defer clearDb()

	sender := &mockSender{}
	service, emailLogs := newOutreachService(sender)

	report, err := service.Run(context.Background(), profile)
	assert.NoError(t, err)
	assert.NotZero(t, report.Sent)

	srv := httptest.NewServer(newTestHandler(service, emailLogs))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/existing-emails")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/recent-emails/30")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/recent-emails/366")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func newTestHandler(service *services.OutreachService, emailLogs *repositories.EmailLogs) http.Handler {

	handlers := server.NewHandlers(service, emailLogs)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /existing-emails", handlers.ExistingEmails)
	mux.HandleFunc("GET /recent-emails/{days}", handlers.RecentEmails)
	return mux
}
