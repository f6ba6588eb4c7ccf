package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/mrsingh-rishi/job-outreach/internal/metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrNoCandidates is returned when discovery yields nothing at all; the HTTP
// layer maps it to a 404.
var ErrNoCandidates = errors.New("no contact emails found")

type messageBuilder interface {
	Subject(profile models.JobProfile) string
	BuildPersonalized(ctx context.Context, profile models.JobProfile) string
}

type dispatcher interface {
	Dispatch(ctx context.Context, profile models.JobProfile, recipients []string,
		subject string, body string) (DispatchResult, error)
}

// OutreachService runs the whole pipeline: discover candidates, drop the ones
// already contacted, render the message once, dispatch to the rest.
type OutreachService struct {
	aggregator *Aggregator
	filter     *HistoryFilter
	builder    messageBuilder
	dispatcher dispatcher
}

func NewOutreachService(aggregator *Aggregator, filter *HistoryFilter,
	builder messageBuilder, dispatcher dispatcher) *OutreachService {

	return &OutreachService{
		aggregator: aggregator,
		filter:     filter,
		builder:    builder,
		dispatcher: dispatcher,
	}
}

func (s *OutreachService) Run(ctx context.Context, profile models.JobProfile) (models.DispatchReport, error) {

	start := time.Now()
	defer func() {
		metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	}()

	runLog := log.WithFields(log.Fields{
		"run_id":    uuid.NewString(),
		"job_title": profile.JobTitle,
	})
	runLog.Info("starting outreach run")

	candidates := s.aggregator.Collect(ctx, profile)
	if len(candidates) > profile.MaxEmails {
		candidates = candidates[:profile.MaxEmails]
	}
	runLog.Infof("discovered %d candidates", len(candidates))

	if len(candidates) == 0 {
		return models.DispatchReport{}, ErrNoCandidates
	}

	fresh, skipped, err := s.filter.Filter(ctx, candidates, GlobalScope)
	if err != nil {
		return models.DispatchReport{}, err
	}
	runLog.Infof("%d candidates remain after dedup, %d skipped", len(fresh), skipped)

	subject := s.builder.Subject(profile)
	body := s.builder.BuildPersonalized(ctx, profile)

	result, err := s.dispatcher.Dispatch(ctx, profile, fresh, subject, body)
	if err != nil {
		return models.DispatchReport{}, err
	}
	runLog.Infof("dispatch finished: %d sent, %d failed", len(result.Sent), result.Failed)

	return models.DispatchReport{
		Message:          fmt.Sprintf("Sent %d new emails (%d skipped as duplicates)", len(result.Sent), skipped),
		JobTitle:         profile.JobTitle,
		TotalScraped:     len(candidates),
		SkippedDuplicate: skipped,
		NewFound:         len(fresh),
		Sent:             len(result.Sent),
		Failed:           result.Failed,
		Emails:           result.Sent,
	}, nil
}
