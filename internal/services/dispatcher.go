package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/mrsingh-rishi/job-outreach/internal/clients/mailer"
	"github.com/mrsingh-rishi/job-outreach/internal/config"
	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/mrsingh-rishi/job-outreach/internal/entities"
	"github.com/mrsingh-rishi/job-outreach/internal/events"
	"github.com/mrsingh-rishi/job-outreach/internal/logger"
	"github.com/mrsingh-rishi/job-outreach/internal/metrics"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type dispatchLog interface {
	Add(ctx context.Context, jobTitle string, recipient string, status string) error
}

// DispatchResult summarizes one dispatch pass.
type DispatchResult struct {
	Sent   []string
	Failed int
}

// Dispatcher sends mail to each recipient strictly one at a time, spacing
// sends with a rate limiter. Every attempt is recorded, success or not, and a
// transport failure for one recipient never stops the rest of the batch.
type Dispatcher struct {
	sender  mailer.Sender
	records dispatchLog
	bus     EventBus.Bus
	limiter *rate.Limiter
}

func NewDispatcher(sender mailer.Sender, records dispatchLog, bus EventBus.Bus,
	cfg config.OutreachConfig) *Dispatcher {

	return &Dispatcher{
		sender:  sender,
		records: records,
		bus:     bus,
		limiter: rate.NewLimiter(rate.Every(cfg.SendDelay), 1),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, profile models.JobProfile,
	recipients []string, subject string, body string) (DispatchResult, error) {

	var result DispatchResult

	for _, recipient := range recipients {

		if err := d.limiter.Wait(ctx); err != nil {
			return result, err
		}

		status := entities.StatusSent
		sendErr := d.sender.Send(recipient, subject, body)
		if sendErr != nil {
			status = entities.StatusFailed
			result.Failed++
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeSmtp).
				Errorf("failed to send to %s: %v", recipient, sendErr)
		} else {
			result.Sent = append(result.Sent, recipient)
			log.Debugf("sent outreach mail to %s", recipient)
		}

		if err := d.records.Add(ctx, profile.JobTitle, recipient, status); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to record dispatch attempt for %s: %v", recipient, err)
		}

		metrics.ObserveDispatch(sendErr == nil)
		d.bus.Publish(events.EmailDispatchedTopic, events.EmailDispatched{
			JobTitle:  profile.JobTitle,
			Recipient: recipient,
			Success:   sendErr == nil,
		})
	}

	return result, nil
}
