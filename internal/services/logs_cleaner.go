package services

import (
	"context"
	"time"

	"github.com/mrsingh-rishi/job-outreach/internal/logger"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type LogCleanupRepository interface {
	RemoveOlderThan(ctx context.Context, expirationTime time.Time) (int64, error)
}

// LogsCleaner prunes old dispatch records on a nightly schedule so the
// history table stays bounded.
type LogsCleaner struct {
	records         LogCleanupRepository
	cron            *cron.Cron
	retentionInDays int
}

func NewLogsCleaner(records LogCleanupRepository, retentionInDays int) (*LogsCleaner, error) {

	if retentionInDays <= 0 {
		return nil, errors.New("retention in days must be greater than zero")
	}

	lc := &LogsCleaner{
		records:         records,
		cron:            cron.New(),
		retentionInDays: retentionInDays,
	}

	_, err := lc.cron.AddFunc("0 0 * * *", lc.cleanOldRecords)
	if err != nil {
		return nil, err
	}

	lc.cron.Start()
	log.Infof("email logs cleaner started, retention in days: %d", lc.retentionInDays)
	return lc, nil
}

func (lc *LogsCleaner) Stop() {
	lc.cron.Stop()
}

func (lc *LogsCleaner) cleanOldRecords() {
	expirationTime := time.Now().Add(-time.Duration(lc.retentionInDays) * 24 * time.Hour)
	rowsAffected, err := lc.records.RemoveOlderThan(context.Background(), expirationTime)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to clean old email logs: %v", err)
	} else {
		log.Infof("old email logs cleaned, affected rows: %v", rowsAffected)
	}
}
