package repositories

import (
	"context"
	"time"

	"github.com/mrsingh-rishi/job-outreach/internal/entities"
	"gorm.io/gorm"
)

type EmailLogs struct {
	db *gorm.DB
}

func NewEmailLogsRepository(db *gorm.DB) *EmailLogs {
	return &EmailLogs{db: db}
}

// Add appends one dispatch record. SentAt is filled by the database.
func (repo *EmailLogs) Add(ctx context.Context, jobTitle, recipientEmail, status string) error {
	return repo.db.WithContext(ctx).Create(&entities.EmailLog{
		JobTitle:       jobTitle,
		RecipientEmail: recipientEmail,
		Status:         status,
	}).Error
}

func (repo *EmailLogs) GetAll(ctx context.Context) ([]entities.EmailLog, error) {

	var logs []entities.EmailLog
	if err := repo.db.WithContext(ctx).Order("sent_at desc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *EmailLogs) GetDistinctRecipients(ctx context.Context) ([]string, error) {

	var recipients []string
	if err := repo.db.WithContext(ctx).Model(&entities.EmailLog{}).
		Distinct("recipient_email").
		Pluck("recipient_email", &recipients).Error; err != nil {
		return nil, err
	}
	return recipients, nil
}

func (repo *EmailLogs) GetDistinctRecipientsByJob(ctx context.Context, jobTitle string) ([]string, error) {

	var recipients []string
	if err := repo.db.WithContext(ctx).Model(&entities.EmailLog{}).
		Where("job_title = ?", jobTitle).
		Distinct("recipient_email").
		Pluck("recipient_email", &recipients).Error; err != nil {
		return nil, err
	}
	return recipients, nil
}

func (repo *EmailLogs) GetRecentRecipients(ctx context.Context, days int) ([]string, error) {

	since := time.Now().AddDate(0, 0, -days)

	var recipients []string
	if err := repo.db.WithContext(ctx).Model(&entities.EmailLog{}).
		Where("sent_at >= ?", since).
		Distinct("recipient_email").
		Pluck("recipient_email", &recipients).Error; err != nil {
		return nil, err
	}
	return recipients, nil
}

// RemoveOlderThan deletes records whose sent_at predates the expiration time.
// Used only by the cron cleaner, never by the pipeline.
func (repo *EmailLogs) RemoveOlderThan(ctx context.Context, expirationTime time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&entities.EmailLog{}, "sent_at < ?", expirationTime)
	return res.RowsAffected, res.Error
}
