package entities

import "time"

const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// EmailLog is the persisted record of one dispatch attempt. Rows are
// append-only: the pipeline writes exactly one per attempted recipient and
// never mutates or deletes them (the cron cleaner is the only deleter).
type EmailLog struct {
	ID             int       `json:"id"`
	JobTitle       string    `json:"job_title" gorm:"index"`
	RecipientEmail string    `json:"recipient_email" gorm:"index"`
	SentAt         time.Time `json:"sent_at" gorm:"index;autoCreateTime"`
	Status         string    `json:"status"`
}
