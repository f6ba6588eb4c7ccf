package repositories

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/mrsingh-rishi/job-outreach/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.EmailLog{})
	if err != nil {
		return fmt.Errorf("failed to migrate EmailLog entity: %w", err)
	}

	if err = c.DB.Exec("CREATE INDEX IF NOT EXISTS idx_email_logs_job_recipient " +
		"ON email_logs (job_title, recipient_email);").Error; err != nil {
		return fmt.Errorf("failed to create email log index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
