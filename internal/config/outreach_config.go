package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// OutreachConfig tunes the discovery/dispatch pipeline. Every knob has a
// working default so the section may be omitted entirely from the yaml.
type OutreachConfig struct {
	MaxQueries          int           `mapstructure:"max_queries"`
	QueryBatchSize      int           `mapstructure:"query_batch_size"`
	PagesPerQuery       int           `mapstructure:"pages_per_query"`
	CandidateFloor      int           `mapstructure:"candidate_floor"`
	DeepSearchDomains   int           `mapstructure:"deep_search_domains"`
	SendDelay           time.Duration `mapstructure:"send_delay"`
	LogRetentionInDays  int           `mapstructure:"log_retention_days"`
	FollowLinks         bool          `mapstructure:"follow_links"`
	MaxLinksPerQuery    int           `mapstructure:"max_links_per_query"`
	InterBatchBaseSleep time.Duration `mapstructure:"inter_batch_base_sleep"`
	InterPageSleep      time.Duration `mapstructure:"inter_page_sleep"`
}

func (config *OutreachConfig) applyDefaults() {
	if config.MaxQueries == 0 {
		config.MaxQueries = 80
	}
	if config.QueryBatchSize == 0 {
		config.QueryBatchSize = 8
	}
	if config.PagesPerQuery == 0 {
		config.PagesPerQuery = 3
	}
	if config.CandidateFloor == 0 {
		config.CandidateFloor = 15
	}
	if config.DeepSearchDomains == 0 {
		config.DeepSearchDomains = 5
	}
	if config.SendDelay == 0 {
		config.SendDelay = time.Second
	}
	if config.MaxLinksPerQuery == 0 {
		config.MaxLinksPerQuery = 3
	}
	if config.InterBatchBaseSleep == 0 {
		config.InterBatchBaseSleep = 2 * time.Second
	}
	if config.InterPageSleep == 0 {
		config.InterPageSleep = 500 * time.Millisecond
	}
}

func (config OutreachConfig) validate() error {

	if config.MaxQueries < 1 {
		return fmt.Errorf("max_queries must be positive")
	}

	if config.QueryBatchSize < 1 {
		return fmt.Errorf("query_batch_size must be positive")
	}

	if config.LogRetentionInDays < 0 {
		return fmt.Errorf("log_retention_days must be non-negative")
	}

	return nil
}

func (config OutreachConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("outreach.max_queries", "OUTREACH_MAX_QUERIES"); err != nil {
		return err
	}
	return viper.BindEnv("outreach.log_retention_days", "OUTREACH_LOG_RETENTION_DAYS")
}
