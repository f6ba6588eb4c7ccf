package config

import (
	"github.com/spf13/viper"
)

// SearchConfig holds Google Custom Search credentials. Both fields are
// optional: when either is empty the search source is disabled and the
// pipeline runs on generated candidates alone.
type SearchConfig struct {
	APIKey                  string  `mapstructure:"api_key"`
	EngineID                string  `mapstructure:"engine_id"`
	MaxRequestsPerSecond    float32 `mapstructure:"max_requests_per_second"`
	RequestTimeoutInSeconds int     `mapstructure:"request_timeout_seconds"`
}

func (config SearchConfig) Enabled() bool {
	return config.APIKey != "" && config.EngineID != ""
}

func (config SearchConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("search.api_key", "GOOGLE_API_KEY"); err != nil {
		return err
	}
	return viper.BindEnv("search.engine_id", "GOOGLE_SEARCH_ENGINE_ID")
}
