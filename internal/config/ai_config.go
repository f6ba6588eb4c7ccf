package config

import (
	"github.com/spf13/viper"
)

// AIConfig holds the Gemini credentials for the optional personalized-intro
// feature. An empty key disables the feature.
type AIConfig struct {
	Key                  string  `mapstructure:"key"`
	Model                string  `mapstructure:"model"`
	MaxRequestsPerMinute float32 `mapstructure:"max_requests_per_minute"`
	MaxRequestsPerDay    float32 `mapstructure:"max_requests_per_day"`
}

func (config AIConfig) Enabled() bool {
	return config.Key != ""
}

func (config AIConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("ai.key", "AI_KEY"); err != nil {
		return err
	}
	return viper.BindEnv("ai.model", "AI_MODEL")
}
