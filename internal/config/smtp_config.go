package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SmtpConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	SenderName  string `mapstructure:"sender_name"`
	SenderEmail string `mapstructure:"sender_email"`
	Password    string `mapstructure:"password"`
	ResumeURL   string `mapstructure:"resume_url"`
	GithubURL   string `mapstructure:"github_url"`
	LinkedinURL string `mapstructure:"linkedin_url"`
}

func (config SmtpConfig) validate() error {

	var missingFields []string

	if config.Host == "" {
		missingFields = append(missingFields, "host")
	}

	if config.Port == 0 {
		missingFields = append(missingFields, "port")
	}

	if config.SenderEmail == "" {
		missingFields = append(missingFields, "sender_email")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config SmtpConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("smtp.sender_email", "SENDER_EMAIL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("smtp.password", "SENDER_PASSWORD"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("smtp.host", "SMTP_HOST"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("smtp.port", "SMTP_PORT"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
