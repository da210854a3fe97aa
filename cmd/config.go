package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"sensorcoverage/internal/core/domain/services"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	HTTPPort       string `env:"HTTP_PORT,default=8080" validate:"required,numeric"`
	CountStrategy  string `env:"COUNT_STRATEGY,default=merge" validate:"oneof=merge point-set"`
	ReportPath     string `env:"REPORT_PATH" validate:"required_with=ReportSchedule"`
	ReportRow      int    `env:"REPORT_ROW,default=0"`
	ReportSchedule string `env:"REPORT_SCHEDULE"`
}

// Strategy returns the configured counting strategy.
func (c Config) Strategy() services.Strategy {
	return services.Strategy(c.CountStrategy)
}

// LoadConfig reads an optional .env file from the working directory, then
// the process environment. Variables already set in the environment win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	return ParseConfig(es)
}

// ParseConfig builds a Config from es, applying defaults and validating it.
func ParseConfig(es env.EnvSet) (Config, error) {
	var config Config
	if err := env.Unmarshal(es, &config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
