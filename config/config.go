// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/afterquery/assessment-broker/shared"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	SentryDSN   string `env:"SENTRY_DSN"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	AdminAPIKey string `env:"ADMIN_API_KEY" validate:"required,min=32"`
	TokenPepper string `env:"TOKEN_PEPPER" validate:"required,min=16"`

	GithubAppID             int64  `env:"GITHUB_APP_ID" validate:"required"`
	GithubAppPrivateKeyPath string `env:"GITHUB_APP_PRIVATE_KEY_PATH" validate:"required"`
	GithubHost              string `env:"GITHUB_HOST" envDefault:"github.com" validate:"hostname_port|hostname"`
	// GithubAPIURL overrides the REST endpoint, e.g. for GitHub Enterprise.
	GithubAPIURL string `env:"GITHUB_API_URL" envDefault:"https://api.github.com/" validate:"url"`

	DefaultTokenTTL     time.Duration `env:"DEFAULT_TOKEN_TTL" envDefault:"8h"`
	SweepInterval       time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
	SweepBatchSize      int           `env:"SWEEP_BATCH_SIZE" envDefault:"200" validate:"min=1"`
	SweepConcurrency    int           `env:"SWEEP_CONCURRENCY" envDefault:"8" validate:"min=1"`
	UpstreamTimeout     time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"20s"`
	UpstreamMaxAttempts uint          `env:"UPSTREAM_MAX_ATTEMPTS" envDefault:"5" validate:"min=1"`
	// ExchangeRateLimit is the sustained number of exchanges per second and
	// client IP. The burst is twice the rate.
	ExchangeRateLimit float64 `env:"EXCHANGE_RATE_LIMIT" envDefault:"1" validate:"gt=0"`

	DisableAutomigrate bool `env:"DISABLE_AUTOMIGRATE" envDefault:"false"`
	DisableDaemons     bool `env:"DISABLE_DAEMONS" envDefault:"false"`
}

// Load parses the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse configuration: %w", err)
	}
	return cfg, Validate(cfg)
}

func Validate(cfg Config) error {
	if err := shared.V.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.DefaultTokenTTL <= 0 || cfg.SweepInterval <= 0 || cfg.UpstreamTimeout <= 0 {
		return fmt.Errorf("invalid configuration: durations must be positive")
	}
	if _, err := os.Stat(cfg.GithubAppPrivateKeyPath); err != nil {
		return fmt.Errorf("invalid configuration: github app private key: %w", err)
	}
	return nil
}
