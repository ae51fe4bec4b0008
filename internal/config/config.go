// Package config holds the environment-derived configuration for the
// automated report path.
package config

import (
	"github.com/caarlos0/env/v11"
)

// Config identifies the league issue and the output file. It is built once at
// process start and passed explicitly; nothing reads the environment after
// this.
type Config struct {
	Owner      string `env:"GITHUB_OWNER"`
	Repo       string `env:"GITHUB_REPO"`
	Issue      int    `env:"LEAGUE_ISSUE"`
	Token      string `env:"GITHUB_TOKEN" envDefault:""`
	ReportFile string `env:"REPORT_FILE" envDefault:"LEADERBOARD.md"`
}

// ReadEnv parses the configuration from the process environment.
func ReadEnv(cfg *Config) error {
	return env.Parse(cfg)
}
