package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken string `envconfig:"BOT_TOKEN" required:"true"`
	DBPath   string `envconfig:"DB_PATH" default:"./data/f1bot.db"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"` // healthz + metrics
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`  // debug|info|warn|error

	Season          int    `envconfig:"SEASON" default:"2025"`
	ErgastBaseURL   string `envconfig:"ERGAST_BASE_URL" default:"https://api.jolpi.ca/ergast/f1"`
	ErgastBackupURL string `envconfig:"ERGAST_BACKUP_URL" default:"https://ergast.com/api/f1"`

	ReminderTick time.Duration `envconfig:"REMINDER_TICK" default:"60s"`
	RefreshCron  string        `envconfig:"REFRESH_CRON" default:"0 */6 * * *"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
