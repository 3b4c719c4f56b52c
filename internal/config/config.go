package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the tool configuration loaded from the environment.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	PiholeURL    string `mapstructure:"pihole_url"`
	PiholeAPIKey string `mapstructure:"pihole_api_key"`

	// DisableSeconds is passed through to the appliance unmodified; zero
	// means "until re-enabled" upstream, so no bound is enforced here.
	DisableSeconds float64 `mapstructure:"disable_seconds"`

	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`

	ProbeAdminPage bool   `mapstructure:"probe_admin_page"`
	NotifiersFile  string `mapstructure:"notifiers_file"`

	JournalType           string        `mapstructure:"journal_type"`
	JournalPath           string        `mapstructure:"journal_path"`
	JournalTTLSeconds     int64         `mapstructure:"journal_ttl_seconds"`
	JournalCleanupSeconds int64         `mapstructure:"journal_cleanup_interval_seconds"`
	JournalTTL            time.Duration `mapstructure:"-"`
	JournalCleanup        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables, with an optional .env
// file for local use. Appliance URL and key are carried verbatim; their
// shape is checked at wiring time so the diagnostic names the field before
// any network activity.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("app_name", "adpause")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("pihole_url", "")
	v.SetDefault("pihole_api_key", "")
	v.SetDefault("disable_seconds", 30)
	v.SetDefault("request_timeout_seconds", 10)
	v.SetDefault("probe_admin_page", false)
	v.SetDefault("notifiers_file", "")
	v.SetDefault("journal_type", "bbolt")
	v.SetDefault("journal_path", "./data/journal.db")
	v.SetDefault("journal_ttl_seconds", int64((30*24*time.Hour)/time.Second))
	v.SetDefault("journal_cleanup_interval_seconds", int64((24*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	if cfg.JournalTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid journal_ttl_seconds (must be positive seconds)")
	}
	if cfg.JournalCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid journal_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.JournalTTL = time.Duration(cfg.JournalTTLSeconds) * time.Second
	cfg.JournalCleanup = time.Duration(cfg.JournalCleanupSeconds) * time.Second

	return &cfg, nil
}
