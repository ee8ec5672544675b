package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to an env var; API keys come from the vendor signup
// pages (USDA: fdc.nal.usda.gov/api-key-signup, Spoonacular: spoonacular.com).
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database — a sqlite file path by default, or a postgres:// DSN.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis — optional vendor-response cache; empty disables caching.
	RedisURL      string `mapstructure:"REDIS_URL"`
	CacheTTLHours int    `mapstructure:"CACHE_TTL_HOURS"`

	// Vendor APIs
	OFFBaseURL         string `mapstructure:"OFF_BASE_URL"`
	USDABaseURL        string `mapstructure:"USDA_BASE_URL"`
	USDAAPIKey         string `mapstructure:"USDA_API_KEY"`
	NIHBaseURL         string `mapstructure:"NIH_BASE_URL"`
	SpoonacularBaseURL string `mapstructure:"SPOONACULAR_BASE_URL"`
	SpoonacularAPIKey  string `mapstructure:"SPOONACULAR_API_KEY"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	UserAgent          string `mapstructure:"HTTP_USER_AGENT"`

	// Exports
	ExportPath string `mapstructure:"EXPORT_PATH"`
	ReportPath string `mapstructure:"REPORT_PATH"`

	// SMTP — optional ingest run summary mail; empty host disables it.
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      int    `mapstructure:"SMTP_PORT"`
	SMTPUser      string `mapstructure:"SMTP_USER"`
	SMTPPassword  string `mapstructure:"SMTP_PASSWORD"`
	SummaryMailTo string `mapstructure:"SUMMARY_MAIL_TO"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "supplements.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CACHE_TTL_HOURS", 24)
	viper.SetDefault("OFF_BASE_URL", "https://world.openfoodfacts.org")
	viper.SetDefault("USDA_BASE_URL", "https://api.nal.usda.gov/fdc/v1")
	viper.SetDefault("USDA_API_KEY", "DEMO_KEY")
	viper.SetDefault("NIH_BASE_URL", "https://api.ods.od.nih.gov/dsld/v8")
	viper.SetDefault("SPOONACULAR_BASE_URL", "https://api.spoonacular.com")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 10)
	viper.SetDefault("HTTP_USER_AGENT", "SupplementDB-Bot/1.0 (Educational Purpose)")
	viper.SetDefault("EXPORT_PATH", "supplements_database.json")
	viper.SetDefault("REPORT_PATH", "supplements_report.pdf")
	viper.SetDefault("SMTP_PORT", 587)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
