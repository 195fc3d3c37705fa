package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort               = "8080"
	defaultRateTableURL       = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist.zip"
	defaultRateTableDir       = "currency_conversions"
	defaultRateFetchTimeout   = 30 * time.Second
	defaultMaxLookbackDays    = 14
	defaultRateLimit          = "60-M"
	defaultSupportedLanguages = "en,no,et,sv"
	defaultLanguage           = "en"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Exchange rates
	RateTableURL        string
	RateTableDir        string
	RateFetchTimeout    time.Duration
	RateMaxLookbackDays int

	// HTTP surface
	RateLimit          string
	CORSAllowedOrigins []string
	SupportedLanguages []string
	DefaultLanguage    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RATE_TABLE_URL", defaultRateTableURL)
	v.SetDefault("RATE_TABLE_DIR", defaultRateTableDir)
	v.SetDefault("RATE_FETCH_TIMEOUT", defaultRateFetchTimeout.String())
	v.SetDefault("RATE_MAX_LOOKBACK_DAYS", defaultMaxLookbackDays)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SUPPORTED_LANGUAGES", defaultSupportedLanguages)
	v.SetDefault("DEFAULT_LANGUAGE", defaultLanguage)

	// Environment variables override defaults, including values loaded from .env.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		RateTableURL:  v.GetString("RATE_TABLE_URL"),
		RateTableDir:  v.GetString("RATE_TABLE_DIR"),
		RateLimit:     v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT environment variable not set.", slog.String("default", cfg.Port))
	}

	timeoutStr := v.GetString("RATE_FETCH_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = defaultRateFetchTimeout
		slog.Warn("Invalid value for RATE_FETCH_TIMEOUT.", slog.String("value", timeoutStr), slog.String("default", timeout.String()))
	}
	cfg.RateFetchTimeout = timeout

	cfg.RateMaxLookbackDays = v.GetInt("RATE_MAX_LOOKBACK_DAYS")
	if cfg.RateMaxLookbackDays <= 0 {
		slog.Warn("Invalid value for RATE_MAX_LOOKBACK_DAYS.", slog.String("value", v.GetString("RATE_MAX_LOOKBACK_DAYS")), slog.Int("default", defaultMaxLookbackDays))
		cfg.RateMaxLookbackDays = defaultMaxLookbackDays
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"), false)
	cfg.SupportedLanguages = splitList(v.GetString("SUPPORTED_LANGUAGES"), true)
	if len(cfg.SupportedLanguages) == 0 {
		cfg.SupportedLanguages = splitList(defaultSupportedLanguages, true)
	}

	cfg.DefaultLanguage = strings.ToLower(strings.TrimSpace(v.GetString("DEFAULT_LANGUAGE")))
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = defaultLanguage
	}

	return cfg, nil
}

// splitList parses a comma separated setting, dropping blanks.
func splitList(raw string, lower bool) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if lower {
			p = strings.ToLower(p)
		}
		out = append(out, p)
	}
	return out
}
