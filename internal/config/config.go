package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

var defaultConfigPaths = []string{"config.yaml", "config.yml"}

// Config holds environment-driven configuration.
type Config struct {
	Env     string `koanf:"app_env"`
	Addr    string `koanf:"addr"`
	SiteURL string `koanf:"site_url"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	GoogleAPIKey string `koanf:"google_api_key"`
	GeminiModel  string `koanf:"gemini_model"`

	SerpAPIKey      string  `koanf:"serpapi_key"`
	GoogleCSEAPIKey string  `koanf:"google_cse_api_key"`
	GoogleCSECX     string  `koanf:"google_cse_cx"`
	LookupRate      float64 `koanf:"lookup_rate_per_sec"`

	WizardStore string        `koanf:"wizard_store"`
	DatabaseURL string        `koanf:"database_url"`
	BadgerPath  string        `koanf:"badger_path"`
	JWTSecret   string        `koanf:"jwt_secret"`
	SessionTTL  time.Duration `koanf:"session_ttl"`

	RecommendRateLimit int `koanf:"recommend_rate_limit"`

	Feedback FeedbackConfig `koanf:"feedback"`
}

// FeedbackConfig is the SMTP transport used by the feedback form.
type FeedbackConfig struct {
	SMTPHost   string `koanf:"smtp_host"`
	SMTPPort   int    `koanf:"smtp_port"`
	SMTPSecure bool   `koanf:"smtp_secure"`
	EmailUser  string `koanf:"email_user"`
	EmailPass  string `koanf:"email_pass"`
	ToEmail    string `koanf:"to_email"`
}

// Configured reports whether enough SMTP settings exist to send mail.
func (f FeedbackConfig) Configured() bool {
	return f.SMTPHost != "" && f.EmailUser != ""
}

// Recipient returns the address feedback mail is delivered to.
func (f FeedbackConfig) Recipient() string {
	if f.ToEmail != "" {
		return f.ToEmail
	}
	return f.EmailUser
}

// IsProduction reports whether the service runs with production semantics.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// IsDevelopment reports whether APP_ENV is development. Any other value,
// staging included, gets production behavior where it matters.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

func defaultConfig() Config {
	return Config{
		Env:                "development",
		Addr:               ":8080",
		SiteURL:            "https://bilmem.net",
		LogLevel:           "info",
		LogFormat:          "json",
		GeminiModel:        "gemini-2.0-flash",
		WizardStore:        "memory",
		BadgerPath:         "./data/wizard",
		SessionTTL:         30 * 24 * time.Hour,
		RecommendRateLimit: 20,
		Feedback: FeedbackConfig{
			SMTPPort: 587,
		},
	}
}

// Load reads configuration from .env, an optional yaml file and environment variables,
// in increasing order of priority.
func Load() (Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ADDR") == "" {
		cfg.Addr = ":" + port
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.WizardStore {
	case "memory", "badger":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when WIZARD_STORE=postgres")
		}
	default:
		return fmt.Errorf("unknown WIZARD_STORE %q (memory|postgres|badger)", c.WizardStore)
	}
	if c.IsProduction() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if c.LookupRate < 0 {
		return fmt.Errorf("LOOKUP_RATE_PER_SEC must be >= 0")
	}
	return nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	for _, p := range defaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransform maps environment variable names onto koanf paths.
// FEEDBACK_SMTP_HOST -> feedback.smtp_host, GOOGLE_API_KEY -> google_api_key.
// Variables that do not belong to the config are dropped.
func envTransform(key string) string {
	key = strings.ToLower(key)
	if strings.HasPrefix(key, "feedback_") {
		return "feedback." + strings.TrimPrefix(key, "feedback_")
	}
	if _, ok := knownKeys[key]; ok {
		return key
	}
	return ""
}

var knownKeys = map[string]struct{}{
	"app_env": {}, "addr": {}, "site_url": {}, "log_level": {}, "log_format": {},
	"google_api_key": {}, "gemini_model": {}, "serpapi_key": {}, "google_cse_api_key": {},
	"google_cse_cx": {}, "lookup_rate_per_sec": {}, "wizard_store": {}, "database_url": {},
	"badger_path": {}, "jwt_secret": {}, "session_ttl": {}, "recommend_rate_limit": {},
}
