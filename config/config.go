package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Site          SiteConfig
	Auth          AuthConfig
	ReCAPTCHA     ReCAPTCHAConfig
	SendGrid      SendGridConfig
	Storage       StorageConfig
	EventTriggers EventTriggerConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL      string
	MaxConns int32
	MinConns int32
}

// SiteConfig describes the marketing site this API serves.
// BaseURL is the single canonical domain every generated URL (sitemap,
// canonical, JSON-LD) must share.
type SiteConfig struct {
	BaseURL      string
	BusinessName string
	BusinessType string
}

type AuthConfig struct {
	AdminAPIToken string
}

type ReCAPTCHAConfig struct {
	SecretKey string
	SiteKey   string
}

type SendGridConfig struct {
	APIKey     string
	FromEmail  string
	FromName   string
	LeadsEmail string // inbox that receives lead notifications
}

type StorageConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string
	Region          string
}

type EventTriggerConfig struct {
	LeadCreatedTriggerURL string
	AnalyticsEndpoint     string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	CollectorEndpoint string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type CacheConfig struct {
	SeoTTLSeconds int // SEO artifact cache TTL in seconds
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8081")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "https://ashworthrenovations.co.uk")
	v.SetDefault("BUSINESS_NAME", "Ashworth Renovations")
	v.SetDefault("BUSINESS_TYPE", "HomeAndConstructionBusiness")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "https://ashworthrenovations.co.uk,https://www.ashworthrenovations.co.uk")
	v.SetDefault("DATABASE_MAX_CONNS", 10)
	v.SetDefault("DATABASE_MIN_CONNS", 2)
	v.SetDefault("SENDGRID_FROM_NAME", "Ashworth Renovations")
	v.SetDefault("STORAGE_REGION", "eu-west-2")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "") // OTLP over HTTP; empty disables tracing
	v.SetDefault("O11Y_SERVICE_NAME", "ashworth-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "ashworth-prod")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "ashworth-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines,mutex,block")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)
	v.SetDefault("SEO_CACHE_TTL", 86400) // content is static, refresh daily

	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			MaxConns: v.GetInt32("DATABASE_MAX_CONNS"),
			MinConns: v.GetInt32("DATABASE_MIN_CONNS"),
		},
		Site: SiteConfig{
			BaseURL:      strings.TrimSuffix(v.GetString("BASE_URL"), "/"),
			BusinessName: v.GetString("BUSINESS_NAME"),
			BusinessType: v.GetString("BUSINESS_TYPE"),
		},
		Auth: AuthConfig{
			AdminAPIToken: v.GetString("ADMIN_API_TOKEN"),
		},
		ReCAPTCHA: ReCAPTCHAConfig{
			SecretKey: v.GetString("RECAPTCHA_SECRET_KEY"),
			SiteKey:   v.GetString("RECAPTCHA_SITE_KEY"),
		},
		SendGrid: SendGridConfig{
			APIKey:     v.GetString("SENDGRID_API_KEY"),
			FromEmail:  v.GetString("SENDGRID_FROM_EMAIL"),
			FromName:   v.GetString("SENDGRID_FROM_NAME"),
			LeadsEmail: v.GetString("LEADS_NOTIFY_EMAIL"),
		},
		Storage: StorageConfig{
			AccessKeyID:     v.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("STORAGE_SECRET_ACCESS_KEY"),
			BucketName:      v.GetString("STORAGE_BUCKET_NAME"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			Region:          v.GetString("STORAGE_REGION"),
		},
		EventTriggers: EventTriggerConfig{
			LeadCreatedTriggerURL: v.GetString("LEAD_CREATED_TRIGGER_URL"),
			AnalyticsEndpoint:     v.GetString("ANALYTICS_ENDPOINT"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			CollectorEndpoint: v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("O11Y_SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			SeoTTLSeconds: v.GetInt("SEO_CACHE_TTL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Site.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if !strings.HasPrefix(c.Site.BaseURL, "https://") {
		return fmt.Errorf("BASE_URL must use https, got %q", c.Site.BaseURL)
	}
	return nil
}

// IsDevelopment returns true when running in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true when running in production
func (c *Config) IsProduction() bool {
	return !c.IsDevelopment()
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
