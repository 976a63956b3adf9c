package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	// TrustedProxies are the CIDRs whose X-Forwarded-For is believed when
	// identifying a client. Empty means the TCP peer is the client.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	Site     SiteConfig
	Contact  ContactConfig
	Email    EmailConfig
	Maps     MapsConfig
	Database DatabaseConfig
	Live     LiveConfig
	Otel     OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// SiteConfig holds page-level settings
type SiteConfig struct {
	Name        string `env:"SITE_NAME" envDefault:"gogetwell.ai"`
	URL         string `env:"SITE_URL" envDefault:"http://localhost:4002"`
	Description string `env:"SITE_DESCRIPTION" envDefault:"AI-powered websites and tools for healthcare facilitators."`
	HeroVideoID string `env:"HERO_VIDEO_ID" envDefault:"xQl8i2sO_Ls"`
	// LazySections renders below-the-fold sections as placeholders that the
	// browser fetches after the first paint.
	LazySections bool `env:"LAZY_SECTIONS" envDefault:"true"`
}

// ContactConfig controls how contact form submissions are delivered
type ContactConfig struct {
	// SimulatedDelay is used when no mail transport is configured
	SimulatedDelay time.Duration `env:"CONTACT_SIMULATED_DELAY" envDefault:"1s"`
	Recipient      string        `env:"CONTACT_RECIPIENT" envDefault:"hello@gogetwell.ai"`
	RatePerMinute  int           `env:"CONTACT_RATE_PER_MINUTE" envDefault:"5"`
	RateBurst      int           `env:"CONTACT_RATE_BURST" envDefault:"3"`
	Timeout        time.Duration `env:"CONTACT_SUBMIT_TIMEOUT" envDefault:"30s"`
}

// EmailConfig holds email service configuration
type EmailConfig struct {
	Enabled       bool   `env:"EMAIL_ENABLED" envDefault:"false"`
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	FromEmail     string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@gogetwell.ai"`
	FromName      string `env:"EMAIL_FROM_NAME" envDefault:"gogetwell.ai"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// MapsConfig configures the head office map embed
type MapsConfig struct {
	APIKey      string  `env:"MAPS_API_KEY" envDefault:""`
	CenterLat   float64 `env:"MAPS_CENTER_LAT" envDefault:"28.6139"`
	CenterLng   float64 `env:"MAPS_CENTER_LNG" envDefault:"77.2090"`
	Zoom        int     `env:"MAPS_ZOOM" envDefault:"15"`
	MarkerLabel string  `env:"MAPS_MARKER_LABEL" envDefault:"gogetwell.ai Head Office"`
	Address     string  `env:"MAPS_ADDRESS" envDefault:"New Delhi, India"`
}

// DatabaseConfig holds PostgreSQL connection settings for the optional
// submission archive. The archive is disabled when Host is empty.
type DatabaseConfig struct {
	Host         string        `env:"POSTGRES_HOST" envDefault:""`
	Port         int           `env:"POSTGRES_PORT" envDefault:"5432"`
	User         string        `env:"POSTGRES_USER" envDefault:"website"`
	Password     string        `env:"POSTGRES_PASSWORD" envDefault:""`
	Database     string        `env:"POSTGRES_DB" envDefault:"website"`
	SSLMode      string        `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"5"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"1"`
	MaxIdleTime  time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"5m"`
	QueryDebug   bool          `env:"DB_QUERY_DEBUG" envDefault:"false"`
	AutoMigrate  bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

// DSN returns the PostgreSQL connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.SSLMode,
	)
}

func (d *DatabaseConfig) IsConfigured() bool {
	return d.Host != ""
}

// LiveConfig tunes the per-page websocket session
type LiveConfig struct {
	ReadTimeout    time.Duration `env:"LIVE_READ_TIMEOUT" envDefault:"60s"`
	PingInterval   time.Duration `env:"LIVE_PING_INTERVAL" envDefault:"25s"`
	WriteTimeout   time.Duration `env:"LIVE_WRITE_TIMEOUT" envDefault:"10s"`
	MaxMessageSize int64         `env:"LIVE_MAX_MESSAGE_SIZE" envDefault:"16384"`
}

// Validate rejects settings the rest of the app cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT out of range: %d", c.ServerPort))
	}
	if c.Contact.RatePerMinute <= 0 {
		errs = append(errs, errors.New("CONTACT_RATE_PER_MINUTE must be positive"))
	}
	if c.Contact.RateBurst <= 0 {
		errs = append(errs, errors.New("CONTACT_RATE_BURST must be positive"))
	}
	if c.Contact.SimulatedDelay < 0 {
		errs = append(errs, errors.New("CONTACT_SIMULATED_DELAY must not be negative"))
	}
	if c.Live.PingInterval >= c.Live.ReadTimeout {
		errs = append(errs, errors.New("LIVE_PING_INTERVAL must be shorter than LIVE_READ_TIMEOUT"))
	}
	if _, err := c.TrustedProxyNets(); err != nil {
		errs = append(errs, err)
	}
	if c.Otel.SamplingRate < 0 || c.Otel.SamplingRate > 1 {
		errs = append(errs, fmt.Errorf("OTEL_SAMPLING_RATE out of range: %v", c.Otel.SamplingRate))
	}
	return errors.Join(errs...)
}

// TrustedProxyNets parses TrustedProxies. A bare address is a single host.
func (c *Config) TrustedProxyNets() ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, raw := range c.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "/") {
			if ip := net.ParseIP(raw); ip != nil && ip.To4() != nil {
				raw += "/32"
			} else {
				raw += "/128"
			}
		}
		_, n, err := net.ParseCIDR(raw)
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: invalid range %q", raw)
		}
		nets = append(nets, n)
	}
	return nets, nil
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig creates configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.Bool("email", cfg.Email.Enabled && cfg.Email.IsConfigured()),
		slog.Bool("archive", cfg.Database.IsConfigured()),
		slog.Bool("tracing", cfg.Otel.Enabled()),
	)

	return cfg, nil
}
