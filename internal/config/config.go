package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultDatabaseURL = "postgres://localhost:5432/eventsite?sslmode=disable"

type Config struct {
	HTTPAddr         string `env:"HTTP_ADDR" envDefault:":8080"`
	PublicBaseURL    string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL      string `env:"DATABASE_URL"`
	DBMaxConns       int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	DefaultLocale    string `env:"DEFAULT_LOCALE" envDefault:"en"`
	ViewerHeader     string `env:"VIEWER_HEADER" envDefault:"X-Viewer-ID"`
	GoogleMapsAPIKey string `env:"GOOGLE_MAPS_API_KEY"`
	DiscordToken     string `env:"DISCORD_TOKEN"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DiscordEnabled reports whether publication notifications go to Discord.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// validate applies the rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("config: HTTP_ADDR cannot be empty")
	}

	if c.DBMaxConns < 1 {
		return fmt.Errorf("config: DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
	}

	if strings.TrimSpace(c.ViewerHeader) == "" {
		return fmt.Errorf("config: VIEWER_HEADER cannot be empty")
	}

	if c.DiscordEnabled() {
		if strings.TrimSpace(c.DiscordChannelID) == "" {
			return fmt.Errorf("config: DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
		}
		for _, r := range c.DiscordChannelID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: DISCORD_CHANNEL_ID must be a Discord channel ID (digits only)")
			}
		}
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Handy default for local runs without DATABASE_URL.
		c.DatabaseURL = defaultDatabaseURL
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}
