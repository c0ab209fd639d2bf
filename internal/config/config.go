package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Output formats understood by the userinfo command.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the CLI configuration loaded from an optional .env file and
// environment variables.
type Config struct {
	AppName        string        `mapstructure:"app_name"`
	Env            string        `mapstructure:"app_env"`
	LogLevel       string        `mapstructure:"log_level"`
	BaseURL        string        `mapstructure:"authdog_base_url"`
	APIKey         string        `mapstructure:"authdog_api_key" json:"-"`
	AccessToken    string        `mapstructure:"authdog_access_token" json:"-"`
	TimeoutSeconds int64         `mapstructure:"authdog_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	OutputFormat   string        `mapstructure:"output_format"`
	MetricsEnabled bool          `mapstructure:"metrics_enabled"`
}

// Load reads configuration from configs/.env (if present) and the environment.
func Load() (*Config, error) {
	return LoadFile("configs/.env")
}

// LoadFile is Load with an explicit .env path. A missing file is not an error.
func LoadFile(envFile string) (*Config, error) {
	_ = godotenv.Load(envFile)

	v := viper.New()

	v.SetDefault("app_name", "authdog-userinfo")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("authdog_base_url", "")
	v.SetDefault("authdog_api_key", "")
	v.SetDefault("authdog_access_token", "")
	v.SetDefault("authdog_timeout_seconds", 10)
	v.SetDefault("output_format", FormatJSON)
	v.SetDefault("metrics_enabled", false)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL == "" {
		return fmt.Errorf("authdog_base_url is required")
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid authdog_timeout_seconds (must be zero or positive seconds)")
	}
	c.Timeout = time.Duration(c.TimeoutSeconds) * time.Second

	return c.SetOutputFormat(c.OutputFormat)
}

// SetOutputFormat validates format and stores its normalized form. The
// current value is kept when format is rejected.
func (c *Config) SetOutputFormat(format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case FormatJSON, FormatYAML:
		c.OutputFormat = format
		return nil
	default:
		return fmt.Errorf("unsupported output_format %q (expected json or yaml)", format)
	}
}
