package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

var (
	// ErrConfigurationMissing marks a required runtime value that is absent.
	ErrConfigurationMissing = errors.New("required configuration missing")
	// ErrInvalidColor marks a COLOR the page stylesheet cannot carry.
	ErrInvalidColor = errors.New("invalid display color")
)

// Named colors and #rgb, #rgba, #rrggbb, #rrggbbaa. Functional notations
// such as rgb() are rewritten to ZgotmplZ by html/template inside style
// attributes.
var colorPattern = regexp.MustCompile(`^(?:[a-zA-Z]+|#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8}))$`)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Color is the display color of the index page. It has no default.
	Color string `envconfig:"COLOR"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Color) == "" {
		return fmt.Errorf("%w: COLOR is required", ErrConfigurationMissing)
	}
	if !ValidColor(c.Color) {
		return fmt.Errorf("%w: COLOR=%q must be a color name or #hex value", ErrInvalidColor, c.Color)
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		return fmt.Errorf("%w: LOG_LEVEL must not be blank", ErrConfigurationMissing)
	}
	return nil
}

// DisplayColor returns the trimmed index page color.
func (c *Config) DisplayColor() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Color)
}

// ValidColor reports whether value, trimmed, is a color name or a hex color.
func ValidColor(value string) bool {
	value = strings.TrimSpace(value)
	if !colorPattern.MatchString(value) {
		return false
	}
	lower := strings.ToLower(value)
	return !strings.Contains(lower, "expression") && !strings.Contains(lower, "mozbinding")
}
