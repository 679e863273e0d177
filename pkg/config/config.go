// Package config loads the runtime configuration of the support form host
// and terminal front end: built-in defaults, then an optional YAML file, then
// SUPPORTFORM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure reported by Config.Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the merged configuration.
type Config struct {
	Addr         string        `yaml:"addr" env:"ADDR" validate:"required"`
	AssetsDir    string        `yaml:"assets_dir" env:"ASSETS_DIR"`
	AssetPrefix  string        `yaml:"asset_prefix" env:"ASSET_PREFIX" validate:"omitempty,startswith=/"`
	TemplatesDir string        `yaml:"templates_dir" env:"TEMPLATES_DIR"`
	Title        string        `yaml:"title" env:"TITLE"`
	Intro        string        `yaml:"intro" env:"INTRO"`
	LogLevel     string        `yaml:"log_level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn warning error"`
	Theme        ThemeConfig   `yaml:"theme" envPrefix:"THEME_"`
	Metrics      MetricsConfig `yaml:"metrics" envPrefix:"METRICS_"`
}

// ThemeConfig selects the page theme.
type ThemeConfig struct {
	Variant string            `yaml:"variant" env:"VARIANT"`
	Tokens  map[string]string `yaml:"tokens" env:"TOKENS"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" env:"ENABLED"`
	Namespace string `yaml:"namespace" env:"NAMESPACE" validate:"required_if=Enabled true"`
}

// EnvPrefix namespaces every environment variable.
const EnvPrefix = "SUPPORTFORM_"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:        ":8080",
		AssetsDir:   "web",
		AssetPrefix: "/assets",
		LogLevel:    "info",
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "supportform",
		},
	}
}

// Load merges defaults, the YAML file at path (skipped when empty) and the
// environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv overlays SUPPORTFORM_* environment variables onto target. Unset
// variables leave existing values untouched.
func ParseEnv(target *Config) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate rejects configurations the host cannot start with. Values are
// trimmed and the log level case-folded before the struct rules run.
func (c Config) Validate() error {
	normalized := c.normalize()
	err := validate.Struct(&normalized)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	issues := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issue := fmt.Sprintf("%s fails %s", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			issue += "=" + fe.Param()
		}
		issues = append(issues, issue)
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(issues, "; "))
}

func (c Config) normalize() Config {
	c.Addr = strings.TrimSpace(c.Addr)
	c.AssetPrefix = strings.TrimSpace(c.AssetPrefix)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Metrics.Namespace = strings.TrimSpace(c.Metrics.Namespace)
	return c
}

// ParseLevel maps a level name onto slog levels. The empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalid, name)
	}
}
