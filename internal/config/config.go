package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Output formats.
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvFormat      = enumfiles.EnvPrefix + "FORMAT"
	EnvColor       = enumfiles.EnvPrefix + "COLOR"
	EnvConcurrency = enumfiles.EnvPrefix + "CONCURRENCY"
)

// Formats lists the accepted output formats, in help order.
var Formats = []string{FormatPlain, FormatJSON, FormatYAML}

// ColorModes lists the accepted color modes, in help order.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Config holds the CLI defaults that can be set outside the command line.
type Config struct {
	Format      string `yaml:"format"`
	Color       string `yaml:"color"`
	Concurrency int    `yaml:"concurrency"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:      FormatPlain,
		Color:       ColorAuto,
		Concurrency: enumfiles.DefaultConcurrency,
	}
}

// Load reads enumfiles.yaml from dir. Fields absent from the file keep
// their defaults.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, enumfiles.ConfigFileName))
}

// LoadFile reads the configuration at configPath.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", enumfiles.ErrInvalidConfig, configPath, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from the ENUMFILES_* variables. Values are taken
// from the process environment first and then from the dotenv file at
// dotenvPath. Empty values count as unset. A missing dotenv file is
// ignored; an empty dotenvPath skips it entirely.
func ApplyEnv(cfg *Config, dotenvPath string) error {
	dotenv := map[string]string{}
	if dotenvPath != "" {
		values, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			dotenv = values
		case errors.Is(err, fs.ErrNotExist):
			// no .env file
		default:
			return fmt.Errorf("%w: read %s: %v", enumfiles.ErrInvalidConfig, dotenvPath, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v := dotenv[key]
		return v, v != ""
	}

	if v, ok := lookup(EnvFormat); ok {
		cfg.Format = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvColor); ok {
		cfg.Color = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvConcurrency); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", enumfiles.ErrInvalidConfig, EnvConcurrency, v)
		}
		cfg.Concurrency = n
	}
	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if !contains(Formats, c.Format) {
		return fmt.Errorf("%w: %w %q (valid: %s)", enumfiles.ErrInvalidConfig, enumfiles.ErrInvalidFormat,
			c.Format, strings.Join(Formats, ", "))
	}
	if !contains(ColorModes, c.Color) {
		return fmt.Errorf("%w: color %q (valid: %s)", enumfiles.ErrInvalidConfig,
			c.Color, strings.Join(ColorModes, ", "))
	}
	if c.Concurrency < 1 || c.Concurrency > enumfiles.MaxConcurrency {
		return fmt.Errorf("%w: concurrency %d (valid: 1-%d)", enumfiles.ErrInvalidConfig,
			c.Concurrency, enumfiles.MaxConcurrency)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
