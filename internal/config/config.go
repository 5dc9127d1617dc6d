// Package config loads CLI and server settings.
//
// Precedence (highest to lowest): flags > TURING_* env vars > config file > defaults.
package config

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
)

const (
	EnvPrefix = "TURING_"

	DefaultOutput    = "text"
	DefaultHTTPAddr  = ":8080"
	DefaultRedisAddr = "localhost:6379"
	DefaultPrefix    = "turing:run:"

	// DefaultGraphLimit bounds the overlay run of "turing graph -T" when no
	// limit is configured.
	DefaultGraphLimit = 100000
)

// Output formats understood by the CLI.
const (
	OutputText     = "text"
	OutputJSON     = "json"
	OutputMarkdown = "markdown"
)

// Config holds all CLI configuration options.
type Config struct {
	Mode     string      `koanf:"mode"`
	Limit    int         `koanf:"limit"`
	LogLevel string      `koanf:"log_level"`
	LogFile  string      `koanf:"log_file"`
	Output   string      `koanf:"output"`
	Redis    RedisConfig `koanf:"redis"`

	// HistoryDir stores runs as JSON files instead of in Redis.
	HistoryDir string `koanf:"history_dir"`
	HTTP     HTTPConfig  `koanf:"http"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// RedisConfig configures the run history store.
type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl"`
	Prefix   string        `koanf:"prefix"`

	// EncryptionKey seals stored records at rest (base64, 32 bytes).
	EncryptionKey string `koanf:"encryption_key"`
	// FallbackKeys are retired keys still accepted for reading.
	FallbackKeys []string `koanf:"fallback_keys"`
}

// Keys decodes the encryption keys. active is nil when encryption is off.
func (r RedisConfig) Keys() (active []byte, fallback [][]byte, err error) {
	if r.EncryptionKey == "" {
		return nil, nil, nil
	}
	if active, err = decodeKey(r.EncryptionKey); err != nil {
		return nil, nil, fmt.Errorf("redis.encryption_key: %w", err)
	}
	for i, k := range r.FallbackKeys {
		key, err := decodeKey(k)
		if err != nil {
			return nil, nil, fmt.Errorf("redis.fallback_keys[%d]: %w", i, err)
		}
		fallback = append(fallback, key)
	}
	return active, fallback, nil
}

func decodeKey(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("not valid base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("key must be 32 bytes, got %d", len(key))
	}
	return key, nil
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr string `koanf:"addr"`
}

// flagKeys bridges CLI flag names to config keys when they differ.
var flagKeys = map[string]string{
	"log-file":   "log_file",
	"addr":       "http.addr",
	"redis-addr": "redis.addr",
}

// findConfigFile finds the config file to use.
// Priority: explicit path > turing.yaml > turing.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"turing.yaml", "turing.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// envKey maps TURING_REDIS_ADDR to redis.addr and TURING_LOG_LEVEL to log_level.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"redis", "http"} {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}

// Load reads configuration from defaults, the config file, the environment
// and the explicitly set flags. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"mode":         string(domain.ModeDeterministic),
		"limit":        0,
		"log_level":    "info",
		"output":       DefaultOutput,
		"redis.addr":   DefaultRedisAddr,
		"redis.db":     0,
		"redis.ttl":    "0s",
		"redis.prefix": DefaultPrefix,
		"http.addr":    DefaultHTTPAddr,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (only those explicitly set)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			switch f.Name {
			case "nondeterministic":
				if f.Value.String() == "true" {
					return "mode", string(domain.ModeNonDeterministic)
				}
				return "", nil
			case "debug":
				if f.Value.String() == "true" {
					return "log_level", "debug"
				}
				return "", nil
			}
			if key, ok := flagKeys[f.Name]; ok {
				return key, posflag.FlagVal(flags, f)
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := domain.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputMarkdown:
	default:
		return fmt.Errorf("invalid config: unknown output format %q", c.Output)
	}
	if _, _, err := c.Redis.Keys(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Limit < 0 {
		return fmt.Errorf("invalid config: limit must not be negative, got %d", c.Limit)
	}
	return nil
}

// ExecutionMode returns the parsed mode. Validate guarantees it parses.
func (c *Config) ExecutionMode() domain.Mode {
	mode, _ := domain.ParseMode(c.Mode)
	return mode
}

// Level returns the parsed log level. Validate guarantees it parses.
func (c *Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}
