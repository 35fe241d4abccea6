// Package config loads the server configuration from defaults, a YAML file,
// .env files and CANOVA_* environment variables, in increasing precedence.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. CANOVA_SERVER_ADDR.
const EnvPrefix = "CANOVA_"

// Store drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

// Config is the complete server configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Auth   AuthConfig   `mapstructure:"auth" yaml:"auth"`
	Store  StoreConfig  `mapstructure:"store" yaml:"store"`
	Media  MediaConfig  `mapstructure:"media" yaml:"media"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr" yaml:"addr"`
	FrontendURL  string        `mapstructure:"frontend_url" yaml:"frontend_url"`
	CORSOrigins  []string      `mapstructure:"cors_origins" yaml:"cors_origins"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	Metrics      bool          `mapstructure:"metrics" yaml:"metrics"`
}

// AuthConfig configures access tokens.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" yaml:"token_ttl"`
}

// StoreConfig selects and configures the document store.
type StoreConfig struct {
	Driver      string        `mapstructure:"driver" yaml:"driver"`
	RedisURL    string        `mapstructure:"redis_url" yaml:"redis_url"`
	RedisPrefix string        `mapstructure:"redis_prefix" yaml:"redis_prefix"`
	SQLitePath  string        `mapstructure:"sqlite_path" yaml:"sqlite_path"`
	LockTTL     time.Duration `mapstructure:"lock_ttl" yaml:"lock_ttl"`
	// EncryptionKey is a base64 AES-256 key. When set, response answers are encrypted at rest.
	EncryptionKey string `mapstructure:"encryption_key" yaml:"encryption_key"`
	// RedactQuestions are patterns of question ids whose answers are masked before saving.
	RedactQuestions []string `mapstructure:"redact_questions" yaml:"redact_questions"`
}

// MediaConfig configures the on-disk media host.
type MediaConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

func defaults() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"addr":          ":8080",
			"frontend_url":  "http://localhost:5173",
			"cors_origins":  []any{"http://localhost:5173"},
			"read_timeout":  "15s",
			"write_timeout": "60s",
			"metrics":       true,
		},
		"auth": map[string]any{
			"jwt_secret": "",
			"token_ttl":  "168h",
		},
		"store": map[string]any{
			"driver":           DriverMemory,
			"redis_url":        "redis://localhost:6379/0",
			"redis_prefix":     "canova:",
			"sqlite_path":      "canova.db",
			"lock_ttl":         "30s",
			"encryption_key":   "",
			"redact_questions": []any{},
		},
		"media": map[string]any{
			"dir":      ".canova/media",
			"base_url": "http://localhost:8080/media",
		},
		"log": map[string]any{
			"level": "info",
		},
	}
}

// aliases maps unprefixed variables of the usual deployment environment to config keys.
var aliases = map[string]string{
	"JWT_SECRET":   "auth.jwt_secret",
	"FRONTEND_URL": "server.frontend_url",
	"REDIS_URL":    "store.redis_url",
}

// Options controls where Load looks for configuration.
type Options struct {
	// File is a YAML (or JSON) file. A missing file is an error only when set explicitly.
	File string
	// EnvFiles are loaded into the process environment without overriding it.
	// Missing files are ignored.
	EnvFiles []string
	// Environ replaces os.Environ, for tests.
	Environ []string
}

// Load assembles the configuration and validates it.
func Load(opts Options) (*Config, error) {
	for _, f := range opts.EnvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	raw := defaults()
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		var fromFile map[string]any
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", opts.File, err)
		}
		merge(raw, fromFile)
	}

	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	applyEnv(raw, environ)

	var cfg Config
	if err := decode(raw, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				merge(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}

// applyEnv overrides raw with CANOVA_<SECTION>_<KEY> variables and the aliases.
// Prefixed variables win over aliases.
func applyEnv(raw map[string]any, environ []string) {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			env[k] = v
		}
	}

	for name, path := range aliases {
		if v, ok := env[name]; ok && v != "" {
			set(raw, path, v)
		}
	}
	for _, path := range Keys() {
		name := EnvPrefix + strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
		if v, ok := env[name]; ok {
			set(raw, path, v)
		}
	}
}

func set(raw map[string]any, path, value string) {
	section, key, _ := strings.Cut(path, ".")
	m, ok := raw[section].(map[string]any)
	if !ok {
		m = map[string]any{}
		raw[section] = m
	}
	m[key] = value
}

// Keys lists every configuration key as section.key, sorted.
func Keys() []string {
	var keys []string
	for section, v := range defaults() {
		for key := range v.(map[string]any) {
			keys = append(keys, section+"."+key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the values the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case DriverMemory, DriverRedis, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("store.driver: unknown driver %q", c.Store.Driver))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if c.Store.LockTTL <= 0 {
		errs = append(errs, errors.New("store.lock_ttl must be positive"))
	}
	if c.Store.EncryptionKey != "" {
		if key, err := base64.StdEncoding.DecodeString(c.Store.EncryptionKey); err != nil || len(key) != 32 {
			errs = append(errs, errors.New("store.encryption_key must be 32 bytes, base64 encoded"))
		}
	}
	return errors.Join(errs...)
}
