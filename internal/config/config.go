package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pelletier/go-toml/v2"

	"wordfind/internal/eventbus"
	"wordfind/internal/lookup"
)

// DefaultBaseURL is the Free Dictionary entries endpoint for English
const DefaultBaseURL = lookup.DefaultBaseURL

// Config represents the application configuration
type Config struct {
	Version int          `toml:"version"`
	Lookup  LookupConfig `toml:"lookup"`
	UI      UISettings   `toml:"ui"`
	Log     LogConfig    `toml:"log"`
}

// LookupConfig holds the dictionary service settings
type LookupConfig struct {
	BaseURL   string   `toml:"base_url"   env:"WORDFIND_BASE_URL"`
	Timeout   Duration `toml:"timeout"    env:"WORDFIND_TIMEOUT"`
	RateLimit int      `toml:"rate_limit" env:"WORDFIND_RATE_LIMIT"` // requests per second, 0 disables
}

// UISettings represents UI-related configuration
type UISettings struct {
	SampleWords         []string `toml:"sample_words"         env:"WORDFIND_SAMPLE_WORDS" env-separator:","`
	PlaceholderInterval Duration `toml:"placeholder_interval" env:"WORDFIND_PLACEHOLDER_INTERVAL"`
	HistorySize         int      `toml:"history_size"         env:"WORDFIND_HISTORY_SIZE"`
	AltScreen           bool     `toml:"alt_screen"           env:"WORDFIND_ALT_SCREEN"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level"  env:"WORDFIND_LOG_LEVEL"`
	Format string `toml:"format" env:"WORDFIND_LOG_FORMAT"`
	File   string `toml:"file"   env:"WORDFIND_LOG_FILE"`
}

// Duration is a time.Duration that reads and writes as "3s" in TOML and env
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// SetValue lets cleanenv parse the env value
func (d *Duration) SetValue(s string) error {
	return d.UnmarshalText([]byte(s))
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path, or the default
// location under the user config dir when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns <user config dir>/wordfind/config.toml
func DefaultPath() string {
	if p := os.Getenv("WORDFIND_CONFIG"); p != "" {
		return p
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "wordfind", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file if present, falling back to defaults.
// Environment overrides are applied on top in both cases.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := finalize(cfg); err != nil {
			return nil, err
		}
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			BaseURL: cfg.Lookup.BaseURL,
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := finalize(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// finalize applies environment overrides and validates the result
func finalize(cfg *Config) error {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the client cannot run with
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.Lookup.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("lookup.base_url must be an absolute http(s) URL, got %q", c.Lookup.BaseURL))
	}
	if c.Lookup.Timeout < 0 {
		errs = append(errs, fmt.Errorf("lookup.timeout must not be negative"))
	}
	if c.Lookup.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("lookup.rate_limit must not be negative"))
	}
	if c.UI.PlaceholderInterval <= 0 {
		errs = append(errs, fmt.Errorf("ui.placeholder_interval must be positive"))
	}
	if c.UI.HistorySize < 0 {
		errs = append(errs, fmt.Errorf("ui.history_size must not be negative"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Lookup: LookupConfig{
			BaseURL:   DefaultBaseURL,
			Timeout:   Duration(lookup.DefaultTimeout),
			RateLimit: lookup.DefaultRateLimit,
		},
		UI: UISettings{
			SampleWords:         []string{"hello", "beautiful", "serendipity", "eloquent", "adventure"},
			PlaceholderInterval: Duration(3 * time.Second),
			HistorySize:         5,
			AltScreen:           true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   defaultLogFile(),
		},
	}
}

func defaultLogFile() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "wordfind.log"
	}
	return filepath.Join(cacheDir, "wordfind", "wordfind.log")
}
