package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read as settings.
const EnvPrefix = "QUEST"

// Config represents the quest CLI settings
type Config struct {
	QuestFile       string `mapstructure:"file" json:"file,omitempty"`
	EnvFile         string `mapstructure:"env_file" json:"env_file,omitempty"`
	Timeout         string `mapstructure:"timeout" json:"timeout,omitempty"` // "30" (seconds) or "30s"
	LogLevel        string `mapstructure:"log_level" json:"log_level,omitempty"`
	MaxRedirects    int    `mapstructure:"max_redirects" json:"max_redirects,omitempty"`
	FollowRedirects *bool  `mapstructure:"follow_redirects" json:"follow_redirects,omitempty"`
	Insecure        *bool  `mapstructure:"insecure" json:"insecure,omitempty"`
	NoColor         *bool  `mapstructure:"no_color" json:"no_color,omitempty"`
	Gzip            *bool  `mapstructure:"gzip" json:"gzip,omitempty"`
	Deflate         *bool  `mapstructure:"deflate" json:"deflate,omitempty"`
	Brotli          *bool  `mapstructure:"brotli" json:"brotli,omitempty"`
}

// BoolPtr returns a pointer to b, for building partial configs.
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetFollowRedirects returns the follow redirects setting, defaulting to true
func (c *Config) GetFollowRedirects() bool {
	return getBool(c.FollowRedirects, true)
}

// GetInsecure returns whether TLS verification is disabled, defaulting to false
func (c *Config) GetInsecure() bool {
	return getBool(c.Insecure, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

func (c *Config) GetGzip() bool    { return getBool(c.Gzip, false) }
func (c *Config) GetDeflate() bool { return getBool(c.Deflate, false) }
func (c *Config) GetBrotli() bool  { return getBool(c.Brotli, false) }

// TimeoutDuration parses Timeout. A bare number is a count of seconds.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	return ParseTimeout(c.Timeout)
}

// ParseTimeout accepts either whole seconds ("30") or a Go duration ("1m30s").
func ParseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTimeout, nil
	}
	if secs, err := strconv.Atoi(s); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("invalid timeout %q: must not be negative", s)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", s)
	}
	return d, nil
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	"quest.config.json",
	"quest.config.yaml",
	"quest.config.yml",
	".questrc.json",
	".questrc",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory.
// Without one, defaults and QUEST_* environment variables still apply.
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	return decode(newViper())
}

func loadConfigFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return decode(v)
}

// newViper registers every key with its default so AutomaticEnv can see
// QUEST_* variables even when no config file mentions them.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("file", d.QuestFile)
	v.SetDefault("env_file", d.EnvFile)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("max_redirects", d.MaxRedirects)
	v.SetDefault("follow_redirects", *d.FollowRedirects)
	v.SetDefault("insecure", *d.Insecure)
	v.SetDefault("no_color", *d.NoColor)
	v.SetDefault("gzip", *d.Gzip)
	v.SetDefault("deflate", *d.Deflate)
	v.SetDefault("brotli", *d.Brotli)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := cfg.TimeoutDuration(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.QuestFile != "" {
		result.QuestFile = other.QuestFile
	}
	if other.EnvFile != "" {
		result.EnvFile = other.EnvFile
	}
	if other.Timeout != "" {
		result.Timeout = other.Timeout
	}
	if other.LogLevel != "" {
		result.LogLevel = other.LogLevel
	}
	if other.MaxRedirects > 0 {
		result.MaxRedirects = other.MaxRedirects
	}

	// Boolean flags - only override if explicitly set in other config
	if other.FollowRedirects != nil {
		result.FollowRedirects = other.FollowRedirects
	}
	if other.Insecure != nil {
		result.Insecure = other.Insecure
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Gzip != nil {
		result.Gzip = other.Gzip
	}
	if other.Deflate != nil {
		result.Deflate = other.Deflate
	}
	if other.Brotli != nil {
		result.Brotli = other.Brotli
	}

	return &result
}
