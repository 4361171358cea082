package config

import (
	"strconv"
	"time"

	"github.com/abdul-hamid-achik/quest/packages/http"
)

const (
	DefaultQuestFile = "./.quests"
	DefaultEnvFile   = "./.env"

	// Same as the HTTP client's defaults.
	DefaultTimeout      = http.DefaultTimeout
	DefaultMaxRedirects = http.DefaultMaxRedirects
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		QuestFile:       DefaultQuestFile,
		EnvFile:         DefaultEnvFile,
		Timeout:         strconv.Itoa(int(DefaultTimeout / time.Second)),
		LogLevel:        "",
		MaxRedirects:    DefaultMaxRedirects,
		FollowRedirects: BoolPtr(true),
		Insecure:        BoolPtr(false),
		NoColor:         BoolPtr(false),
		Gzip:            BoolPtr(false),
		Deflate:         BoolPtr(false),
		Brotli:          BoolPtr(false),
	}
}
