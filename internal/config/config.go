// Package config loads application configuration from the environment
// and optional config files.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime settings.
type Config struct {
	Addr        string
	DatabaseURL string

	SpotifyID     string
	SpotifySecret string

	LogLevel  string
	LogFormat string

	// MoodSampleSize is the default number of snippets returned by a
	// mood query without an explicit limit.
	MoodSampleSize int
	// ListLimit caps the full snippet listing.
	ListLimit int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Addr", "127.0.0.1:8080")
	v.SetDefault("DatabaseURL", "postgres://localhost:5432/snippetly")
	v.SetDefault("SpotifyID", "")
	v.SetDefault("SpotifySecret", "")
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogFormat", "text")
	v.SetDefault("MoodSampleSize", 10)
	v.SetDefault("ListLimit", 50)
}

// Load reads configuration from environment variables with the SNIPPETLY
// prefix, optionally merged over a config file (yaml/toml/json by
// extension). Path may be empty.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SNIPPETLY")
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Addr:           v.GetString("Addr"),
		DatabaseURL:    v.GetString("DatabaseURL"),
		SpotifyID:      v.GetString("SpotifyID"),
		SpotifySecret:  v.GetString("SpotifySecret"),
		LogLevel:       v.GetString("LogLevel"),
		LogFormat:      v.GetString("LogFormat"),
		MoodSampleSize: v.GetInt("MoodSampleSize"),
		ListLimit:      v.GetInt("ListLimit"),
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("addr must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL must not be empty")
	}
	return cfg, nil
}
