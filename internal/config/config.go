package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Port           int    `toml:"port"`
	DBPath         string `toml:"db_path"`
	LogLevel       string `toml:"log_level"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func defaults() Config {
	return Config{
		Port:           8917,
		DBPath:         "data/vibe-translate.db",
		LogLevel:       "info",
		TimeoutSeconds: 30,
	}
}

// Load reads the optional TOML file at path, then applies environment
// overrides on top. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.Port = envInt("VIBE_PORT", cfg.Port)
	cfg.DBPath = envStr("VIBE_DB_PATH", cfg.DBPath)
	cfg.LogLevel = envStr("VIBE_LOG_LEVEL", cfg.LogLevel)
	cfg.TimeoutSeconds = envInt("VIBE_TIMEOUT_SECONDS", cfg.TimeoutSeconds)
	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
