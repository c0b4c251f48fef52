package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds server configuration, read from a YAML file and the
// environment. Environment variables win over file values.
type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Host        string `yaml:"host" env:"HOST" env-default:""`
	Port        int    `yaml:"port" env:"PORT" env-default:"8080"`
	StorageType string `yaml:"storage-type" env:"STORAGE_TYPE" env-default:"memory"`
	Redis       Redis  `yaml:"redis"`
	Game        Game   `yaml:"game"`

	// WordlistDir points at a directory of per-level wordlist files
	// (basic.txt, intermediate.txt). Empty means bundled lists only.
	WordlistDir string `yaml:"wordlist-dir" env:"WORDLIST_DIR" env-default:""`
}

type Redis struct {
	URL string `yaml:"url" env:"REDIS_URL" env-default:""`
}

type Game struct {
	MaxLives    int           `yaml:"max-lives" env:"MAX_LIVES" env-default:"6"`
	TurnTimeout time.Duration `yaml:"turn-timeout" env:"TURN_TIMEOUT" env-default:"15s"`
}

// Load reads configuration from the YAML file at path, or from the
// environment alone when path is empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	return cfg, nil
}
