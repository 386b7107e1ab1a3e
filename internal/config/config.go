package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	minPlayers = 2
	maxPlayers = 4
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Board    Board    `yaml:"board"`
	Players  []string `yaml:"players" env:"PLAYERS" env-separator:"," env-default:"human,human"`
	Seed     int64    `yaml:"seed" env:"SEED" env-default:"0"`
	Redis    Redis    `yaml:"redis"`
}

type Board struct {
	Rows    int `yaml:"rows" env:"BOARD_ROWS" env-default:"3"`
	Columns int `yaml:"columns" env:"BOARD_COLUMNS" env-default:"3"`
}

type Redis struct {
	Enabled    bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	HistoryTTL time.Duration `yaml:"history-ttl" env:"REDIS_HISTORY_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads .env, then path when it exists, then the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Board.Rows < 1 || that.Board.Columns < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, that.Board.Rows, that.Board.Columns)
	}

	if len(that.Players) < minPlayers || len(that.Players) > maxPlayers {
		return fmt.Errorf("%w: need %d to %d players, got %d", ErrInvalidConfig, minPlayers, maxPlayers, len(that.Players))
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, that.LogLevel)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
