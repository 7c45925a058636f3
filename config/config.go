package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/rodrigo-brito/pricebot/model"
	"github.com/rodrigo-brito/pricebot/tools/log"
)

// Prefix 所有环境变量都以 PRICEBOT_ 开头
const Prefix = "PRICEBOT"

const (
	StorageMemory = "memory"
	StorageSQL    = "sql"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Days     int            `envconfig:"DAYS" default:"30"`
	Seed     int64          `envconfig:"SEED"`
	Catalog  string         `envconfig:"CATALOG"`                  // YAML 商品目录，为空时使用内置目录
	Storage  string         `envconfig:"STORAGE" default:"memory"` // memory 或 sql
	LogLevel string         `envconfig:"LOG_LEVEL" default:"info"`
	Telegram TelegramConfig `envconfig:"TELEGRAM"`
}

type TelegramConfig struct {
	Token string `envconfig:"TOKEN"`
	Users []int  `envconfig:"USERS"` // 逗号分隔的用户 ID
}

// Load 从环境变量读取配置
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.Days < 0 {
		return fmt.Errorf("%w: days must not be negative, got %d", ErrInvalidConfig, c.Days)
	}
	if c.Storage != StorageMemory && c.Storage != StorageSQL {
		return fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, c.Storage)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Settings 转换为 NewBot 使用的设置，配置了 token 时启用 Telegram
func (c Config) Settings() model.Settings {
	return model.Settings{
		Days: c.Days,
		Seed: c.Seed,
		Telegram: model.TelegramSettings{
			Enabled: c.Telegram.Token != "",
			Token:   c.Telegram.Token,
			Users:   c.Telegram.Users,
		},
	}
}
