package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/sirupsen/logrus"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is read from the environment
type Config struct {
	Port      int           `env:"PORT,default=8000"`
	BotDelay  time.Duration `env:"EIGHTS_BOT_DELAY,default=800ms"`
	Seed      int64         `env:"EIGHTS_SEED,default=0"`
	LogLevel  string        `env:"EIGHTS_LOG_LEVEL,default=info"`
	StaticDir string        `env:"EIGHTS_STATIC_DIR"`
}

// Load reads Config from the environment, falling back to defaults
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	}
	if c.BotDelay < 0 {
		return fmt.Errorf("%w: negative bot delay %s", ErrInvalidConfig, c.BotDelay)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return level, nil
}

// NewLogger builds the logger every binary shares
func (c Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if level, err := c.Level(); err == nil {
		log.SetLevel(level)
	}

	return log
}
