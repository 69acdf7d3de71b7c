package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/GustavoCaso/expensify/internal/logger"
)

type Config struct {
	Seed    string        `toml:"seed"`
	NoColor bool          `toml:"no_color"`
	Logger  logger.Config `toml:"logger"`
}

const (
	defaultLogLevel  = logger.LevelInfo
	defaultLogFormat = logger.FormatText
	defaultLogOutput = "stdout"
)

func (c *Config) parseFile(file string) error {
	_, err := toml.DecodeFile(file, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("unable to decode %s: %w", file, err)
	}

	return nil
}

func (c *Config) parseEnv() error {
	if seed := os.Getenv("EXPENSIFY_SEED"); seed != "" {
		c.Seed = seed
	}

	if noColor := os.Getenv("EXPENSIFY_NO_COLOR"); noColor != "" {
		v, err := strconv.ParseBool(noColor)
		if err != nil {
			return fmt.Errorf("invalid EXPENSIFY_NO_COLOR: %w", err)
		}
		c.NoColor = v
	}

	if level := os.Getenv("EXPENSIFY_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("EXPENSIFY_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("EXPENSIFY_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}

	if c.Logger.Format == "" {
		c.Logger.Format = defaultLogFormat
	}

	if c.Logger.Output == "" {
		c.Logger.Output = defaultLogOutput
	}
}

// Parse reads the TOML file at path, if it exists, and overlays the
// EXPENSIFY_* environment variables on top of it.
func Parse(path string) (*Config, error) {
	conf := &Config{}

	if path != "" {
		if err := conf.parseFile(path); err != nil {
			return nil, err
		}
	}

	if err := conf.parseEnv(); err != nil {
		return nil, err
	}

	conf.applyDefaults()

	return conf, nil
}
