package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr       string `long:"http-addr" env:"HTTP_ADDR" default:":8080" description:"address the HTTP API listens on"`
	Capacity       int    `long:"capacity" env:"CINEMA_CAPACITY" default:"10" description:"number of seats that can be sold"`
	RedisAddr      string `long:"redis-addr" env:"REDIS_ADDR" description:"redis address; events stay in-process when empty"`
	JaegerEndpoint string `long:"jaeger-endpoint" env:"JAEGER_ENDPOINT" description:"jaeger collector endpoint; spans are not exported when empty"`
	LogLevel       string `long:"log-level" env:"LOG_LEVEL" default:"info" description:"logrus level"`
	Simulate       bool   `long:"simulate" env:"SIMULATE" description:"replay the reference sales day on startup"`
}

// Load reads envFiles (missing files are skipped, existing variables win)
// and then parses args on top of the environment.
func Load(args []string, envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("could not load %s: %w", file, err)
		}
	}

	var cfg Config
	if _, err := flags.NewParser(&cfg, flags.Default&^flags.PrintErrors).ParseArgs(args); err != nil {
		return Config{}, fmt.Errorf("could not parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
