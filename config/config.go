package config

import (
	"io/ioutil"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env            string `yaml:"env"`
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	LogLevel       string `yaml:"logLevel"`
	LogFormat      string `yaml:"logFormat"` // "json" or "console"
	ExpansionLimit int    `yaml:"expansionLimit"`
}

// Default returns the settings for the current ENV. ENV=SERVER selects the
// production profile.
func Default() Config {
	if os.Getenv("ENV") == "SERVER" {
		return Config{
			Env:            "SERVER",
			Host:           "0.0.0.0",
			Port:           15351,
			LogLevel:       "info",
			LogFormat:      "json",
			ExpansionLimit: 1 << 20,
		}
	}
	return Config{
		Env:            "LOCAL",
		Host:           "localhost",
		Port:           15351,
		LogLevel:       "debug",
		LogFormat:      "console",
		ExpansionLimit: 0,
	}
}

// Load applies the YAML file at path (if path is not empty) and then the
// GRIDPATH_* environment variables on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		byteArr, err := ioutil.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(byteArr, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (cfg *Config) applyEnv() error {
	if v := os.Getenv("GRIDPATH_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("GRIDPATH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GRIDPATH_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "GRIDPATH_PORT")
		}
		cfg.Port = port
	}
	if v := os.Getenv("GRIDPATH_EXPANSION_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "GRIDPATH_EXPANSION_LIMIT")
		}
		cfg.ExpansionLimit = limit
	}
	return nil
}

func (cfg Config) Validate() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return errors.Errorf("port %d out of range", cfg.Port)
	}
	if cfg.ExpansionLimit < 0 {
		return errors.Errorf("expansionLimit %d is negative", cfg.ExpansionLimit)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return errors.Errorf("logFormat %q must be json or console", cfg.LogFormat)
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return errors.Wrap(err, "logLevel")
	}
	return nil
}

func (cfg Config) Addr() string {
	return cfg.Host + ":" + strconv.Itoa(cfg.Port)
}

// NewLogger builds a zap logger for the configured level and format.
func (cfg Config) NewLogger() (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, errors.Wrap(err, "logLevel")
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger.With(zap.String("env", cfg.Env)), nil
}
