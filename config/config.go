// Package config loads client configuration from YAML files.
package config

import (
	"io"
	"os"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/xdriver/jsonwire/log"
)

// Defaults for a locally running automation server.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 4444
)

// Config holds the client settings that aren't part of any one session:
// where the server lives and how to log.
type Config struct {
	Host string `yaml:"host"`
	Port uint16 `yaml:"port"`

	LogLevel string `yaml:"log_level"`
	// LogCategoryFilter is a regexp; only log entries whose category
	// matches are emitted. Empty means everything.
	LogCategoryFilter string `yaml:"log_category_filter"`
}

// Default returns the session-less default configuration: a server on
// localhost:4444.
func Default() *Config {
	return &Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		LogLevel: "info",
	}
}

// Load reads a YAML config file, filling unset fields from Default.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %q", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %q", path)
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	return cfg, nil
}

// NewLogger builds a logger from the config's log settings, writing to out.
func (c *Config) NewLogger(out io.Writer) (*log.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing log level %q", c.LogLevel)
	}
	var filter *regexp.Regexp
	if c.LogCategoryFilter != "" {
		if filter, err = regexp.Compile(c.LogCategoryFilter); err != nil {
			return nil, errors.Wrapf(err, "compiling log category filter %q", c.LogCategoryFilter)
		}
	}
	return log.New(out, level, filter), nil
}
