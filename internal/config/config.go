// Package config loads phase plans: a base phase order plus the orders declared by plugins, merged into a single
// phase list.
package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/askiada/go-phase/pkg/phase"
)

const envPrefix = "GOPHASE_"

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

type Config struct {
	Log     LogConfig `koanf:"log"`
	Base    []string  `koanf:"base"`
	Plugins []Plugin  `koanf:"plugins"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Plugin is an ordering merged into the base order with ZipMerge.
type Plugin struct {
	Name   string   `koanf:"name"`
	Phases []string `koanf:"phases"`
}

// Load reads the plan at path. Scalar values can be overridden with GOPHASE_ environment variables, using a
// double underscore between keys: GOPHASE_LOG__LEVEL=debug.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(file.Provider(path), yaml.Parser())
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load plan %s", path)
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load environment")
	}

	if !k.Exists("log.level") {
		_ = k.Set("log.level", "info")
	}

	if !k.Exists("log.format") {
		_ = k.Set("log.format", "text")
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode plan")
	}

	return &cfg, nil
}

// Logger creates the logger described by the log section, writing to wrt.
func (c *Config) Logger(wrt io.Writer) (*slog.Logger, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(c.Log.Level))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidLogLevel, "%q", c.Log.Level)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.Log.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(wrt, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(wrt, opts)), nil
	default:
		return nil, errors.Wrapf(ErrInvalidLogFormat, "%q", c.Log.Format)
	}
}

// Build creates a list holding the base phases, then merges every plugin in declaration order.
func Build[C any](cfg *Config, logger *slog.Logger, opts ...phase.ListOption) (*phase.List[C], error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	list := phase.NewList[C](append([]phase.ListOption{phase.WithLogger(logger)}, opts...)...)

	_, err := list.Add(cfg.Base...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to add base phases")
	}

	for _, plugin := range cfg.Plugins {
		added := list.ZipMerge(plugin.Phases...)
		for _, p := range added {
			logger.Debug("phase added", slog.String("plugin", plugin.Name), slog.String("phase", p.ID()))
		}
	}

	return list, nil
}
