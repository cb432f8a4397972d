package phase

import (
	"log/slog"

	"github.com/askiada/go-phase/pkg/phase/model"
)

type listConfig struct {
	logger  *slog.Logger
	runOpts []model.RunOption
}

type ListOption func(cfg *listConfig)

// WithLogger sets the logger used during runs. Nothing is logged by default.
func WithLogger(logger *slog.Logger) ListOption {
	return func(cfg *listConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRunOption adds hooks called during every run, in the order they are given.
func WithRunOption(opts ...model.RunOption) ListOption {
	return func(cfg *listConfig) {
		for _, opt := range opts {
			if opt != nil {
				cfg.runOpts = append(cfg.runOpts, opt)
			}
		}
	}
}
