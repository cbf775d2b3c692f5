package cmd

import (
	"context"

	"github.com/salmonumbrella/tracwiki-cli/internal/config"
	"github.com/salmonumbrella/tracwiki-cli/internal/output"
	"github.com/salmonumbrella/tracwiki-cli/internal/ui"
)

// Options are the parsed global flags, shared by all commands.
type Options struct {
	Format output.Format
	Color  ui.ColorMode
	Quiet  bool
}

type contextKey string

const (
	configContextKey  contextKey = "config"
	optionsContextKey contextKey = "options"
)

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configContextKey).(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}

func withOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, optionsContextKey, opts)
}

func optionsFromContext(ctx context.Context) Options {
	if opts, ok := ctx.Value(optionsContextKey).(Options); ok {
		return opts
	}
	return Options{Format: output.FormatText}
}
