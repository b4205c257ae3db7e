package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/javaBin/talks-browser/internal/adapters/talksapi"
	"github.com/javaBin/talks-browser/internal/app"
	"github.com/javaBin/talks-browser/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type commandContext struct {
	verbose *bool

	config *config.Config
	store  *app.TalkStore
}

func newCommandContext(verbose *bool) *commandContext {
	return &commandContext{verbose: verbose}
}

// init loads configuration, configures logging and wires the store to the talks API
func (c *commandContext) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.config = cfg

	logger := newLogger(cfg.Mode, *c.verbose, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		"mode", cfg.Mode,
		"talksAPIURL", cfg.TalksAPI.URL,
		"oidc", cfg.OIDC.IsConfigured(),
		"cacheSize", cfg.Cache.Size,
		"cacheTTL", cfg.Cache.TTL,
	)

	ctx := config.WithConfig(cmd.Context(), cfg)

	client, err := talksapi.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create talks API client: %w", err)
	}

	c.store = app.NewTalkStore(ctx, client)
	return nil
}

// newLogger logs JSON at warn level in production and text at debug level in
// development or with --verbose. Logs go to stderr so stdout stays clean for output.
func newLogger(mode config.Mode, verbose bool, w io.Writer) *slog.Logger {
	if mode.IsProduction() && !verbose {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func shouldStyle(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
